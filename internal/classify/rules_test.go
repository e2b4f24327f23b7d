package classify

import "testing"

func TestOrientationRule(t *testing.T) {
	r := &OrientationRule{}

	tests := []struct {
		answer   string
		category string
		want     float64
		applies  bool
	}{
		{"it is the present day", "Orientation to Time", 1, true},
		{"Today is Tuesday", "Orientation to Time", 1, true},
		{"hm", "Orientation to Place", 0, true},
		{"somewhere in the building", "Orientation to Place", 0.5, true},
		{"apple table penny", "Recall", 0, false},
	}

	for _, tt := range tests {
		got, ok := r.Score(tt.answer, tt.category)
		if ok != tt.applies || got != tt.want {
			t.Errorf("Score(%q, %q) = (%.2f, %v), want (%.2f, %v)",
				tt.answer, tt.category, got, ok, tt.want, tt.applies)
		}
	}
}

func TestRecallWordsRule(t *testing.T) {
	r := &RecallWordsRule{}

	tests := []struct {
		answer string
		want   float64
	}{
		{"apple, table, penny", 1},
		{"apple and a penny", 2.0 / 3},
		{"TABLE", 1.0 / 3},
		{"chair", 0},
	}

	for _, tt := range tests {
		got, ok := r.Score(tt.answer, "Recall")
		if !ok || got != tt.want {
			t.Errorf("Score(%q) = (%.3f, %v), want (%.3f, true)", tt.answer, got, ok, tt.want)
		}
	}

	if _, ok := r.Score("apple", "Language"); ok {
		t.Error("rule should not apply outside Registration/Recall")
	}
}

func TestSentenceRule(t *testing.T) {
	r := &SentenceRule{}
	if got, _ := r.Score("the quick brown fox jumps", "Language"); got != 1 {
		t.Errorf("five-word sentence = %.2f, want 1", got)
	}
	if got, _ := r.Score("dog runs", "Language"); got != 0.5 {
		t.Errorf("short sentence = %.2f, want 0.5", got)
	}
}

func TestLengthRuleCatchAll(t *testing.T) {
	r := &LengthRule{}
	if got, ok := r.Score("", "Current Events"); !ok || got != 0 {
		t.Errorf("empty answer = (%.2f, %v), want (0, true)", got, ok)
	}
	if got, _ := r.Score("a fairly long considered answer", "Current Events"); got != 1 {
		t.Errorf("long answer = %.2f, want capped at 1", got)
	}
	if got, _ := r.Score("ten chars.", "Current Events"); got != 0.5 {
		t.Errorf("ten chars = %.2f, want 0.5", got)
	}
}

func TestRunTextRulesPriority(t *testing.T) {
	rules := DefaultTextRules()

	// Orientation answers hit the orientation rule before the length rule.
	if got := RunTextRules(rules, "now", "Orientation to Time"); got != 1 {
		t.Errorf("orientation keyword = %.2f, want 1", got)
	}
	// Unmatched categories fall through to the length rule.
	if got := RunTextRules(rules, "", "Object Recognition"); got != 0 {
		t.Errorf("empty fallthrough = %.2f, want 0", got)
	}
}
