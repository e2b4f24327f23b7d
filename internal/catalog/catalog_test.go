package catalog

import "testing"

func TestUniqueOrderedIDs(t *testing.T) {
	seen := make(map[int]bool)
	prev := 0
	for _, q := range All() {
		if seen[q.ID] {
			t.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if q.ID <= prev {
			t.Errorf("question ids out of order: %d after %d", q.ID, prev)
		}
		prev = q.ID
	}
}

func TestByID(t *testing.T) {
	q, err := ByID(4)
	if err != nil {
		t.Fatalf("ByID(4) error: %v", err)
	}
	if q.Category != "Calculation" {
		t.Errorf("ByID(4).Category = %q, want Calculation", q.Category)
	}

	if _, err := ByID(99); err == nil {
		t.Error("expected error for unknown id 99")
	}
}

func TestMaxPossibleScore(t *testing.T) {
	// 7 one-point questions plus two 3-point recall blocks.
	if got := MaxPossibleScore(); got != 13 {
		t.Errorf("MaxPossibleScore() = %d, want 13", got)
	}
}

func TestOptionScoresWithinMax(t *testing.T) {
	for _, q := range All() {
		for _, opt := range q.Options {
			if opt.Score < 0 || opt.Score > q.MaxScore {
				t.Errorf("question %d option %q score %d outside [0,%d]",
					q.ID, opt.Label, opt.Score, q.MaxScore)
			}
		}
	}
}

func TestScoringVariants(t *testing.T) {
	for _, q := range All() {
		switch q.Scoring.(type) {
		case FixedChoice:
			if q.Kind != KindMultipleChoice {
				t.Errorf("question %d: fixed-choice scoring on %s question", q.ID, q.Kind)
			}
		case Predicate, ClassifierScored:
			if q.Kind == KindMultipleChoice {
				t.Errorf("question %d: deferred scoring on multiple-choice question", q.ID)
			}
		default:
			t.Errorf("question %d: missing scoring variant", q.ID)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	answers := map[int]int{3: 2, 4: 1}
	totals := CategoryTotals(answers)

	if got := totals["Registration"]; got.Score != 2 || got.MaxScore != 3 {
		t.Errorf("Registration = %+v, want {2 3}", got)
	}
	if got := totals["Calculation"]; got.Score != 1 || got.MaxScore != 1 {
		t.Errorf("Calculation = %+v, want {1 1}", got)
	}
	// Unanswered category still carries its full denominator.
	if got := totals["Recall"]; got.Score != 0 || got.MaxScore != 3 {
		t.Errorf("Recall = %+v, want {0 3}", got)
	}

	// Per-category max scores sum to the catalog total.
	sum := 0
	for _, tot := range totals {
		sum += tot.MaxScore
	}
	if sum != MaxPossibleScore() {
		t.Errorf("category max sum = %d, want %d", sum, MaxPossibleScore())
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name   string
		pred   Predicate
		answer string
		want   bool
	}{
		{"exact match", ExactAnswer("93"), "93", true},
		{"exact trims and ignores case", ExactAnswer("DLROW"), "  dlrow ", true},
		{"exact rejects", ExactAnswer("93"), "92", false},
		{"contains keyword", ContainsAny("hospital", "clinic"), "I am in the hospital", true},
		{"contains rejects", ContainsAny("hospital"), "at home", false},
		{"min words passes", MinWords(2), "the dog barks", true},
		{"min words rejects", MinWords(2), "dog", false},
		{"min words empty", MinWords(2), "   ", false},
	}

	for _, tt := range tests {
		if got := tt.pred.Match(tt.answer); got != tt.want {
			t.Errorf("%s: Match(%q) = %v, want %v", tt.name, tt.answer, got, tt.want)
		}
	}
}
