package classify

import (
	"regexp"
	"strings"
)

// TextRule scores a free-text answer for a question category.
// Returns a confidence in [0,1] and whether the rule applies to the category.
type TextRule interface {
	Name() string
	Score(answer, category string) (float64, bool)
}

// DefaultTextRules returns the rules in priority order. The length rule is
// last and applies to every category, so scoring always produces a value.
func DefaultTextRules() []TextRule {
	return []TextRule{
		&OrientationRule{},
		&RecallWordsRule{},
		&SentenceRule{},
		&LengthRule{},
	}
}

// RunTextRules executes rules in order and returns the first applicable score.
func RunTextRules(rules []TextRule, answer, category string) float64 {
	for _, r := range rules {
		if score, ok := r.Score(answer, category); ok {
			return score
		}
	}
	return 0
}

var orientationWords = regexp.MustCompile(`(?i)\b(today|now|current|present)\b`)

// OrientationRule scores orientation answers on temporal/situational keywords.
type OrientationRule struct{}

func (r *OrientationRule) Name() string { return "orientation" }

func (r *OrientationRule) Score(answer, category string) (float64, bool) {
	if !strings.HasPrefix(category, "Orientation") {
		return 0, false
	}
	if orientationWords.MatchString(answer) {
		return 1, true
	}
	if len(strings.TrimSpace(answer)) < 5 {
		return 0, true
	}
	return 0.5, true
}

// recallWords are the registration/recall test words.
var recallWords = []string{"apple", "table", "penny"}

// RecallWordsRule scores registration and recall answers by the fraction of
// test words present.
type RecallWordsRule struct{}

func (r *RecallWordsRule) Name() string { return "recall-words" }

func (r *RecallWordsRule) Score(answer, category string) (float64, bool) {
	if category != "Registration" && category != "Recall" {
		return 0, false
	}
	lower := strings.ToLower(answer)
	matched := 0
	for _, w := range recallWords {
		if strings.Contains(lower, w) {
			matched++
		}
	}
	return float64(matched) / float64(len(recallWords)), true
}

// SentenceRule scores language answers on word count.
type SentenceRule struct{}

func (r *SentenceRule) Name() string { return "sentence" }

func (r *SentenceRule) Score(answer, category string) (float64, bool) {
	if category != "Language" {
		return 0, false
	}
	if len(strings.Fields(answer)) >= 5 {
		return 1, true
	}
	return 0.5, true
}

// LengthRule is the catch-all: confidence grows with answer length, capped
// at 20 characters.
type LengthRule struct{}

func (r *LengthRule) Name() string { return "length" }

func (r *LengthRule) Score(answer, _ string) (float64, bool) {
	n := len(strings.TrimSpace(answer))
	if n == 0 {
		return 0, true
	}
	score := float64(n) / 20
	if score > 1 {
		score = 1
	}
	return score, true
}
