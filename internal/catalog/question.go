package catalog

import "strings"

// Kind determines which answer-collection UI applies to a question.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindFreeText       Kind = "free-text"
	KindDrawing        Kind = "drawing"
)

// Option is a single multiple-choice answer with its point value.
type Option struct {
	Label string
	Score int
}

// Scoring selects how a question's answer is turned into points.
// The variant is chosen once when the catalog is authored, not re-derived
// from nullable fields at use sites.
type Scoring interface {
	isScoring()
}

// FixedChoice scoring: the selected option carries its own score.
// Pending submissions are not expected for these questions.
type FixedChoice struct{}

func (FixedChoice) isScoring() {}

// Predicate scoring: a deterministic correctness check over the raw answer.
// A true result awards the question's full MaxScore, false awards 0.
type Predicate struct {
	Match func(answer string) bool
}

func (Predicate) isScoring() {}

// ClassifierScored marks free-text questions whose score is deferred to the
// text classifier when the answer is submitted pending.
type ClassifierScored struct{}

func (ClassifierScored) isScoring() {}

// Question is one immutable entry in the examination catalog.
type Question struct {
	ID           int
	Category     string
	Text         string
	Instructions string
	Kind         Kind
	Options      []Option // multiple-choice only
	MaxScore     int
	Scoring      Scoring
	Expected     []string // presentation hint for the examiner
	Image        string   // optional image path shown with the question
}

// ExactAnswer builds a predicate accepting any of the given answers,
// compared case-insensitively after trimming whitespace.
func ExactAnswer(accepted ...string) Predicate {
	return Predicate{Match: func(answer string) bool {
		answer = strings.TrimSpace(answer)
		for _, a := range accepted {
			if strings.EqualFold(answer, a) {
				return true
			}
		}
		return false
	}}
}

// ContainsAny builds a predicate accepting answers that contain any of the
// given keywords, case-insensitively.
func ContainsAny(keywords ...string) Predicate {
	return Predicate{Match: func(answer string) bool {
		answer = strings.ToLower(answer)
		for _, k := range keywords {
			if strings.Contains(answer, strings.ToLower(k)) {
				return true
			}
		}
		return false
	}}
}

// MinWords builds a predicate requiring at least n whitespace-separated words.
func MinWords(n int) Predicate {
	return Predicate{Match: func(answer string) bool {
		return len(strings.Fields(answer)) >= n
	}}
}
