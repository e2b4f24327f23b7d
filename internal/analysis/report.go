// Package analysis turns recorded answer scores into the examination report:
// per-category totals, an overall percentage, and a severity interpretation.
package analysis

import "github.com/asmit/mentis/internal/catalog"

// CategoryScore is one category's contribution to the report.
type CategoryScore struct {
	Score      int
	MaxScore   int
	Percentage float64
}

// Report is the threshold-based examination result. It is always computed,
// even when a classifier prediction is available to supersede its severity
// for display.
type Report struct {
	TotalScore       int
	MaxPossibleScore int
	Percentage       float64
	Categories       map[string]CategoryScore
	Severity         Severity
	Interpretation   string
	Color            string
}

// Prediction is the classifier's view of the examination: a severity with a
// confidence and normalized per-category scores in [0,1].
type Prediction struct {
	Severity       Severity
	Confidence     float64
	CategoryScores map[string]float64
}

// Analyze aggregates per-question answer scores into the final report.
// An empty catalog yields a defined 0% rather than a division error.
func Analyze(answers map[int]int, maxPossible int) Report {
	total := 0
	for _, score := range answers {
		total += score
	}

	var pct float64
	if maxPossible > 0 {
		pct = 100 * float64(total) / float64(maxPossible)
	}

	categories := make(map[string]CategoryScore)
	for name, t := range catalog.CategoryTotals(answers) {
		cs := CategoryScore{Score: t.Score, MaxScore: t.MaxScore}
		if t.MaxScore > 0 {
			cs.Percentage = 100 * float64(t.Score) / float64(t.MaxScore)
		}
		categories[name] = cs
	}

	sev := Interpret(pct)
	return Report{
		TotalScore:       total,
		MaxPossibleScore: maxPossible,
		Percentage:       pct,
		Categories:       categories,
		Severity:         sev,
		Interpretation:   InterpretationFor(sev),
		Color:            ColorFor(sev),
	}
}
