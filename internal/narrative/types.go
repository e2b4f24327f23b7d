// Package narrative turns a completed examination into a clinician-readable
// summary. Generation runs asynchronously so the results screen stays
// responsive; consumers poll for the finished summary.
package narrative

import "github.com/asmit/mentis/internal/analysis"

// Input carries everything the model needs to write a summary.
type Input struct {
	PatientName   string
	PatientAge    string
	PatientGender string

	Report analysis.Report

	// Prediction is the classifier output, when one was attached.
	Prediction *analysis.Prediction
}

// Summary is the generated narrative.
type Summary struct {
	// Analysis is a short prose interpretation of the results.
	Analysis string

	// Recommendations are concrete follow-up suggestions.
	Recommendations []string
}

// Result pairs a summary with the error that prevented it. Exactly one of
// the two is set.
type Result struct {
	Summary *Summary
	Err     error
}

// Placeholder is shown when no LLM provider is configured. The wording
// makes clear nothing was generated.
func Placeholder() *Summary {
	return &Summary{
		Analysis: "AI-assisted summary is unavailable. Configure a Gemini API key " +
			"with 'mentis apikey set' to enable narrative analysis of results.",
		Recommendations: []string{
			"Review the per-category scores above with a qualified clinician.",
			"Consider a follow-up assessment if scores fall below the normal range.",
		},
	}
}
