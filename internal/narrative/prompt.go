package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/catalog"
)

const summarySystemPrompt = `You are assisting a clinician who has just administered a brief cognitive screening questionnaire modeled on the MMSE. Interpret the results cautiously: this is a screening aid, not a diagnosis. Write for a medical professional, in plain language, without alarmism.`

func buildSummaryUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString("Patient:\n")
	if input.PatientName != "" {
		b.WriteString(fmt.Sprintf("- Name: %s\n", input.PatientName))
	}
	if input.PatientAge != "" {
		b.WriteString(fmt.Sprintf("- Age: %s\n", input.PatientAge))
	}
	if input.PatientGender != "" {
		b.WriteString(fmt.Sprintf("- Gender: %s\n", input.PatientGender))
	}

	r := input.Report
	b.WriteString(fmt.Sprintf("\nOverall: %d of %d points (%.1f%%)\n",
		r.TotalScore, r.MaxPossibleScore, r.Percentage))
	b.WriteString(fmt.Sprintf("Screening interpretation: %s\n", r.Interpretation))

	b.WriteString("\nPer-category scores:\n")
	for _, name := range categoryOrder(r.Categories) {
		c := r.Categories[name]
		b.WriteString(fmt.Sprintf("- %s: %d/%d (%.0f%%)\n",
			name, c.Score, c.MaxScore, c.Percentage))
	}

	if input.Prediction != nil {
		b.WriteString(fmt.Sprintf("\nClassifier assessment: %s (confidence %.0f%%)\n",
			input.Prediction.Severity, input.Prediction.Confidence*100))
	}

	b.WriteString(`
Instructions:
1. Write a 3-5 sentence analysis of these results. Mention which cognitive domains look intact and which look weak, and how the overall score relates to the screening thresholds.
2. Give 2-4 concrete recommendations (one sentence each), such as follow-up testing, specialist referral, or re-screening intervals.
3. Do not diagnose. Frame everything as screening-level findings that need clinical confirmation.`)

	return b.String()
}

// categoryOrder lists category names in catalog order so the prompt is
// stable across runs; anything not in the catalog sorts after.
func categoryOrder(scores map[string]analysis.CategoryScore) []string {
	order := catalog.Categories()
	seen := make(map[string]bool, len(order))
	var names []string
	for _, name := range order {
		if _, ok := scores[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range scores {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
