package narrative

import "github.com/asmit/mentis/internal/llm"

// SummarySchema defines the JSON schema for the narrative summary.
var SummarySchema = &llm.Schema{
	Name:        "exam-summary",
	Description: "Narrative interpretation of cognitive screening results",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"analysis": map[string]any{
				"type":        "string",
				"description": "3-5 sentence interpretation of the screening results in plain clinical language",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete follow-up recommendations (one sentence each)",
			},
		},
		"required":             []any{"analysis", "recommendations"},
		"additionalProperties": false,
	},
}
