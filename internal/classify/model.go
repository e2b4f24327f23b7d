package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/llm"
)

// ModelConfig configures the model-backed classifier.
type ModelConfig struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds a single prediction; on expiry the heuristic is used.
	Timeout time.Duration
}

// DefaultModelConfig returns the standard classifier configuration.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		MaxTokens:   512,
		Temperature: 0,
		Timeout:     5 * time.Second,
	}
}

// ModelClassifier predicts severity from examination features via an LLM.
type ModelClassifier struct {
	provider llm.Provider
	cfg      ModelConfig
}

// NewModelClassifier creates a model-backed classifier.
func NewModelClassifier(provider llm.Provider, cfg ModelConfig) *ModelClassifier {
	return &ModelClassifier{provider: provider, cfg: cfg}
}

// PredictionSchema is the JSON structure expected from the model.
var PredictionSchema = &llm.Schema{
	Name:        "cognitive-prediction",
	Description: "Severity classification of a cognitive screening result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"severity": map[string]any{
				"type": "string",
				"enum": []any{"Normal", "Mild", "Moderate", "Severe"},
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "Classifier confidence between 0 and 1",
			},
			"category_scores": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "number"},
				"description":          "Normalized 0..1 score per category",
			},
		},
		"required": []any{"severity", "confidence", "category_scores"},
	},
}

const predictSystemPrompt = `You are a clinical decision-support assistant for cognitive screening instruments such as the Mini-Mental State Examination. Given per-category normalized scores, patient demographics, and response times, classify the overall cognitive status. You respond only with the requested JSON.`

type predictionOutput struct {
	Severity       string             `json:"severity"`
	Confidence     float64            `json:"confidence"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// Predict asks the model for a severity classification.
func (c *ModelClassifier) Predict(ctx context.Context, features analysis.Features) (*analysis.Prediction, error) {
	ctx = llm.WithPurpose(ctx, "classification")
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: predictSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPredictMessage(features)},
		},
		Schema:      PredictionSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("classification request: %w", err)
	}

	var out predictionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse classification response: %w", err)
	}
	if out.Confidence < 0 || out.Confidence > 1 {
		return nil, fmt.Errorf("confidence %v outside [0,1]", out.Confidence)
	}

	return &analysis.Prediction{
		Severity:       analysis.Severity(out.Severity),
		Confidence:     out.Confidence,
		CategoryScores: out.CategoryScores,
	}, nil
}

// buildPredictMessage serializes the features for the prompt.
func buildPredictMessage(features analysis.Features) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Patient: age %d, gender %s\n\n", features.PatientAge, features.PatientGender)

	b.WriteString("Normalized category scores (0..1 per answered question):\n")
	for category, responses := range features.CategoryResponses {
		parts := make([]string, len(responses))
		for i, r := range responses {
			parts[i] = fmt.Sprintf("%.2f", r)
		}
		fmt.Fprintf(&b, "- %s: [%s]\n", category, strings.Join(parts, ", "))
	}

	fmt.Fprintf(&b, "\nAverage response time: %dms\n", features.AverageResponseTime().Milliseconds())
	return b.String()
}
