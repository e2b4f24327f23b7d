package classify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/llm"
)

func featuresWithRatio(ratio float64) analysis.Features {
	return analysis.Features{
		CategoryResponses: map[string][]float64{"Recall": {ratio}},
	}
}

func TestHeuristicBands(t *testing.T) {
	tests := []struct {
		ratio float64
		want  analysis.Severity
	}{
		{1.0, analysis.SeverityNormal},
		{0.75, analysis.SeverityNormal},
		{0.6, analysis.SeverityMild},
		{0.5, analysis.SeverityMild},
		{0.3, analysis.SeverityModerate},
		{0.1, analysis.SeveritySevere},
		{0, analysis.SeveritySevere},
	}

	for _, tt := range tests {
		pred := HeuristicPrediction(featuresWithRatio(tt.ratio))
		if pred.Severity != tt.want {
			t.Errorf("ratio %.2f: severity = %q, want %q", tt.ratio, pred.Severity, tt.want)
		}
		if pred.Confidence != heuristicConfidence {
			t.Errorf("ratio %.2f: confidence = %.2f, want %.2f", tt.ratio, pred.Confidence, heuristicConfidence)
		}
	}
}

func TestHeuristicCategoryMeans(t *testing.T) {
	pred := HeuristicPrediction(analysis.Features{
		CategoryResponses: map[string][]float64{
			"Recall":      {1, 0},
			"Calculation": {1},
		},
	})
	if pred.CategoryScores["Recall"] != 0.5 {
		t.Errorf("Recall = %.2f, want 0.5", pred.CategoryScores["Recall"])
	}
	if pred.CategoryScores["Calculation"] != 1 {
		t.Errorf("Calculation = %.2f, want 1", pred.CategoryScores["Calculation"])
	}
}

func TestServiceWithoutProvider(t *testing.T) {
	s := NewService(nil)
	ctx := context.Background()

	if got := s.ScoreText(ctx, "apple table penny", "Recall"); got != 1 {
		t.Errorf("ScoreText = %.2f, want 1", got)
	}

	pred, err := s.Predict(ctx, featuresWithRatio(0.9))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if pred.Severity != analysis.SeverityNormal {
		t.Errorf("severity = %q, want Normal from heuristic", pred.Severity)
	}
}

func TestServicePredictUsesModel(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"severity":        "Mild",
		"confidence":      0.92,
		"category_scores": map[string]float64{"Recall": 0.7},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})

	s := NewService(mock)
	pred, err := s.Predict(context.Background(), featuresWithRatio(0.9))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if pred.Severity != analysis.SeverityMild || pred.Confidence != 0.92 {
		t.Errorf("prediction = %+v, want model output", pred)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestServicePredictFallsBackOnModelError(t *testing.T) {
	// Empty mock queue: Generate fails, prediction must degrade to heuristic.
	mock := llm.NewMockProvider()
	s := NewService(mock)

	pred, err := s.Predict(context.Background(), featuresWithRatio(0.1))
	if err != nil {
		t.Fatalf("Predict must not surface model errors: %v", err)
	}
	if pred.Severity != analysis.SeveritySevere {
		t.Errorf("severity = %q, want heuristic Severe", pred.Severity)
	}
}

func TestServicePredictRejectsBadConfidence(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"severity":        "Normal",
		"confidence":      1.7,
		"category_scores": map[string]float64{},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})

	s := NewService(mock)
	pred, err := s.Predict(context.Background(), featuresWithRatio(0.9))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	// Out-of-range confidence is treated as a model failure.
	if pred.Confidence != heuristicConfidence {
		t.Errorf("confidence = %.2f, want heuristic fallback", pred.Confidence)
	}
}
