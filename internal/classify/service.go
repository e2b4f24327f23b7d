// Package classify scores free-text answers and predicts an overall severity
// for a completed examination. A model-backed classifier is used when an LLM
// provider is configured; a deterministic heuristic covers every failure
// path, so classification never blocks an examination from completing.
package classify

import (
	"context"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/llm"
)

// Service is the classifier facade handed to the examination session.
type Service struct {
	rules []TextRule
	model *ModelClassifier
}

// NewService creates a classifier service. When provider is nil, only the
// rule-based text scoring and the heuristic prediction are available.
func NewService(provider llm.Provider) *Service {
	s := &Service{rules: DefaultTextRules()}
	if provider != nil {
		s.model = NewModelClassifier(provider, DefaultModelConfig())
	}
	return s
}

// ScoreText returns a confidence in [0,1] for a free-text answer. Scoring is
// rule-based and synchronous; it runs on every answer submission and must
// not wait on the network.
func (s *Service) ScoreText(_ context.Context, answer, category string) float64 {
	return RunTextRules(s.rules, answer, category)
}

// Predict classifies a completed examination. The model path is tried first;
// any failure degrades to the heuristic, so the result is never nil and the
// returned error is always nil. The error slot exists for the session's
// benefit: other Classifier implementations may fail outright.
func (s *Service) Predict(ctx context.Context, features analysis.Features) (*analysis.Prediction, error) {
	if s.model != nil {
		if pred, err := s.model.Predict(ctx, features); err == nil {
			return pred, nil
		}
	}
	return HeuristicPrediction(features), nil
}
