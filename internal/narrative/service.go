package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/asmit/mentis/internal/llm"
)

// Service generates narrative summaries asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Result
	ready   bool
}

// NewService creates a narrative service. A nil provider is allowed; every
// request then resolves to the placeholder summary.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async summary generation. Only one summary is in-flight at
// a time; a new request replaces a pending one, which is how the results
// screen retries after a failure.
func (s *Service) Request(ctx context.Context, input Input) {
	if s.provider == nil {
		s.mu.Lock()
		s.pending = &Result{Summary: Placeholder()}
		s.ready = true
		s.mu.Unlock()
		return
	}

	go func() {
		summary, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = &Result{Summary: summary, Err: err}
		s.ready = true
	}()
}

// Consume returns the finished result if one is ready. Returns (nil, false)
// while generation is still in flight. The pending slot is cleared on
// consumption.
func (s *Service) Consume() (*Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	res := s.pending
	s.pending = nil
	s.ready = false
	return res, true
}

type summaryOutput struct {
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Summary, error) {
	ctx = llm.WithPurpose(ctx, "narrative")

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(input)},
		},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("narrative generation: %w", err)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse narrative response: %w", err)
	}

	return &Summary{
		Analysis:        out.Analysis,
		Recommendations: out.Recommendations,
	}, nil
}
