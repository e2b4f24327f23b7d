package narrative

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/llm"
)

func validSummaryJSON() json.RawMessage {
	return json.RawMessage(`{
		"analysis": "Scores are within the normal range across all domains.",
		"recommendations": [
			"No immediate follow-up required.",
			"Re-screen in 12 months as part of routine care."
		]
	}`)
}

func testInput() Input {
	return Input{
		PatientName:   "Ada",
		PatientAge:    "72",
		PatientGender: "female",
		Report: analysis.Report{
			TotalScore:       11,
			MaxPossibleScore: 13,
			Percentage:       84.6,
			Severity:         analysis.SeverityNormal,
			Interpretation:   analysis.InterpretationFor(analysis.SeverityNormal),
			Categories: map[string]analysis.CategoryScore{
				"Orientation to Time": {Score: 1, MaxScore: 1, Percentage: 100},
				"Recall":              {Score: 2, MaxScore: 3, Percentage: 66.7},
			},
		},
	}
}

func consume(t *testing.T, svc *Service) *Result {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if res, ok := svc.Consume(); ok {
			return res
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for narrative result")
	return nil
}

func TestService_GeneratesSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), testInput())
	res := consume(t, svc)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Summary == nil {
		t.Fatal("expected summary")
	}
	if !strings.Contains(res.Summary.Analysis, "normal range") {
		t.Errorf("unexpected analysis: %q", res.Summary.Analysis)
	}
	if len(res.Summary.Recommendations) != 2 {
		t.Errorf("expected 2 recommendations, got %d", len(res.Summary.Recommendations))
	}
}

func TestService_ConsumeClearsResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), testInput())
	consume(t, svc)

	if _, ok := svc.Consume(); ok {
		t.Error("expected second Consume to return false")
	}
}

func TestService_SurfacesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), testInput())
	res := consume(t, svc)

	if res.Err == nil {
		t.Fatal("expected error result")
	}
	if res.Summary != nil {
		t.Errorf("expected nil summary, got %+v", res.Summary)
	}
}

func TestService_RetryAfterFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: validSummaryJSON()},
	)
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), testInput())
	res := consume(t, svc)
	if res.Err == nil {
		t.Fatal("expected first attempt to fail")
	}

	svc.Request(t.Context(), testInput())
	res = consume(t, svc)
	if res.Err != nil {
		t.Fatalf("retry failed: %v", res.Err)
	}
	if res.Summary == nil {
		t.Fatal("expected summary on retry")
	}
}

func TestService_NilProviderYieldsPlaceholder(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	svc.Request(t.Context(), testInput())
	res := consume(t, svc)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Summary == nil {
		t.Fatal("expected placeholder summary")
	}
	if !strings.Contains(res.Summary.Analysis, "unavailable") {
		t.Errorf("unexpected placeholder text: %q", res.Summary.Analysis)
	}
}

func TestService_PurposeAndSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), testInput())
	consume(t, svc)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "exam-summary" {
		t.Error("expected schema name 'exam-summary'")
	}
	if !strings.Contains(req.Messages[0].Content, "11 of 13") {
		t.Errorf("expected score line in prompt, got: %s", req.Messages[0].Content)
	}
}
