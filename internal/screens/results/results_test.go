package results

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/asmit/mentis/internal/catalog"
	"github.com/asmit/mentis/internal/classify"
	"github.com/asmit/mentis/internal/exam"
	"github.com/asmit/mentis/internal/llm"
	"github.com/asmit/mentis/internal/narrative"
	"github.com/asmit/mentis/internal/router"
)

func validSummaryJSON() json.RawMessage {
	return json.RawMessage(`{
		"analysis": "Scores are within the expected range for the patient's age.",
		"recommendations": ["No immediate follow-up needed.", "Re-screen in 12 months."]
	}`)
}

// completedSession builds a session with every question answered directly.
func completedSession(t *testing.T) *exam.Session {
	t.Helper()
	session := exam.NewSession(classify.NewService(nil))
	if err := session.Start(exam.PatientInfo{Name: "Ada", Age: "71", Gender: "Female"}); err != nil {
		t.Fatalf("start session: %v", err)
	}

	ctx := context.Background()
	for _, q := range catalog.All() {
		err := session.RecordAnswer(ctx, q.ID, exam.ResolvedScore(q.MaxScore), "recorded", 0)
		if err != nil {
			t.Fatalf("record answer %d: %v", q.ID, err)
		}
	}
	if err := session.Complete(ctx); err != nil {
		t.Fatalf("complete session: %v", err)
	}
	return session
}

// waitForNarrative polls the screen until the summary settles.
func waitForNarrative(t *testing.T, r *ResultsScreen) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for r.narrState == narrativePending {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for narrative")
		}
		time.Sleep(10 * time.Millisecond)
		r.Update(narrativePollMsg{})
	}
}

func TestNilNarrativeServiceShowsPlaceholder(t *testing.T) {
	r := New(completedSession(t), nil, nil)

	cmd := r.Init()
	if cmd != nil {
		t.Fatal("expected no poll command without a narrative service")
	}
	if r.narrState != narrativeReady {
		t.Fatalf("expected ready state, got %d", r.narrState)
	}
	if r.summary == nil || r.summary.Analysis == "" {
		t.Fatal("expected a placeholder summary")
	}
}

func TestNarrativeSuccess(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc := narrative.NewService(provider, narrative.DefaultConfig())

	r := New(completedSession(t), nil, svc)
	if cmd := r.Init(); cmd == nil {
		t.Fatal("expected a poll command")
	}

	waitForNarrative(t, r)

	if r.narrState != narrativeReady {
		t.Fatalf("expected ready state, got err: %v", r.narrErr)
	}
	if len(r.summary.Recommendations) != 2 {
		t.Errorf("expected 2 recommendations, got %d", len(r.summary.Recommendations))
	}
}

func TestNarrativeFailureThenRetry(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: validSummaryJSON()},
	)
	svc := narrative.NewService(provider, narrative.DefaultConfig())

	r := New(completedSession(t), nil, svc)
	r.Init()
	waitForNarrative(t, r)

	if r.narrState != narrativeFailed {
		t.Fatalf("expected failed state, got %d", r.narrState)
	}
	if r.narrErr == nil {
		t.Fatal("expected an error")
	}

	// R retries with the next canned response.
	_, cmd := r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a poll command on retry")
	}
	waitForNarrative(t, r)

	if r.narrState != narrativeReady {
		t.Fatalf("expected ready state after retry, got err: %v", r.narrErr)
	}
}

func TestNewExamResetsSessionAndPops(t *testing.T) {
	session := completedSession(t)
	r := New(session, nil, nil)
	r.Init()

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
	if session.Status() != exam.StatusNotStarted {
		t.Errorf("expected session reset, got %s", session.Status())
	}

	// The rendered report survives the reset.
	if r.report.TotalScore != catalog.MaxPossibleScore() {
		t.Errorf("captured total = %d, want %d", r.report.TotalScore, catalog.MaxPossibleScore())
	}
}
