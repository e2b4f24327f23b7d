package exam

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asmit/mentis/internal/catalog"
	"github.com/asmit/mentis/internal/classify"
	sess "github.com/asmit/mentis/internal/exam"
	"github.com/asmit/mentis/internal/router"
	"github.com/asmit/mentis/internal/screens/results"
	"github.com/asmit/mentis/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	examEvents   []store.ExamEventData
	answerEvents []store.AnswerEventData
}

func (m *mockEventRepo) AppendExamEvent(_ context.Context, data store.ExamEventData) error {
	m.examEvents = append(m.examEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentExams(_ context.Context, _ int) ([]store.ExamRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ExamStats(_ context.Context) (*store.ExamStats, error) {
	return &store.ExamStats{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testExamScreen(t *testing.T) (*ExamScreen, *sess.Session, *mockEventRepo) {
	t.Helper()
	session := sess.NewSession(classify.NewService(nil))
	err := session.Start(sess.PatientInfo{Name: "Ada", Age: "71", Gender: "Female"})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	repo := &mockEventRepo{}
	return New(session, repo, nil), session, repo
}

func typeText(s *ExamScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

// answerCurrent submits an answer for the question under the cursor.
func answerCurrent(t *testing.T, s *ExamScreen, session *sess.Session) {
	t.Helper()
	q, ok := session.CurrentQuestion()
	if !ok {
		t.Fatal("no current question")
	}
	if q.Kind == catalog.KindMultipleChoice {
		s.Update(specialKey(tea.KeyEnter))
		return
	}
	typeText(s, "test answer")
	s.Update(specialKey(tea.KeyEnter))
}

func TestFreeTextSubmitRecordsAndAdvances(t *testing.T) {
	s, session, repo := testExamScreen(t)

	typeText(s, "March 3rd")
	s.Update(specialKey(tea.KeyEnter))

	if !session.Answered(1) {
		t.Fatal("expected question 1 answered")
	}
	rec, _ := session.AnswerFor(1)
	if rec.Raw != "March 3rd" {
		t.Errorf("raw answer = %q, want %q", rec.Raw, "March 3rd")
	}
	if session.CurrentIndex() != 1 {
		t.Errorf("expected cursor at 1, got %d", session.CurrentIndex())
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(repo.answerEvents))
	}
	if repo.answerEvents[0].QuestionID != 1 {
		t.Errorf("answer event question = %d, want 1", repo.answerEvents[0].QuestionID)
	}
}

func TestEmptySubmitIsIgnored(t *testing.T) {
	s, session, repo := testExamScreen(t)

	s.Update(specialKey(tea.KeyEnter))

	if session.Answered(1) {
		t.Error("empty answer should not be recorded")
	}
	if len(repo.answerEvents) != 0 {
		t.Errorf("expected no answer events, got %d", len(repo.answerEvents))
	}
}

func TestMultipleChoiceScoring(t *testing.T) {
	s, session, _ := testExamScreen(t)

	// Advance to question 3 (Registration, multiple choice).
	answerCurrent(t, s, session)
	answerCurrent(t, s, session)

	if !s.choiceMode {
		t.Fatal("expected multiple-choice mode at question 3")
	}

	// First option scores 3 points.
	s.Update(specialKey(tea.KeyEnter))

	rec, ok := session.AnswerFor(3)
	if !ok {
		t.Fatal("expected question 3 answered")
	}
	if rec.Score != 3 {
		t.Errorf("score = %d, want 3", rec.Score)
	}
	if rec.ResolvedBy != sess.ResolvedDirect {
		t.Errorf("resolved by = %q, want direct", rec.ResolvedBy)
	}
}

func TestBackNavigationRestoresAnswer(t *testing.T) {
	s, session, _ := testExamScreen(t)

	typeText(s, "March 3rd")
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyLeft))

	if session.CurrentIndex() != 0 {
		t.Fatalf("expected cursor back at 0, got %d", session.CurrentIndex())
	}
	if s.input.Value() != "March 3rd" {
		t.Errorf("restored input = %q, want %q", s.input.Value(), "March 3rd")
	}
}

func TestForwardNavigationRequiresAnswer(t *testing.T) {
	s, session, _ := testExamScreen(t)

	s.Update(specialKey(tea.KeyRight))
	if session.CurrentIndex() != 0 {
		t.Error("right should not advance past an unanswered question")
	}

	typeText(s, "here")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyRight))
	if session.CurrentIndex() != 1 {
		t.Errorf("expected cursor at 1 after revisiting, got %d", session.CurrentIndex())
	}
}

func TestCompletionHandsOffToResults(t *testing.T) {
	s, session, repo := testExamScreen(t)

	var cmd tea.Cmd
	for i := 0; i < catalog.Len(); i++ {
		q, _ := session.CurrentQuestion()
		if q.Kind == catalog.KindMultipleChoice {
			_, cmd = s.Update(specialKey(tea.KeyEnter))
		} else {
			typeText(s, "test answer")
			_, cmd = s.Update(specialKey(tea.KeyEnter))
		}
	}

	if !s.completing {
		t.Fatal("expected completing state after the last answer")
	}
	if cmd == nil {
		t.Fatal("expected a completion command")
	}

	msg := cmd()
	done, ok := msg.(examCompletedMsg)
	if !ok {
		t.Fatalf("expected examCompletedMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("unexpected completion error: %v", done.Err)
	}
	if session.Status() != sess.StatusCompleted {
		t.Fatalf("expected completed session, got %s", session.Status())
	}

	// A completed exam event must be persisted.
	var found bool
	for _, e := range repo.examEvents {
		if e.Action == "completed" {
			found = true
			if e.MaxScore != catalog.MaxPossibleScore() {
				t.Errorf("max score = %d, want %d", e.MaxScore, catalog.MaxPossibleScore())
			}
		}
	}
	if !found {
		t.Error("expected a completed exam event")
	}

	// The completion message routes to the results screen.
	_, cmd = s.Update(done)
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	nav := cmd()
	replace, ok := nav.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", nav)
	}
	if _, ok := replace.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", replace.Screen)
	}
}

func TestAbandonFlow(t *testing.T) {
	s, session, repo := testExamScreen(t)

	typeText(s, "answer one")
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	// N cancels.
	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Fatal("expected confirmation dismissed")
	}

	// Y abandons: session reset and a reset event persisted.
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
	if session.Status() != sess.StatusNotStarted {
		t.Errorf("expected session reset, got %s", session.Status())
	}

	var found bool
	for _, e := range repo.examEvents {
		if e.Action == "reset" {
			found = true
		}
	}
	if !found {
		t.Error("expected a reset exam event")
	}
}

func TestAnswerPlaceholderByKind(t *testing.T) {
	tests := []struct {
		kind catalog.Kind
		want string
	}{
		{catalog.KindFreeText, "Type the patient's answer..."},
		{catalog.KindDrawing, "Describe the patient's drawing..."},
	}
	for _, tt := range tests {
		q := catalog.Question{Kind: tt.kind}
		if got := answerPlaceholder(q); got != tt.want {
			t.Errorf("answerPlaceholder(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
