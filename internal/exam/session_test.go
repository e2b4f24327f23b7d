package exam

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/catalog"
)

// stubClassifier returns canned values; failPredict makes Predict error.
type stubClassifier struct {
	textScore   float64
	failPredict bool
	prediction  *analysis.Prediction
}

func (c *stubClassifier) ScoreText(_ context.Context, _, _ string) float64 {
	return c.textScore
}

func (c *stubClassifier) Predict(_ context.Context, _ analysis.Features) (*analysis.Prediction, error) {
	if c.failPredict {
		return nil, errors.New("classifier unavailable")
	}
	return c.prediction, nil
}

func startedSession(t *testing.T, classifier Classifier) *Session {
	t.Helper()
	s := NewSession(classifier)
	err := s.Start(PatientInfo{Name: "Jordan Lee", Age: "72", Gender: "Female"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStartValidation(t *testing.T) {
	tests := []struct {
		name    string
		patient PatientInfo
		wantErr bool
	}{
		{"valid", PatientInfo{Name: "A", Age: "70", Gender: "Male"}, false},
		{"empty name", PatientInfo{Name: "  ", Age: "70", Gender: "Male"}, true},
		{"empty age", PatientInfo{Name: "A", Age: "", Gender: "Male"}, true},
		{"no gender", PatientInfo{Name: "A", Age: "70", Gender: ""}, true},
	}

	for _, tt := range tests {
		s := NewSession(nil)
		err := s.Start(tt.patient)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Start error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if !tt.wantErr {
			if s.Status() != StatusInProgress {
				t.Errorf("%s: status = %s, want in-progress", tt.name, s.Status())
			}
			if s.ID() == "" {
				t.Errorf("%s: session id not assigned", tt.name)
			}
		}
	}
}

func TestStartTwiceRejected(t *testing.T) {
	s := startedSession(t, nil)
	err := s.Start(PatientInfo{Name: "B", Age: "60", Gender: "Other"})
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Start error = %v, want ErrInvalidState", err)
	}
}

func TestCursorBoundaries(t *testing.T) {
	s := startedSession(t, nil)

	if s.Retreat() {
		t.Error("Retreat at index 0 should be a no-op")
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("index = %d after boundary retreat, want 0", s.CurrentIndex())
	}

	for s.Advance() {
	}
	last := catalog.Len() - 1
	if s.CurrentIndex() != last {
		t.Fatalf("index = %d after advancing, want %d", s.CurrentIndex(), last)
	}
	if s.Advance() {
		t.Error("Advance at last index should be a no-op")
	}
	if s.Status() != StatusInProgress {
		t.Errorf("status = %s after boundary advance, want in-progress", s.Status())
	}
}

func TestRecordAnswerOverwriteRecomputesTotal(t *testing.T) {
	s := startedSession(t, nil)
	ctx := context.Background()

	if err := s.RecordAnswer(ctx, 3, ResolvedScore(2), "2 words repeated correctly", time.Second); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if err := s.RecordAnswer(ctx, 4, ResolvedScore(1), "93", time.Second); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if s.TotalScore() != 3 {
		t.Errorf("TotalScore = %d, want 3", s.TotalScore())
	}

	// Overwrite the registration answer; the total must track the latest
	// record, not accumulate.
	if err := s.RecordAnswer(ctx, 3, ResolvedScore(3), "All 3 words repeated correctly", 2*time.Second); err != nil {
		t.Fatalf("RecordAnswer overwrite: %v", err)
	}
	if s.TotalScore() != 4 {
		t.Errorf("TotalScore after overwrite = %d, want 4", s.TotalScore())
	}
	if s.AnswerCount() != 2 {
		t.Errorf("AnswerCount = %d, want 2", s.AnswerCount())
	}
}

func TestRecordAnswerUnknownQuestion(t *testing.T) {
	s := startedSession(t, nil)
	err := s.RecordAnswer(context.Background(), 42, ResolvedScore(1), "x", 0)
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("error = %v, want ErrUnknownQuestion", err)
	}
	if s.TotalScore() != 0 || s.AnswerCount() != 0 {
		t.Error("failed record must not change state")
	}
}

func TestRecordAnswerOutsideInProgress(t *testing.T) {
	s := NewSession(nil)
	err := s.RecordAnswer(context.Background(), 4, ResolvedScore(1), "93", 0)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("error = %v, want ErrInvalidState before start", err)
	}

	s = startedSession(t, nil)
	if err := s.Complete(context.Background()); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	err = s.RecordAnswer(context.Background(), 4, ResolvedScore(1), "93", 0)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("error = %v, want ErrInvalidState after completion", err)
	}
}

func TestPendingResolvedByPredicate(t *testing.T) {
	s := startedSession(t, nil)
	ctx := context.Background()

	// Correct calculation answer: predicate true awards full MaxScore.
	if err := s.RecordAnswer(ctx, 4, PendingScore(), " 93 ", time.Second); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	rec, _ := s.AnswerFor(4)
	if rec.Score != 1 || rec.ResolvedBy != ResolvedPredicate {
		t.Errorf("record = %+v, want score 1 via predicate", rec)
	}

	// Failing predicate resolves to 0, never to a pending marker.
	if err := s.RecordAnswer(ctx, 6, PendingScore(), "WORLD", time.Second); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	rec, _ = s.AnswerFor(6)
	if rec.Score != 0 || rec.ResolvedBy != ResolvedPredicate {
		t.Errorf("record = %+v, want score 0 via predicate", rec)
	}
	if s.TotalScore() != 1 {
		t.Errorf("TotalScore = %d, want 1", s.TotalScore())
	}
}

func TestPendingResolvedByClassifier(t *testing.T) {
	// Question 1 defers to the classifier; confidence 0.6 of max 1 rounds up.
	s := startedSession(t, &stubClassifier{textScore: 0.6})
	if err := s.RecordAnswer(context.Background(), 1, PendingScore(), "it is the 4th of March", time.Second); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	rec, _ := s.AnswerFor(1)
	if rec.Score != 1 || rec.ResolvedBy != ResolvedClassifier {
		t.Errorf("record = %+v, want score 1 via classifier", rec)
	}
}

func TestPendingWithoutClassifierScoresZero(t *testing.T) {
	s := startedSession(t, nil)
	if err := s.RecordAnswer(context.Background(), 1, PendingScore(), "some answer", time.Second); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	rec, _ := s.AnswerFor(1)
	if rec.Score != 0 || rec.ResolvedBy != ResolvedDefault {
		t.Errorf("record = %+v, want score 0 via default", rec)
	}
}

func TestCompleteAttachesPrediction(t *testing.T) {
	pred := &analysis.Prediction{Severity: analysis.SeverityMild, Confidence: 0.9}
	s := startedSession(t, &stubClassifier{prediction: pred})

	if err := s.Complete(context.Background()); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want completed", s.Status())
	}
	if s.Prediction() != pred {
		t.Error("prediction not attached")
	}
	if s.DisplaySeverity() != analysis.SeverityMild {
		t.Errorf("DisplaySeverity = %q, want classifier severity", s.DisplaySeverity())
	}
}

func TestCompleteSurvivesClassifierFailure(t *testing.T) {
	s := startedSession(t, &stubClassifier{failPredict: true})
	if err := s.RecordAnswer(context.Background(), 4, ResolvedScore(1), "93", time.Second); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	if err := s.Complete(context.Background()); err != nil {
		t.Fatalf("Complete must not fail on classifier error: %v", err)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want completed", s.Status())
	}
	if s.Prediction() != nil {
		t.Error("prediction should be nil after classifier failure")
	}
	// The baseline interpretation is still computed from the raw percentage.
	report := s.Report()
	if report.TotalScore != 1 {
		t.Errorf("baseline TotalScore = %d, want 1", report.TotalScore)
	}
	if s.DisplaySeverity() != report.Severity {
		t.Error("display severity should fall back to the baseline report")
	}
}

func TestCompleteRequiresInProgress(t *testing.T) {
	s := NewSession(nil)
	if err := s.Complete(context.Background()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Complete before start = %v, want ErrInvalidState", err)
	}

	s = startedSession(t, nil)
	if err := s.Complete(context.Background()); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := s.Complete(context.Background()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Complete = %v, want ErrInvalidState", err)
	}
}

func TestResetIdempotent(t *testing.T) {
	s := startedSession(t, nil)
	if err := s.RecordAnswer(context.Background(), 4, ResolvedScore(1), "93", time.Second); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	s.Reset()
	s.Reset()

	if s.Status() != StatusNotStarted {
		t.Errorf("status = %s, want not-started", s.Status())
	}
	if s.TotalScore() != 0 || s.AnswerCount() != 0 || s.CurrentIndex() != 0 {
		t.Error("reset did not clear session state")
	}
	if s.ID() != "" || s.Patient() != (PatientInfo{}) {
		t.Error("reset did not clear identity")
	}

	// The reset session is usable again.
	if err := s.Start(PatientInfo{Name: "B", Age: "65", Gender: "Male"}); err != nil {
		t.Errorf("Start after reset: %v", err)
	}
}

func TestFeaturesNormalization(t *testing.T) {
	s := startedSession(t, nil)
	ctx := context.Background()
	if err := s.RecordAnswer(ctx, 3, ResolvedScore(2), "", 1500*time.Millisecond); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if err := s.RecordAnswer(ctx, 4, ResolvedScore(1), "93", 500*time.Millisecond); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	f := s.Features()
	reg := f.CategoryResponses["Registration"]
	if len(reg) != 1 || reg[0] < 0.66 || reg[0] > 0.67 {
		t.Errorf("Registration responses = %v, want [2/3]", reg)
	}
	if f.PatientAge != 72 {
		t.Errorf("PatientAge = %d, want 72", f.PatientAge)
	}
	if f.ResponseTimes[3] != 1500*time.Millisecond {
		t.Errorf("ResponseTimes[3] = %v, want 1.5s", f.ResponseTimes[3])
	}
	if got := f.AverageResponseTime(); got != time.Second {
		t.Errorf("AverageResponseTime = %v, want 1s", got)
	}
}
