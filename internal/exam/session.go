// Package exam holds the examination session state machine: cursor position,
// per-question answer records, derived total score, and the lifecycle from
// patient intake through analysis to the completed report.
package exam

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/catalog"
)

// Status is the session lifecycle tag.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusAnalyzing
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusInProgress:
		return "in-progress"
	case StatusAnalyzing:
		return "analyzing"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ErrInvalidState signals an operation attempted outside its required status.
var ErrInvalidState = errors.New("invalid session state")

// ErrUnknownQuestion signals an answer recorded for an id not in the catalog.
var ErrUnknownQuestion = errors.New("unknown question")

// PatientInfo is the free-form identification captured at intake.
// Age stays a string: it is display data, parsed only for the classifier.
type PatientInfo struct {
	Name   string
	Age    string
	Gender string
}

// Validate checks the intake requirements: non-empty name and age, and a
// selected gender.
func (p PatientInfo) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("patient name is required")
	}
	if strings.TrimSpace(p.Age) == "" {
		return errors.New("patient age is required")
	}
	if p.Gender == "" {
		return errors.New("patient gender is required")
	}
	return nil
}

// Score is a submitted point value. A pending score defers resolution to the
// question's scoring rule or the classifier; it replaces the old convention
// of overloading -1 in the numeric domain.
type Score struct {
	pending bool
	points  int
}

// PendingScore marks the score as awaiting evaluation.
func PendingScore() Score {
	return Score{pending: true}
}

// ResolvedScore carries an already-known point value.
func ResolvedScore(points int) Score {
	return Score{points: points}
}

// Pending reports whether the score still needs evaluation.
func (s Score) Pending() bool { return s.pending }

// Points returns the resolved point value. Only meaningful when not pending.
func (s Score) Points() int { return s.points }

// Resolution records how an answer's score was determined.
type Resolution string

const (
	ResolvedDirect     Resolution = "direct"     // score submitted by the examiner
	ResolvedPredicate  Resolution = "predicate"  // catalog validation predicate
	ResolvedClassifier Resolution = "classifier" // text classifier confidence
	ResolvedDefault    Resolution = "default"    // no rule applied, scored 0
)

// AnswerRecord is the stored result for one question. Overwritten on
// resubmission, cleared only by Reset.
type AnswerRecord struct {
	Score        int
	Raw          string
	ResponseTime time.Duration
	ResolvedBy   Resolution
}

// Classifier is the external classification capability the session calls
// into. ScoreText resolves deferred free-text scores synchronously; Predict
// runs once at completion and may fail.
type Classifier interface {
	ScoreText(ctx context.Context, answer, category string) float64
	Predict(ctx context.Context, features analysis.Features) (*analysis.Prediction, error)
}

// Session is one examination attempt. It is owned by a single UI goroutine;
// no internal locking.
type Session struct {
	id         string
	patient    PatientInfo
	index      int
	answers    map[int]AnswerRecord
	totalScore int
	status     Status
	prediction *analysis.Prediction
	classifier Classifier
	startedAt  time.Time
}

// NewSession creates a session in the NotStarted state. classifier may be
// nil; deferred scores then resolve to 0 and completion skips analysis.
func NewSession(classifier Classifier) *Session {
	return &Session{
		answers:    make(map[int]AnswerRecord),
		classifier: classifier,
	}
}

// ID returns the session identifier, empty before Start.
func (s *Session) ID() string { return s.id }

// Status returns the current lifecycle tag.
func (s *Session) Status() Status { return s.status }

// Patient returns the intake info.
func (s *Session) Patient() PatientInfo { return s.patient }

// TotalScore is the sum of all recorded answer scores.
func (s *Session) TotalScore() int { return s.totalScore }

// StartedAt returns when the examination began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Prediction returns the classifier output attached at completion, or nil.
func (s *Session) Prediction() *analysis.Prediction { return s.prediction }

// CurrentIndex returns the cursor into the question sequence.
func (s *Session) CurrentIndex() int { return s.index }

// CurrentQuestion returns the question under the cursor.
func (s *Session) CurrentQuestion() (catalog.Question, bool) {
	all := catalog.All()
	if s.index < 0 || s.index >= len(all) {
		return catalog.Question{}, false
	}
	return all[s.index], true
}

// AnswerFor returns the recorded answer for a question id.
func (s *Session) AnswerFor(questionID int) (AnswerRecord, bool) {
	rec, ok := s.answers[questionID]
	return rec, ok
}

// Answered reports whether a question has a recorded answer.
func (s *Session) Answered(questionID int) bool {
	_, ok := s.answers[questionID]
	return ok
}

// AnswerCount returns the number of distinct questions answered.
func (s *Session) AnswerCount() int { return len(s.answers) }

// Start validates the patient info and moves NotStarted → InProgress,
// resetting the cursor to the first question.
func (s *Session) Start(patient PatientInfo) error {
	if s.status != StatusNotStarted {
		return fmt.Errorf("start: %w (status %s)", ErrInvalidState, s.status)
	}
	if err := patient.Validate(); err != nil {
		return err
	}
	s.id = uuid.NewString()
	s.patient = patient
	s.index = 0
	s.status = StatusInProgress
	s.startedAt = time.Now()
	return nil
}

// Advance moves the cursor forward one question. A call at the last index is
// a no-op returning false; completing the examination is a separate,
// explicit operation.
func (s *Session) Advance() bool {
	if s.index >= catalog.Len()-1 {
		return false
	}
	s.index++
	return true
}

// Retreat moves the cursor back one question, a no-op at index 0.
func (s *Session) Retreat() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// RecordAnswer stores the answer for a question, resolving pending scores
// in priority order: validation predicate, then classifier text scoring,
// then 0. The record overwrites any prior submission for the id and the
// total score is recomputed exactly.
func (s *Session) RecordAnswer(ctx context.Context, questionID int, score Score, raw string, responseTime time.Duration) error {
	if s.status != StatusInProgress {
		return fmt.Errorf("record answer: %w (status %s)", ErrInvalidState, s.status)
	}
	q, err := catalog.ByID(questionID)
	if err != nil {
		return fmt.Errorf("record answer: %w: id %d", ErrUnknownQuestion, questionID)
	}
	if responseTime < 0 {
		responseTime = 0
	}

	points, how := s.resolve(ctx, q, score, raw)
	if points < 0 {
		points = 0
	}
	if points > q.MaxScore {
		points = q.MaxScore
	}

	s.answers[questionID] = AnswerRecord{
		Score:        points,
		Raw:          raw,
		ResponseTime: responseTime,
		ResolvedBy:   how,
	}
	s.recomputeTotal()
	return nil
}

// resolve turns a submitted score into points.
func (s *Session) resolve(ctx context.Context, q catalog.Question, score Score, raw string) (int, Resolution) {
	if !score.Pending() {
		return score.Points(), ResolvedDirect
	}

	switch rule := q.Scoring.(type) {
	case catalog.Predicate:
		if rule.Match(raw) {
			return q.MaxScore, ResolvedPredicate
		}
		return 0, ResolvedPredicate
	case catalog.ClassifierScored:
		if s.classifier == nil {
			return 0, ResolvedDefault
		}
		confidence := s.classifier.ScoreText(ctx, raw, q.Category)
		return int(confidence*float64(q.MaxScore) + 0.5), ResolvedClassifier
	default:
		return 0, ResolvedDefault
	}
}

func (s *Session) recomputeTotal() {
	total := 0
	for _, rec := range s.answers {
		total += rec.Score
	}
	s.totalScore = total
}

// Complete moves InProgress → Analyzing, runs the classifier over the
// gathered features, and lands in Completed. Classifier failure is swallowed:
// the prediction stays nil and completion proceeds.
func (s *Session) Complete(ctx context.Context) error {
	if s.status != StatusInProgress {
		return fmt.Errorf("complete: %w (status %s)", ErrInvalidState, s.status)
	}
	s.status = StatusAnalyzing

	if s.classifier != nil {
		pred, err := s.classifier.Predict(ctx, s.Features())
		if err == nil {
			s.prediction = pred
		}
	}

	s.status = StatusCompleted
	return nil
}

// Reset returns the session to NotStarted from any state, clearing answers,
// cursor, patient info, and the prediction. Calling it repeatedly is
// harmless.
func (s *Session) Reset() {
	s.id = ""
	s.patient = PatientInfo{}
	s.index = 0
	s.answers = make(map[int]AnswerRecord)
	s.totalScore = 0
	s.status = StatusNotStarted
	s.prediction = nil
	s.startedAt = time.Time{}
}

// Features gathers the classifier input: normalized per-category answer
// scores, demographics, and response times.
func (s *Session) Features() analysis.Features {
	responses := make(map[string][]float64)
	times := make(map[int]time.Duration, len(s.answers))

	for _, q := range catalog.All() {
		rec, ok := s.answers[q.ID]
		if !ok {
			continue
		}
		normalized := 0.0
		if q.MaxScore > 0 {
			normalized = float64(rec.Score) / float64(q.MaxScore)
		}
		responses[q.Category] = append(responses[q.Category], normalized)
		times[q.ID] = rec.ResponseTime
	}

	age, _ := strconv.Atoi(strings.TrimSpace(s.patient.Age))
	return analysis.Features{
		CategoryResponses: responses,
		PatientAge:        age,
		PatientGender:     s.patient.Gender,
		ResponseTimes:     times,
	}
}

// Scores returns the question id → score mapping for the analysis pipeline.
func (s *Session) Scores() map[int]int {
	out := make(map[int]int, len(s.answers))
	for id, rec := range s.answers {
		out[id] = rec.Score
	}
	return out
}

// Report computes the threshold-based examination report. It is the baseline
// result and is retained even when a classifier prediction supersedes its
// severity for display.
func (s *Session) Report() analysis.Report {
	return analysis.Analyze(s.Scores(), catalog.MaxPossibleScore())
}

// DisplaySeverity returns the severity to present: the classifier's when a
// prediction exists, otherwise the baseline report's.
func (s *Session) DisplaySeverity() analysis.Severity {
	if s.prediction != nil {
		return s.prediction.Severity
	}
	return s.Report().Severity
}
