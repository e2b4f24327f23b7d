// Package exam is the question-flow screen: one catalog question at a time,
// with navigation, answer capture, and completion handoff to the results.
package exam

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/asmit/mentis/internal/catalog"
	sess "github.com/asmit/mentis/internal/exam"
	"github.com/asmit/mentis/internal/narrative"
	"github.com/asmit/mentis/internal/router"
	"github.com/asmit/mentis/internal/screen"
	"github.com/asmit/mentis/internal/screens/results"
	"github.com/asmit/mentis/internal/store"
	"github.com/asmit/mentis/internal/ui/components"
	"github.com/asmit/mentis/internal/ui/layout"
)

// examCompletedMsg signals that the analysis phase finished.
type examCompletedMsg struct {
	Err error
}

// ExamScreen implements screen.Screen for the active examination.
type ExamScreen struct {
	session      *sess.Session
	eventRepo    store.EventRepo
	narrativeSvc *narrative.Service

	input       components.TextInput
	choice      components.MultiChoice
	choiceMode  bool
	shownAt     time.Time
	confirmQuit bool
	completing  bool
	errMsg      string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.ContextProvider = (*ExamScreen)(nil)

// New creates the exam screen for an already started session.
func New(session *sess.Session, eventRepo store.EventRepo, narrativeSvc *narrative.Service) *ExamScreen {
	e := &ExamScreen{
		session:      session,
		eventRepo:    eventRepo,
		narrativeSvc: narrativeSvc,
	}
	e.setupQuestion()
	return e
}

func (e *ExamScreen) Init() tea.Cmd {
	if !e.choiceMode {
		return e.input.Init()
	}
	return nil
}

func (e *ExamScreen) Title() string {
	return "Examination"
}

func (e *ExamScreen) HeaderContext() string {
	return e.session.Patient().Name
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	if e.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon examination"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if e.completing {
		return []layout.KeyHint{}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Record answer"},
	}
	if e.session.CurrentIndex() > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	if e.currentAnswered() && e.session.CurrentIndex() < catalog.Len()-1 {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
	return hints
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examCompletedMsg:
		return e.handleCompleted(msg)
	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e.forwardToWidget(msg)
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if e.completing {
		return e, nil
	}

	if e.confirmQuit {
		switch msg.String() {
		case "y", "Y":
			return e.abandon()
		case "n", "N", "esc":
			e.confirmQuit = false
		}
		return e, nil
	}

	switch msg.String() {
	case "esc":
		e.confirmQuit = true
		return e, nil
	case "left":
		if e.session.Retreat() {
			e.setupQuestion()
			return e, e.Init()
		}
		return e, nil
	case "right":
		if e.currentAnswered() && e.session.Advance() {
			e.setupQuestion()
			return e, e.Init()
		}
		return e, nil
	case "enter":
		return e.submit(msg)
	}

	return e.forwardToWidget(msg)
}

func (e *ExamScreen) forwardToWidget(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if e.choiceMode {
		e.choice, cmd = e.choice.Update(msg)
	} else {
		before := e.input.Value()
		e.input, cmd = e.input.Update(msg)
		if e.input.Value() != before {
			e.input.ClearRecorded()
		}
	}
	return e, cmd
}

// submit records the current answer and moves on. The last question hands
// off to the analysis phase instead of advancing.
func (e *ExamScreen) submit(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q, ok := e.session.CurrentQuestion()
	if !ok {
		return e, nil
	}

	var score sess.Score
	var raw string

	if e.choiceMode {
		// Let the component register the highlighted option first.
		e.choice, _ = e.choice.Update(msg)
		if !e.choice.HasChoice() {
			return e, nil
		}
		opt := q.Options[e.choice.ChosenIndex]
		score = sess.ResolvedScore(opt.Score)
		raw = opt.Label
	} else {
		raw = strings.TrimSpace(e.input.Value())
		if raw == "" {
			return e, nil
		}
		score = sess.PendingScore()
	}

	responseTime := time.Since(e.shownAt)
	ctx := context.Background()
	if err := e.session.RecordAnswer(ctx, q.ID, score, raw, responseTime); err != nil {
		e.errMsg = err.Error()
		return e, nil
	}
	e.errMsg = ""
	e.appendAnswerEvent(ctx, q)

	if e.session.Advance() {
		e.setupQuestion()
		return e, e.Init()
	}

	e.completing = true
	return e, e.completeCmd()
}

func (e *ExamScreen) appendAnswerEvent(ctx context.Context, q catalog.Question) {
	if e.eventRepo == nil {
		return
	}
	rec, ok := e.session.AnswerFor(q.ID)
	if !ok {
		return
	}
	_ = e.eventRepo.AppendAnswerEvent(ctx, store.AnswerEventData{
		ExamID:       e.session.ID(),
		QuestionID:   q.ID,
		Category:     q.Category,
		QuestionText: q.Text,
		RawAnswer:    rec.Raw,
		Score:        rec.Score,
		MaxScore:     q.MaxScore,
		ResolvedBy:   string(rec.ResolvedBy),
		TimeMs:       rec.ResponseTime.Milliseconds(),
	})
}

// completeCmd runs the classifier prediction off the UI goroutine and
// persists the completion event.
func (e *ExamScreen) completeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := e.session.Complete(ctx); err != nil {
			return examCompletedMsg{Err: err}
		}

		if e.eventRepo != nil {
			report := e.session.Report()
			patient := e.session.Patient()
			_ = e.eventRepo.AppendExamEvent(ctx, store.ExamEventData{
				ExamID:        e.session.ID(),
				Action:        "completed",
				PatientName:   patient.Name,
				PatientAge:    patient.Age,
				PatientGender: patient.Gender,
				TotalScore:    report.TotalScore,
				MaxScore:      report.MaxPossibleScore,
				Percentage:    report.Percentage,
				Severity:      string(e.session.DisplaySeverity()),
				DurationSecs:  int64(time.Since(e.session.StartedAt()).Seconds()),
			})
		}

		return examCompletedMsg{}
	}
}

func (e *ExamScreen) handleCompleted(msg examCompletedMsg) (screen.Screen, tea.Cmd) {
	e.completing = false
	if msg.Err != nil {
		e.errMsg = msg.Err.Error()
		return e, nil
	}
	next := results.New(e.session, e.eventRepo, e.narrativeSvc)
	return e, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// abandon resets the session and returns to the intake screen.
func (e *ExamScreen) abandon() (screen.Screen, tea.Cmd) {
	if e.eventRepo != nil {
		patient := e.session.Patient()
		_ = e.eventRepo.AppendExamEvent(context.Background(), store.ExamEventData{
			ExamID:        e.session.ID(),
			Action:        "reset",
			PatientName:   patient.Name,
			PatientAge:    patient.Age,
			PatientGender: patient.Gender,
			TotalScore:    e.session.TotalScore(),
			MaxScore:      catalog.MaxPossibleScore(),
		})
	}
	e.session.Reset()
	return e, func() tea.Msg { return router.PopScreenMsg{} }
}

func (e *ExamScreen) currentAnswered() bool {
	q, ok := e.session.CurrentQuestion()
	if !ok {
		return false
	}
	return e.session.Answered(q.ID)
}

// setupQuestion rebuilds the answer widget for the question under the
// cursor, restoring a previously recorded answer when navigating back.
func (e *ExamScreen) setupQuestion() {
	q, ok := e.session.CurrentQuestion()
	if !ok {
		return
	}
	e.shownAt = time.Now()

	if q.Kind == catalog.KindMultipleChoice {
		e.choiceMode = true
		labels := make([]string, len(q.Options))
		for i, opt := range q.Options {
			labels[i] = opt.Label
		}
		e.choice = components.NewMultiChoice(q.Text, labels)
		if rec, answered := e.session.AnswerFor(q.ID); answered {
			for i, opt := range q.Options {
				if opt.Label == rec.Raw {
					e.choice.SetChosen(i)
					break
				}
			}
		}
		return
	}

	e.choiceMode = false
	e.input = components.NewTextInput(answerPlaceholder(q), false, 120)
	if rec, answered := e.session.AnswerFor(q.ID); answered {
		e.input.SetValue(rec.Raw)
		e.input.MarkRecorded()
	}
}

// answerPlaceholder picks the text-input hint for a question. Drawing tasks
// are performed on paper; the examiner types a description of the result.
func answerPlaceholder(q catalog.Question) string {
	if q.Kind == catalog.KindDrawing {
		return "Describe the patient's drawing..."
	}
	return "Type the patient's answer..."
}
