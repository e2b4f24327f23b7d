// Package results shows the completed examination: scores, interpretation,
// classifier assessment, and the generated narrative summary.
package results

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/catalog"
	"github.com/asmit/mentis/internal/exam"
	"github.com/asmit/mentis/internal/narrative"
	"github.com/asmit/mentis/internal/router"
	"github.com/asmit/mentis/internal/screen"
	"github.com/asmit/mentis/internal/store"
	"github.com/asmit/mentis/internal/ui/layout"
)

// narrativePollMsg drives the poll loop while the summary generates.
type narrativePollMsg struct{}

// narrativeState tracks the summary lifecycle on this screen.
type narrativeState int

const (
	narrativePending narrativeState = iota
	narrativeReady
	narrativeFailed
)

// ResultsScreen implements screen.Screen for the examination report.
// Report data is captured at construction so the view stays stable after
// the session is reset for the next patient.
type ResultsScreen struct {
	session      *exam.Session
	eventRepo    store.EventRepo
	narrativeSvc *narrative.Service

	patient    exam.PatientInfo
	report     analysis.Report
	prediction *analysis.Prediction
	severity   analysis.Severity
	times      []questionTime

	narrState narrativeState
	summary   *narrative.Summary
	narrErr   error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// questionTime is one row of the response-time listing.
type questionTime struct {
	Question string
	Elapsed  time.Duration
}

// New creates the results screen for a completed session.
func New(session *exam.Session, eventRepo store.EventRepo, narrativeSvc *narrative.Service) *ResultsScreen {
	var times []questionTime
	for _, q := range catalog.All() {
		if rec, ok := session.AnswerFor(q.ID); ok {
			times = append(times, questionTime{Question: q.Category, Elapsed: rec.ResponseTime})
		}
	}

	return &ResultsScreen{
		session:      session,
		eventRepo:    eventRepo,
		narrativeSvc: narrativeSvc,
		patient:      session.Patient(),
		report:       session.Report(),
		prediction:   session.Prediction(),
		severity:     session.DisplaySeverity(),
		times:        times,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return r.requestNarrative()
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "N", Description: "New examination"},
	}
	if r.narrState == narrativeFailed {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry summary"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case narrativePollMsg:
		return r.pollNarrative()
	case tea.KeyMsg:
		switch msg.String() {
		case "n", "N", "esc":
			return r.newExam()
		case "r", "R":
			if r.narrState == narrativeFailed {
				return r, r.requestNarrative()
			}
		}
	}
	return r, nil
}

// requestNarrative kicks off (or retries) summary generation and starts
// the poll loop.
func (r *ResultsScreen) requestNarrative() tea.Cmd {
	r.narrState = narrativePending
	r.narrErr = nil

	if r.narrativeSvc == nil {
		r.summary = narrative.Placeholder()
		r.narrState = narrativeReady
		return nil
	}

	r.narrativeSvc.Request(context.Background(), narrative.Input{
		PatientName:   r.patient.Name,
		PatientAge:    r.patient.Age,
		PatientGender: r.patient.Gender,
		Report:        r.report,
		Prediction:    r.prediction,
	})
	return pollCmd()
}

func (r *ResultsScreen) pollNarrative() (screen.Screen, tea.Cmd) {
	if r.narrState != narrativePending {
		return r, nil
	}
	res, ok := r.narrativeSvc.Consume()
	if !ok {
		return r, pollCmd()
	}
	if res.Err != nil {
		r.narrState = narrativeFailed
		r.narrErr = res.Err
		return r, nil
	}
	r.narrState = narrativeReady
	r.summary = res.Summary
	return r, nil
}

func pollCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return narrativePollMsg{}
	})
}

// newExam returns to the intake screen for the next patient.
func (r *ResultsScreen) newExam() (screen.Screen, tea.Cmd) {
	r.session.Reset()
	return r, func() tea.Msg { return router.PopScreenMsg{} }
}
