// Package landing is the intake screen: patient details plus the entry
// point into a new examination.
package landing

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/asmit/mentis/internal/catalog"
	"github.com/asmit/mentis/internal/exam"
	"github.com/asmit/mentis/internal/narrative"
	"github.com/asmit/mentis/internal/router"
	"github.com/asmit/mentis/internal/screen"
	examscreen "github.com/asmit/mentis/internal/screens/exam"
	"github.com/asmit/mentis/internal/store"
	"github.com/asmit/mentis/internal/ui/components"
	"github.com/asmit/mentis/internal/ui/layout"
)

// Field focus order on the intake form.
const (
	focusName = iota
	focusAge
	focusGender
	focusBegin
)

var genders = []string{"Male", "Female", "Other"}

// LandingScreen implements screen.Screen for the intake form.
type LandingScreen struct {
	eventRepo    store.EventRepo
	classifier   exam.Classifier
	narrativeSvc *narrative.Service

	nameInput components.TextInput
	ageInput  components.TextInput
	gender    int
	focus     int
	errMsg    string
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates a new LandingScreen with injected dependencies. classifier and
// narrativeSvc may be nil when no LLM provider is configured.
func New(eventRepo store.EventRepo, classifier exam.Classifier, narrativeSvc *narrative.Service) *LandingScreen {
	name := components.NewTextInput("Patient name", false, 60)
	age := components.NewTextInput("Age", true, 3)
	age.Model.Blur()

	return &LandingScreen{
		eventRepo:    eventRepo,
		classifier:   classifier,
		narrativeSvc: narrativeSvc,
		nameInput:    name,
		ageInput:     age,
		gender:       -1,
		focus:        focusName,
	}
}

func (l *LandingScreen) Init() tea.Cmd {
	return l.nameInput.Init()
}

func (l *LandingScreen) Title() string {
	return "Cognitive Screening"
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
	}
	if l.focus == focusGender {
		hints = append(hints, layout.KeyHint{Key: "←/→", Description: "Select gender"})
	}
	if l.focus == focusBegin {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Begin examination"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l.forwardToInput(msg)
	}

	switch kmsg.String() {
	case "tab", "down":
		l.setFocus(l.nextFocus(1))
		return l, nil
	case "shift+tab", "up":
		l.setFocus(l.nextFocus(-1))
		return l, nil
	case "left":
		if l.focus == focusGender && l.gender > 0 {
			l.gender--
		}
		return l, nil
	case "right":
		if l.focus == focusGender {
			if l.gender < len(genders)-1 {
				l.gender++
			}
			if l.gender < 0 {
				l.gender = 0
			}
		}
		return l, nil
	case "enter":
		if l.focus == focusBegin {
			return l.begin()
		}
		l.setFocus(l.nextFocus(1))
		return l, nil
	}

	return l.forwardToInput(msg)
}

func (l *LandingScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch l.focus {
	case focusName:
		l.nameInput, cmd = l.nameInput.Update(msg)
	case focusAge:
		l.ageInput, cmd = l.ageInput.Update(msg)
	}
	return l, cmd
}

func (l *LandingScreen) nextFocus(dir int) int {
	next := l.focus + dir
	if next < focusName {
		return focusBegin
	}
	if next > focusBegin {
		return focusName
	}
	return next
}

func (l *LandingScreen) setFocus(f int) {
	l.focus = f
	l.nameInput.Model.Blur()
	l.ageInput.Model.Blur()
	switch f {
	case focusName:
		l.nameInput.Model.Focus()
	case focusAge:
		l.ageInput.Model.Focus()
	case focusGender:
		if l.gender < 0 {
			l.gender = 0
		}
	}
}

// begin validates the form, starts a session, and pushes the exam screen.
func (l *LandingScreen) begin() (screen.Screen, tea.Cmd) {
	patient := l.patientInfo()

	session := exam.NewSession(l.classifier)
	if err := session.Start(patient); err != nil {
		l.errMsg = err.Error()
		return l, nil
	}
	l.errMsg = ""

	if l.eventRepo != nil {
		_ = l.eventRepo.AppendExamEvent(context.Background(), store.ExamEventData{
			ExamID:        session.ID(),
			Action:        "started",
			PatientName:   patient.Name,
			PatientAge:    patient.Age,
			PatientGender: patient.Gender,
			MaxScore:      catalog.MaxPossibleScore(),
		})
	}

	next := examscreen.New(session, l.eventRepo, l.narrativeSvc)
	return l, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (l *LandingScreen) patientInfo() exam.PatientInfo {
	info := exam.PatientInfo{
		Name: l.nameInput.Value(),
		Age:  l.ageInput.Value(),
	}
	if l.gender >= 0 && l.gender < len(genders) {
		info.Gender = genders[l.gender]
	}
	return info
}

// questionCount is used by the view to describe the examination.
func questionCount() int {
	return catalog.Len()
}

// estimatedMinutes is a rough duration hint shown on the form.
const estimatedMinutes = 10
