// Package app wires the screen stack into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asmit/mentis/internal/exam"
	"github.com/asmit/mentis/internal/narrative"
	"github.com/asmit/mentis/internal/router"
	"github.com/asmit/mentis/internal/screen"
	"github.com/asmit/mentis/internal/screens/landing"
	"github.com/asmit/mentis/internal/store"
	"github.com/asmit/mentis/internal/ui/layout"
)

// Options carries the dependencies the UI needs. Classifier and Narrative
// may be nil when no LLM provider is configured; the UI degrades to
// heuristic scoring and a placeholder summary.
type Options struct {
	EventRepo  store.EventRepo
	Classifier exam.Classifier
	Narrative  *narrative.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the intake screen.
func newAppModel(opts Options) AppModel {
	intake := landing.New(opts.EventRepo, opts.Classifier, opts.Narrative)
	return AppModel{
		router: router.New(intake),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is owned by the screens: the exam screen turns it into a
		// confirmation, others into navigation.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	headerContext := ""
	if active != nil {
		title = active.Title()
		if cp, ok := active.(screen.ContextProvider); ok {
			headerContext = cp.HeaderContext()
		}
	}

	header := layout.RenderHeader(title, headerContext, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
