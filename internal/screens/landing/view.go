package landing

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asmit/mentis/internal/ui/theme"
)

func (l *LandingScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Mini Mental State Examination"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions, about %d minutes. Results are a screening aid, not a diagnosis.",
			questionCount(), estimatedMinutes)))
	b.WriteString("\n\n")

	form := l.renderForm()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))
	b.WriteString("\n")

	if l.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(l.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (l *LandingScreen) renderForm() string {
	var b strings.Builder

	b.WriteString(l.renderField("Name  ", l.nameInput.View(), l.focus == focusName))
	b.WriteString("\n")
	b.WriteString(l.renderField("Age   ", l.ageInput.View(), l.focus == focusAge))
	b.WriteString("\n")
	b.WriteString(l.renderField("Gender", l.renderGender(), l.focus == focusGender))
	b.WriteString("\n\n")

	beginLabel := "  ▸ Begin Examination "
	if l.focus == focusBegin {
		b.WriteString(theme.ButtonActive.Render(beginLabel))
	} else {
		b.WriteString(theme.ButtonInactive.Render(beginLabel))
	}

	return theme.Card.Render(b.String())
}

func (l *LandingScreen) renderField(label, value string, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return labelStyle.Render(label) + "  " + value
}

func (l *LandingScreen) renderGender() string {
	parts := make([]string, 0, len(genders))
	for i, g := range genders {
		if i == l.gender {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("[ "+g+" ]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  "+g+"  "))
		}
	}
	return strings.Join(parts, " ")
}
