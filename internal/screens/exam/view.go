package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asmit/mentis/internal/catalog"
	"github.com/asmit/mentis/internal/ui/components"
	"github.com/asmit/mentis/internal/ui/theme"
)

func (e *ExamScreen) View(width, height int) string {
	if e.confirmQuit {
		return renderQuitConfirm(width)
	}
	if e.completing {
		return renderAnalyzing(width)
	}
	return e.renderQuestionView(width)
}

func (e *ExamScreen) renderQuestionView(width int) string {
	q, ok := e.session.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	// Progress line: answered count over the whole catalog.
	progress := components.NewProgressBar(
		fmt.Sprintf("  Question %d of %d", e.session.CurrentIndex()+1, catalog.Len()),
		float64(e.session.AnswerCount())/float64(catalog.Len()),
		false,
		width-8,
	)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.Category))
	b.WriteString("\n\n")

	if e.choiceMode {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, e.choice.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Text))
		b.WriteString("\n")
		if q.Instructions != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Italic(true).
				Render(q.Instructions))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + e.input.View())
		b.WriteString(answerLine)
	}

	if e.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(e.errMsg))
	}

	return b.String()
}

// renderAnalyzing covers the gap while the classifier runs at completion.
func renderAnalyzing(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Analyzing responses...")
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this examination?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Recorded answers will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
