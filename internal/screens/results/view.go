package results

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/asmit/mentis/internal/analysis"
	"github.com/asmit/mentis/internal/catalog"
	"github.com/asmit/mentis/internal/ui/components"
	"github.com/asmit/mentis/internal/ui/theme"
)

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Examination Results — %s", r.patient.Name)))
	b.WriteString("\n\n")

	b.WriteString(r.renderScoreLine(width))
	b.WriteString("\n\n")

	b.WriteString(r.renderCategories(width))
	b.WriteString("\n")

	b.WriteString(r.renderInterpretation(width))
	b.WriteString("\n")

	if r.prediction != nil {
		b.WriteString(r.renderPrediction(width))
		b.WriteString("\n")
	}

	if line := r.renderTimes(width); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(r.renderNarrative(width))

	return b.String()
}

func (r *ResultsScreen) renderScoreLine(width int) string {
	sevColor := theme.SeverityColor(r.report.Color)
	if r.prediction != nil {
		sevColor = theme.SeverityColor(analysis.ColorFor(r.severity))
	}

	score := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d / %d points", r.report.TotalScore, r.report.MaxPossibleScore))

	pct := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("(%.1f%%)", r.report.Percentage))

	sev := lipgloss.NewStyle().
		Foreground(sevColor).
		Bold(true).
		Render(string(r.severity))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(score + "  " + pct + "   " + sev)
}

func (r *ResultsScreen) renderCategories(width int) string {
	// Catalog order first, then anything left over alphabetically.
	order := catalog.Categories()
	seen := make(map[string]bool, len(order))
	for _, c := range order {
		seen[c] = true
	}
	var extra []string
	for name := range r.report.Categories {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	barWidth := min(width-12, 60)
	var b strings.Builder
	for _, name := range order {
		cs, ok := r.report.Categories[name]
		if !ok {
			continue
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-22s %d/%d", name, cs.Score, cs.MaxScore),
			cs.Percentage/100,
			false,
			barWidth,
		)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (r *ResultsScreen) renderInterpretation(width int) string {
	text := r.report.Interpretation
	if r.prediction != nil {
		text = analysis.InterpretationFor(r.severity)
	}
	styled := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.SeverityColor(analysis.ColorFor(r.severity))).
		Align(lipgloss.Center).
		Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styled)
}

func (r *ResultsScreen) renderPrediction(width int) string {
	line := fmt.Sprintf("Classifier assessment: %s (%.0f%% confidence)",
		r.prediction.Severity, r.prediction.Confidence*100)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(line)
}

// renderTimes compresses the response-time listing into one line: the
// average and the slowest answer. The full per-question times live in the
// event log.
func (r *ResultsScreen) renderTimes(width int) string {
	if len(r.times) == 0 {
		return ""
	}

	var total time.Duration
	slowest := r.times[0]
	for _, qt := range r.times {
		total += qt.Elapsed
		if qt.Elapsed > slowest.Elapsed {
			slowest = qt
		}
	}
	avg := total / time.Duration(len(r.times))

	line := fmt.Sprintf("Response time: avg %.1fs, slowest %s (%.1fs)",
		avg.Seconds(), slowest.Question, slowest.Elapsed.Seconds())
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(line)
}

func (r *ResultsScreen) renderNarrative(width int) string {
	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Summary")

	var body string
	switch r.narrState {
	case narrativePending:
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Generating summary...")
	case narrativeFailed:
		body = lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(fmt.Sprintf("Summary failed: %s", r.narrErr)) +
			"\n" +
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("Press R to retry.")
	case narrativeReady:
		body = r.renderSummary(width)
	}

	card := theme.Card.
		Width(min(width-8, 76)).
		Render(header + "\n\n" + body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (r *ResultsScreen) renderSummary(width int) string {
	if r.summary == nil {
		return ""
	}

	wrap := lipgloss.NewStyle().
		Width(min(width-14, 70)).
		Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(wrap.Render(r.summary.Analysis))

	if len(r.summary.Recommendations) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Bold(true).
			Render("Recommendations"))
		b.WriteString("\n")
		for _, rec := range r.summary.Recommendations {
			b.WriteString(wrap.Render("  • " + rec))
			b.WriteString("\n")
		}
	}

	return b.String()
}
