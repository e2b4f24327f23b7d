package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/asmit/mentis/internal/ui/theme"
)

func TestNewProgressBarDefaultsFill(t *testing.T) {
	bar := NewProgressBar("Recall 2/3", 0.5, false, 40)
	if bar.FillColor != theme.Secondary {
		t.Errorf("expected default fill %v, got %v", theme.Secondary, bar.FillColor)
	}
}

func TestProgressBarZeroValueRenders(t *testing.T) {
	// A zero-value bar has no fill color set; View falls back to the theme.
	bar := ProgressBar{Percent: 0.5, Width: 20}
	out := bar.View()
	if out == "" {
		t.Fatal("expected rendered bar")
	}
	if w := lipgloss.Width(out); w != 20 {
		t.Errorf("expected width 20, got %d", w)
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	for _, pct := range []float64{-0.5, 1.5} {
		bar := NewProgressBar("", pct, false, 20)
		out := bar.View()
		if strings.Contains(out, "%!") {
			t.Errorf("bad render at percent %v: %q", pct, out)
		}
		if w := lipgloss.Width(out); w != 20 {
			t.Errorf("percent %v: expected width 20, got %d", pct, w)
		}
	}
}
