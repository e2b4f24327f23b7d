package analysis

import (
	"math"
	"testing"

	"github.com/asmit/mentis/internal/catalog"
)

func TestInterpretBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want Severity
	}{
		{0, SeveritySevere},
		{44.9, SeveritySevere},
		{45, SeverityModerate},
		{74.9, SeverityModerate},
		{75, SeverityNormal},
		{100, SeverityNormal},
	}

	for _, tt := range tests {
		if got := Interpret(tt.pct); got != tt.want {
			t.Errorf("Interpret(%.1f) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestInterpretationLookups(t *testing.T) {
	for _, s := range []Severity{SeverityNormal, SeverityMild, SeverityModerate, SeveritySevere} {
		if InterpretationFor(s) == "" {
			t.Errorf("missing interpretation for %q", s)
		}
		if ColorFor(s) == "" {
			t.Errorf("missing color for %q", s)
		}
	}
}

func TestAnalyzePartialAnswers(t *testing.T) {
	// One registration option worth 2 and the calculation point, against a
	// reduced maximum of 4: 3/4 = 75% lands exactly on the Normal boundary.
	answers := map[int]int{3: 2, 4: 1}
	report := Analyze(answers, 4)

	if report.TotalScore != 3 {
		t.Errorf("TotalScore = %d, want 3", report.TotalScore)
	}
	if report.Percentage != 75 {
		t.Errorf("Percentage = %.1f, want 75", report.Percentage)
	}
	if report.Severity != SeverityNormal {
		t.Errorf("Severity = %q, want Normal", report.Severity)
	}
	if got := report.Categories["Registration"]; got.Score != 2 || got.MaxScore != 3 {
		t.Errorf("Registration = %+v, want score 2 of 3", got)
	}
	if got := report.Categories["Calculation"]; got.Percentage != 100 {
		t.Errorf("Calculation percentage = %.1f, want 100", got.Percentage)
	}
}

func TestAnalyzeEmptyCatalogDenominator(t *testing.T) {
	report := Analyze(nil, 0)
	if report.Percentage != 0 {
		t.Errorf("Percentage = %.1f, want 0 for zero max score", report.Percentage)
	}
	if math.IsNaN(report.Percentage) || math.IsInf(report.Percentage, 0) {
		t.Errorf("Percentage is not a finite number: %v", report.Percentage)
	}
	if report.Severity != SeveritySevere {
		t.Errorf("Severity = %q, want Severe at 0%%", report.Severity)
	}
}

func TestAnalyzePercentageInRange(t *testing.T) {
	max := catalog.MaxPossibleScore()
	for total := 0; total <= max; total++ {
		// Spread the total over the calculation question alone; the overall
		// percentage only depends on the sum.
		report := Analyze(map[int]int{4: total}, max)
		if report.Percentage < 0 || report.Percentage > 100 {
			t.Errorf("total %d: Percentage %.2f outside [0,100]", total, report.Percentage)
		}
	}
}

func TestAnalyzeCategoryMaxSum(t *testing.T) {
	report := Analyze(map[int]int{1: 1}, catalog.MaxPossibleScore())
	sum := 0
	for _, cs := range report.Categories {
		sum += cs.MaxScore
	}
	if sum != catalog.MaxPossibleScore() {
		t.Errorf("category max sum = %d, want %d", sum, catalog.MaxPossibleScore())
	}
}
