package narrative

import (
	"strings"
	"testing"

	"github.com/asmit/mentis/internal/analysis"
)

func TestBuildSummaryUserMessage_CategoryOrder(t *testing.T) {
	input := testInput()
	input.Report.Categories["Zz Custom"] = analysis.CategoryScore{Score: 1, MaxScore: 2, Percentage: 50}

	msg := buildSummaryUserMessage(input)

	orientation := strings.Index(msg, "- Orientation to Time: 1/1")
	recall := strings.Index(msg, "- Recall: 2/3")
	custom := strings.Index(msg, "- Zz Custom: 1/2")
	if orientation < 0 || recall < 0 || custom < 0 {
		t.Fatalf("missing category lines in prompt:\n%s", msg)
	}
	if !(orientation < recall && recall < custom) {
		t.Errorf("categories out of order: orientation=%d recall=%d custom=%d",
			orientation, recall, custom)
	}
}

func TestBuildSummaryUserMessage_OmitsEmptyPatientFields(t *testing.T) {
	input := testInput()
	input.PatientAge = ""

	msg := buildSummaryUserMessage(input)

	if strings.Contains(msg, "- Age:") {
		t.Error("expected age line to be omitted")
	}
	if !strings.Contains(msg, "- Name: Ada") {
		t.Error("expected name line")
	}
}
