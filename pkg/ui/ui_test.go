package ui

import (
	"strings"
	"testing"

	"github.com/readykit/readykit/pkg/risk"
	"github.com/readykit/readykit/pkg/scoring"
)

func testResult() *scoring.Result {
	return &scoring.Result{
		PillarScores: []scoring.PillarScore{
			{Pillar: "Strategy & Vision", Earned: 8, Max: 10, Percentage: 80, QuestionCount: 2},
			{Pillar: "Data Infrastructure", Earned: 2, Max: 10, Percentage: 20, QuestionCount: 2},
			{Pillar: "EU AI Act Compliance", Earned: 1, Max: 2, Percentage: 50, QuestionCount: 2},
		},
		OverallScore:      10,
		OverallPercentage: 50,
	}
}

func TestRenderDashboard_ContainsPillars(t *testing.T) {
	out := RenderDashboard(testResult(), risk.Profile{Highest: risk.TierNone})

	for _, want := range []string{"Strategy & Vision", "Data Infrastructure", "EU AI Act Compliance"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing pillar %q", want)
		}
	}
	if !strings.Contains(out, "50.0%") {
		t.Error("dashboard missing overall percentage")
	}
}

func TestRenderDashboard_RiskBuckets(t *testing.T) {
	profile := risk.Profile{
		Critical: []risk.Factor{{Indicator: "x", Question: "Realtime biometric identification"}},
		Highest:  risk.TierCritical,
	}

	out := RenderDashboard(testResult(), profile)

	if !strings.Contains(out, "Realtime biometric identification") {
		t.Error("dashboard missing flagged risk question")
	}
	if !strings.Contains(out, string(risk.TierCritical)) {
		t.Error("dashboard missing highest tier label")
	}
}

func TestRenderDashboard_NextStepsListWeakPillars(t *testing.T) {
	out := RenderDashboard(testResult(), risk.Profile{Highest: risk.TierNone})

	if !strings.Contains(out, "Next Steps") {
		t.Fatal("dashboard missing next steps section")
	}
	// Data Infrastructure at 20% is the weakest pillar.
	if !strings.Contains(out, "1. Data Infrastructure") {
		t.Error("weakest pillar not listed first")
	}
}

func TestBar_Widths(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		wantFilled int
	}{
		{"empty", 0, 0},
		{"half", 50, 15},
		{"full", 100, 30},
		{"clamped high", 150, 30},
		{"clamped low", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := Bar(tt.percentage, 30)
			if got := strings.Count(bar, "█"); got != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d", got, tt.wantFilled)
			}
			if got := strings.Count(bar, "░"); got != 30-tt.wantFilled {
				t.Errorf("empty cells = %d, want %d", got, 30-tt.wantFilled)
			}
		})
	}
}
