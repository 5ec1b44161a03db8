// Package ui renders the assessment results as a styled terminal
// dashboard.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/readykit/readykit/pkg/catalog"
	"github.com/readykit/readykit/pkg/classify"
	"github.com/readykit/readykit/pkg/report"
	"github.com/readykit/readykit/pkg/risk"
	"github.com/readykit/readykit/pkg/scoring"
)

const barWidth = 30

// RenderDashboard builds the full terminal view of a scored assessment.
func RenderDashboard(result *scoring.Result, profile risk.Profile) string {
	var b strings.Builder

	readiness := classify.ReadinessLevel(result.OverallPercentage)

	b.WriteString(TitleStyle.Render("AI Readiness Assessment"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		ScoreStyle.Render(fmt.Sprintf("%.1f%%", result.OverallPercentage)),
		badge(readiness.Status)))
	b.WriteString(SubtitleStyle.Render(readiness.Description))
	b.WriteString("\n")

	b.WriteString(SectionStyle.Render("Pillars"))
	b.WriteString("\n")
	for _, ps := range result.PillarScores {
		status := classify.ReadinessLevel(ps.Percentage).Status
		if ps.Pillar == catalog.CompliancePillar {
			status = classify.ComplianceStatus(ps.Percentage).Status
		}
		b.WriteString(fmt.Sprintf("%s %s %5.1f%%  %s\n",
			PillarLabelStyle.Render(ps.Pillar),
			Bar(ps.Percentage, barWidth),
			ps.Percentage,
			badge(status)))
	}

	b.WriteString(renderRisks(profile))
	b.WriteString(renderNextSteps(result))

	return b.String()
}

// Bar renders a fixed-width progress bar for a 0-100 percentage.
func Bar(percentage float64, width int) string {
	if width <= 0 {
		width = barWidth
	}
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := int(percentage / 100 * float64(width))
	return ProgressFullStyle.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func badge(status string) string {
	return BadgeStyle.Foreground(lipgloss.Color("#1A1A2E")).
		Background(LevelColor(status)).
		Render(status)
}

func renderRisks(profile risk.Profile) string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("Risk Disclosure"))
	b.WriteString("\n")

	if profile.Empty() {
		b.WriteString(MutedStyle.Render("No risk practices flagged."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Highest severity: %s\n",
		BadgeStyle.Foreground(lipgloss.Color("#FAFAFA")).
			Background(tierColor(profile.Highest)).
			Render(string(profile.Highest))))

	writeBucket(&b, "Critical", Critical, profile.Critical)
	writeBucket(&b, "Important", Important, profile.Important)
	writeBucket(&b, "Minimal", Minimal, profile.Minimal)
	return b.String()
}

func writeBucket(b *strings.Builder, label string, color lipgloss.Color, factors []risk.Factor) {
	if len(factors) == 0 {
		return
	}
	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	b.WriteString(style.Render(fmt.Sprintf("%s (%d)", label, len(factors))))
	b.WriteString("\n")
	for _, f := range factors {
		b.WriteString(fmt.Sprintf("  • %s\n", f.Question))
	}
}

func tierColor(tier risk.Tier) lipgloss.Color {
	switch tier {
	case risk.TierCritical:
		return Critical
	case risk.TierImportant:
		return Important
	case risk.TierMinimal:
		return Minimal
	default:
		return Success
	}
}

func renderNextSteps(result *scoring.Result) string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("Next Steps"))
	b.WriteString("\n")

	recs := report.NextSteps(result)
	if len(recs) == 0 {
		b.WriteString(MutedStyle.Render("All pillars show good maturity."))
		b.WriteString("\n")
		return b.String()
	}
	for i, rec := range recs {
		b.WriteString(fmt.Sprintf("%d. %s (%.1f%%)\n", i+1, rec.Pillar, rec.Percentage))
	}
	return b.String()
}
