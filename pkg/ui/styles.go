package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the terminal dashboard
var (
	// Brand colors
	Primary   = lipgloss.Color("#4D6BF4") // Deep blue
	Secondary = lipgloss.Color("#00D4AA") // Teal-green

	// Maturity colors
	Advanced     = lipgloss.Color("#00D26A") // Green
	Intermediate = lipgloss.Color("#4D96FF") // Blue
	Developing   = lipgloss.Color("#FFD93D") // Yellow
	EarlyStage   = lipgloss.Color("#FF6B6B") // Red/Orange

	// Risk tier colors
	Critical  = lipgloss.Color("#FF0000") // Bright red
	Important = lipgloss.Color("#FFB800") // Amber
	Minimal   = lipgloss.Color("#FFD93D") // Yellow

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280") // Gray
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	PillarLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Width(34)

	ScoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3B3B4F"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// LevelColor maps a readiness status label to its color.
func LevelColor(status string) lipgloss.Color {
	switch status {
	case "Advanced", "Compliant":
		return Advanced
	case "Intermediate", "Mostly Compliant":
		return Intermediate
	case "Developing", "Partial Compliance":
		return Developing
	default:
		return EarlyStage
	}
}
