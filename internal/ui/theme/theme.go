package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, notebook-ish
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Text      = lipgloss.Color("#F1F5F9") // Off-white
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	ErrorBlock = lipgloss.NewStyle().
			Foreground(Error)

	Loading = lipgloss.NewStyle().
			Foreground(TextDim)

	Empty = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Badges
var (
	BadgeCorrect = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	BadgeIncorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	BadgeWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)
)
