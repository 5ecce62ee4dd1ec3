package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
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

// Answer feedback
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Phase map cells, one per display state.
var (
	PhaseLocked = lipgloss.NewStyle().
			Foreground(Border)

	PhaseNotStarted = lipgloss.NewStyle().
			Foreground(TextDim)

	PhaseStarted = lipgloss.NewStyle().
			Foreground(ArcadeCyan).
			Bold(true)

	PhaseHalf = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)

	PhaseComplete = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

// Lives
var (
	HeartFull = lipgloss.NewStyle().
			Foreground(Error)

	HeartEmpty = lipgloss.NewStyle().
			Foreground(Border)
)
