package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, space-arcade themed
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Score yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Timer cyan
)

// Planet colors, one per difficulty level.
var (
	Moon  = lipgloss.Color("#CBD5E1")
	Mars  = lipgloss.Color("#EA580C")
	Space = lipgloss.Color("#A78BFA")
)

// PlanetColor returns the color for a difficulty level (1..3).
func PlanetColor(level int) color.Color {
	switch level {
	case 2:
		return Mars
	case 3:
		return Space
	default:
		return Moon
	}
}

// Answer feedback and empty states.
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Locked is drawn over badges not yet earned.
	Locked = lipgloss.NewStyle().
		Foreground(Border)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)
