package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

// ProgressBar is a horizontal fill gauge with an optional label on the
// left and percentage on the right.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// NewProgressBar creates a teal gauge.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        theme.Secondary,
	}
}

// NewTimerBar renders the countdown as a bar that turns red once the
// remaining time drops below lowFraction of the total.
func NewTimerBar(left, total int, lowFraction float64, width int) ProgressBar {
	pct := 0.0
	if total > 0 {
		pct = float64(left) / float64(total)
	}
	p := NewProgressBar(fmt.Sprintf("%2ds", left), pct, false, width)
	p.Fill = theme.ArcadeCyan
	if pct < lowFraction {
		p.Fill = theme.Error
	}
	return p
}

func (p ProgressBar) View() string {
	var label, pct string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		pct = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %3d%%", int(p.Percent*100)))
	}

	track := max(p.Width-lipgloss.Width(label)-lipgloss.Width(pct), 4)
	filled := min(max(int(float64(track)*p.Percent), 0), track)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	return label +
		lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", track-filled)) +
		pct
}
