package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

// ContentWidth is the inner width shared by every card on a screen, so
// stacked boxes line up. It leaves room for the cabinet border and padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame draws the double-bordered arcade cabinet around a screen and
// centers content inside it. A nil accent uses the primary color.
func CabinetFrame(content string, width, height int, accent color.Color) string {
	if accent == nil {
		accent = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card cw columns wide.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ButtonState is how an arcade button is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// ArcadeButton renders a bordered button. Selected buttons light up yellow
// and get a cursor; disabled ones are dimmed.
func ArcadeButton(label string, state ButtonState, width int) string {
	st := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return st.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return st.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(label)
	default:
		return st.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
}

// ArcadeLine is the single-row form of ArcadeButton for tight screens.
func ArcadeLine(label string, state ButtonState) string {
	switch state {
	case ButtonSelected:
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Bold(true).
			Render(" ▸ " + label + " ")
	case ButtonDisabled:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
	}
}
