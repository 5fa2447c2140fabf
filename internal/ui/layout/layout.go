package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// Density tells a screen how much it can draw in the space it was given.
type Density int

const (
	DensityFull    Density = iota // mascot, big banner, keypad
	DensityCompact                // small banner, no mascot
	DensityTight                  // one line per menu item, no keypad
)

// DensityFor picks a density from the content area a screen receives.
func DensityFor(width, contentHeight int) Density {
	switch {
	case contentHeight < 30:
		return DensityTight
	case contentHeight < 40 || width < 100:
		return DensityCompact
	default:
		return DensityFull
	}
}

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to grow the window.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nThe rocket needs at least %d x %d\n\nNow: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// Header is the bar at the top of every screen.
type Header struct {
	Title string
	Score int
	Best  int
	// Live highlights the running score while a game is in progress.
	Live bool
}

// Render draws the header across width columns.
func (h Header) Render(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  NumberRush")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(h.Title)

	best := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("★ best %d", h.Best))
	right := best
	if h.Live {
		right = lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(fmt.Sprintf("◆ %d", h.Score)) + "   " + best
	}

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	sep := lipgloss.NewStyle().Foreground(theme.Border).Render("  ·  ")
	return bar("  "+strings.Join(parts, sep), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer to fill height rows.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
