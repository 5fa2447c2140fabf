package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/screens/welcome"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

const arcadeTitleCompact = "N · U · M · B · E · R · R · U · S · H"

// renderTitle returns the block-letter banner or the compact fallback.
func renderTitle(cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(lipgloss.NewStyle().
				Foreground(theme.ArcadeYellow).
				Bold(true).
				Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(cw))
}

// renderStatsBar renders lifetime stats in a bordered box matching content width.
func renderStatsBar(high, bestStreak, unlocked, total, cw int, compact bool) string {
	highStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			highStyle.Render(fmt.Sprintf("★%d", high)),
			streakStyle.Render(fmt.Sprintf("⚡%d", bestStreak)),
			badgeStyle.Render(fmt.Sprintf("◆%d/%d", unlocked, total)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			highStyle.Render(fmt.Sprintf("★ HIGH %d", high)),
			streakStyle.Render(fmt.Sprintf("⚡ STREAK %d", bestStreak)),
			badgeStyle.Render(fmt.Sprintf("◆ BADGES %d/%d", unlocked, total)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderSetupCard shows the selected mode, planet and chaos switch.
func renderSetupCard(mode game.Mode, level problemgen.Level, chaos bool, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(8)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	key := lipgloss.NewStyle().Foreground(theme.TextDim)

	planet := lipgloss.NewStyle().Foreground(theme.PlanetColor(int(level))).Bold(true).
		Render(fmt.Sprintf("%s %s  1-%d", level.Icon(), level.Name(), level.MaxOperand()))

	chaosText := lipgloss.NewStyle().Foreground(theme.TextDim).Render("OFF")
	if chaos {
		chaosText = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("ON  a ± b ± c")
	}

	rows := []string{
		label.Render("MODE") + value.Render(mode.Label()) + "  " + key.Render("[m]"),
		label.Render("PLANET") + "◂ " + planet + " ▸",
		label.Render("CHAOS") + chaosText + "  " + key.Render("[c]"),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(strings.Join(rows, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
