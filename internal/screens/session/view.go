package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// lowTimeFraction matches the share of the countdown the manager calls low.
const lowTimeFraction = 0.4

// renderQuestionView renders the active question, countdown and keypad.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	snap := s.deps.Game.Snapshot()
	if snap.Question == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing launch...")
	}

	var b strings.Builder
	inner := max(width-4, 10)

	// Info line: planet and mode on the left, score and streak on the right.
	planet := lipgloss.NewStyle().
		Foreground(theme.PlanetColor(int(snap.Level))).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", snap.Level.Icon(), snap.Level.Name()))
	if snap.Advanced {
		planet += lipgloss.NewStyle().Foreground(theme.Accent).Render("  CHAOS")
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d",
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("SCORE"),
			snap.Score,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("STREAK"),
			snap.Streak,
		))

	infoLine := planet
	if pad := inner - lipgloss.Width(planet) - lipgloss.Width(infoRight); pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	// Countdown.
	if snap.Mode == game.ModeBlitz {
		bar := components.NewTimerBar(snap.TimeLeft, snap.Duration, lowTimeFraction, min(inner, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("∞ practice, no clock"))
	}
	b.WriteString("\n\n")

	// Question.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(snap.Question.Text() + " = ?"))
	b.WriteString("\n\n")

	// Answer buffer.
	answer := s.input
	if answer == "" {
		answer = " "
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Width(10).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ArcadeYellow).
			Render(answer)))
	b.WriteString("\n")

	b.WriteString(s.renderFeedback(width))
	b.WriteString("\n")

	if layout.DensityFor(width, height) != layout.DensityTight {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.pad.View()))
	}

	return b.String()
}

// renderFeedback renders the one-line result of the last answer.
func (s *SessionScreen) renderFeedback(width int) string {
	line := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.feedback == nil {
		return line.Render(" ")
	}

	if s.feedback.correct {
		return line.Inherit(theme.Correct).
			Render(fmt.Sprintf("Correct! +%d", s.feedback.points))
	}
	q := s.feedback.question
	return line.Inherit(theme.Incorrect).
		Render(fmt.Sprintf("Oops! %s = %d", q.Text(), q.Answer))
}

// renderQuitConfirm renders the end-game confirmation dialog.
func renderQuitConfirm(width int, mode game.Mode) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	title := "Abort the mission?"
	if mode == game.ModePractice {
		title = "Finish practice?"
	}
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Your score so far will be saved."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, end game"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Error).Render("[D] Leave without saving"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))

	return b.String()
}
