package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/fx"
	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

const (
	confettiFrame     = 60 * time.Millisecond
	confettiParticles = 40
	confettiWidth     = 60
	confettiHeight    = 8
)

type confettiFrameMsg struct{}

// SummaryScreen shows the results of a finished game.
type SummaryScreen struct {
	snap      game.Snapshot
	flight    int64 // results-log sequence, 0 when not logged
	playAgain func() screen.Screen
	confetti  *fx.Confetti
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New captures the finished session from deps.Game. playAgain builds the
// screen that Enter replaces this one with.
func New(deps screen.Deps, playAgain func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		snap:      deps.Game.Snapshot(),
		playAgain: playAgain,
	}
	if r := deps.Game.LastResult(); r != nil {
		s.flight = r.Sequence
	}
	return s
}

// Celebrating reports whether the game earned a new high score or badge.
func (s *SummaryScreen) Celebrating() bool {
	return s.snap.NewHigh || len(s.snap.NewBadges) > 0
}

func (s *SummaryScreen) Init() tea.Cmd {
	if !s.Celebrating() {
		return nil
	}
	s.confetti = fx.NewConfetti(confettiWidth, confettiHeight, confettiParticles, nil)
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(confettiFrame, func(time.Time) tea.Msg { return confettiFrameMsg{} })
}

func (s *SummaryScreen) Title() string {
	return "Mission Report"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Launch pad"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case confettiFrameMsg:
		if s.confetti == nil || s.confetti.Done() {
			return s, nil
		}
		s.confetti.Step()
		return s, nextFrame()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "r":
			if s.playAgain == nil {
				return s, nil
			}
			next := s.playAgain()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "esc", "q":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	snap := s.snap
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.confetti != nil && !s.confetti.Done() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.confetti.View()))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	heading := "Mission complete!"
	if snap.NewHigh {
		heading = "NEW HIGH SCORE!"
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(heading))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("◆ %d", snap.Score)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("best %d", snap.Stats.HighScore)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d    Correct: %d    Accuracy: %.0f%%    Best streak: %d",
		snap.Answered(), snap.Correct(), snap.Accuracy()*100, snap.SessionBestStreak())
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n")

	reached := lipgloss.NewStyle().Foreground(theme.PlanetColor(int(snap.Level))).
		Render(fmt.Sprintf("%s %s", snap.Level.Icon(), snap.Level.Name()))
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · reached %s", snap.Mode.Label(), reached)))
	b.WriteString("\n")
	if s.flight > 0 {
		b.WriteString(center.Inherit(theme.Hint).Render(fmt.Sprintf("Logged as flight #%d", s.flight)))
		b.WriteString("\n")
	}

	if len(snap.NewBadges) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badges unlocked")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, id := range snap.NewBadges {
			badge, ok := badges.Lookup(id)
			if !ok {
				continue
			}
			line := fmt.Sprintf("%s %s · %s %s", badge.Icon, badge.Name, badge.Rarity.DisplayName(), badge.Rarity.Stars())
			b.WriteString(center.Foreground(components.RarityColor(badge.Rarity)).Bold(true).Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}
