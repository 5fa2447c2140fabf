package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/store"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// recentLimit is how many games the screen loads.
const recentLimit = 50

type historyLoadedMsg struct {
	Results []store.GameResult
	Err     error
}

// HistoryScreen lists recently finished games, newest first.
type HistoryScreen struct {
	results  store.ResultRepo
	games    []store.GameResult
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. A nil repo shows an empty log.
func New(results store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		results:  results,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.results
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		games, err := repo.Recent(context.Background(), recentLimit)
		return historyLoadedMsg{Results: games, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Flight Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.games = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.games)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading flight log...")
	}
	if len(s.games) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Inherit(theme.Hint).
			Render("\n\n  No games yet. Time for liftoff!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.games {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-10s  %4d pts  %3.0f%% accuracy",
			prefix, g.PlayedAt.Format("Jan 02 15:04"), g.Mode, g.Score, g.Accuracy()*100)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(details(g))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// details renders the expanded line for one game.
func details(g store.GameResult) string {
	level := problemgen.Level(g.Level)
	parts := []string{
		fmt.Sprintf("%s %s", level.Icon(), level.Name()),
		fmt.Sprintf("%d/%d correct", g.Correct, g.Answered),
		fmt.Sprintf("best streak %d", g.BestStreak),
	}
	if g.Advanced {
		parts = append(parts, "chaos")
	}
	if g.PlayerName != "" {
		parts = append(parts, g.PlayerName)
	}
	return "    " + strings.Join(parts, " · ")
}
