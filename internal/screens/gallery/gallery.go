package gallery

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// GalleryScreen lists every badge with its lock state, filtered by rarity.
type GalleryScreen struct {
	manager      *game.Manager
	filter       int // 0 = all, otherwise index into Rarities + 1
	scrollOffset int
}

var _ screen.Screen = (*GalleryScreen)(nil)
var _ screen.KeyHintProvider = (*GalleryScreen)(nil)

// New creates a gallery reading unlock state from manager.
func New(manager *game.Manager) *GalleryScreen {
	return &GalleryScreen{manager: manager}
}

func (s *GalleryScreen) Init() tea.Cmd {
	return nil
}

func (s *GalleryScreen) Title() string {
	return "Badges"
}

func (s *GalleryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Rarity"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GalleryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	tabs := len(badges.Rarities()) + 1
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab":
		s.filter = (s.filter + 1) % tabs
		s.scrollOffset = 0
	case "shift+tab":
		s.filter = (s.filter - 1 + tabs) % tabs
		s.scrollOffset = 0
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		if s.scrollOffset < len(s.filtered())-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

// filtered returns the catalog entries matching the rarity filter.
func (s *GalleryScreen) filtered() []badges.Badge {
	if s.filter == 0 {
		return badges.Catalog()
	}
	want := badges.Rarities()[s.filter-1]
	var out []badges.Badge
	for _, b := range badges.Catalog() {
		if b.Rarity == want {
			out = append(out, b)
		}
	}
	return out
}

func (s *GalleryScreen) View(width, height int) string {
	snap := s.manager.Snapshot()
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nUnlocked: %d of %d\n",
			len(snap.Stats.UnlockedBadges), len(badges.Catalog()))))
	b.WriteString("\n")

	// Rarity tabs.
	labels := []string{"All"}
	for _, r := range badges.Rarities() {
		labels = append(labels, r.DisplayName())
	}
	var tabs []string
	for i, label := range labels {
		if i == s.filter {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	list := s.filtered()
	if len(list) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Inherit(theme.Hint).
			Render("No badges of this rarity"))
		return b.String()
	}

	maxVisible := max(height-10, 3)
	start := s.scrollOffset
	end := min(start+maxVisible, len(list))

	for _, badge := range list[start:end] {
		var line string
		var style lipgloss.Style
		if snap.IsUnlocked(badge.ID) {
			line = fmt.Sprintf("  %s  %-16s %-10s %s",
				badge.Icon, badge.Name, badge.Rarity.DisplayName(), badge.Description)
			style = lipgloss.NewStyle().Foreground(components.RarityColor(badge.Rarity))
		} else {
			line = fmt.Sprintf("  🔒  %-16s %-10s %s",
				badge.Name, badge.Rarity.DisplayName(), badge.Description)
			style = theme.Locked
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(list) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(list)-end)))
	}

	return b.String()
}
