package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/screens/gallery"
	"github.com/abhisek/numberrush/internal/screens/history"
	sessionscreen "github.com/abhisek/numberrush/internal/screens/session"
	settingsscreen "github.com/abhisek/numberrush/internal/screens/settings"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// HomeScreen is the launch pad: pick a mode, a planet and chaos, then go.
type HomeScreen struct {
	deps screen.Deps
	menu components.Menu

	mode  game.Mode
	level problemgen.Level
	chaos bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen with blitz on the Moon selected.
func New(deps screen.Deps) *HomeScreen {
	h := &HomeScreen{
		deps:  deps,
		mode:  game.ModeBlitz,
		level: problemgen.LevelMoon,
	}

	items := []components.MenuItem{
		{Label: "START GAME", Hotkey: "s", Action: func() tea.Cmd {
			setup := h.Setup()
			return push(sessionscreen.New(deps, setup))
		}},
		{Label: "BADGES", Hotkey: "b", Action: func() tea.Cmd {
			return push(gallery.New(deps.Game))
		}},
		{Label: "HISTORY", Hotkey: "h", Disabled: deps.Results == nil, Action: func() tea.Cmd {
			return push(history.New(deps.Results))
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return push(settingsscreen.New(deps))
		}},
		{Label: "EXIT GAME", Hotkey: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// Setup returns the game options currently selected.
func (h *HomeScreen) Setup() sessionscreen.Setup {
	return sessionscreen.Setup{Mode: h.mode, Level: h.level, Advanced: h.chaos}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "m":
			if h.mode == game.ModeBlitz {
				h.mode = game.ModePractice
			} else {
				h.mode = game.ModeBlitz
			}
			return h, nil
		case "c":
			h.chaos = !h.chaos
			return h, nil
		case "1", "2", "3":
			h.level = problemgen.Level(kmsg.String()[0] - '0')
			return h, nil
		case "left":
			if h.level > problemgen.MinLevel {
				h.level--
			}
			return h, nil
		case "right":
			if h.level < problemgen.MaxLevel {
				h.level++
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	density := layout.DensityFor(width, height)
	compact := density != layout.DensityFull

	cw := components.ContentWidth(width)
	snap := h.deps.Game.Snapshot()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(snap), cw))
	}

	sections = append(sections, renderStatsBar(
		snap.Stats.HighScore, snap.Stats.BestStreak,
		len(snap.Stats.UnlockedBadges), len(badges.Catalog()), cw, compact))

	sections = append(sections, renderSetupCard(h.mode, h.level, h.chaos, cw))

	sections = append(sections, h.menu.View(cw, density == layout.DensityTight))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height, theme.PlanetColor(int(h.level)))
}

func (h *HomeScreen) Title() string {
	return "Launch Pad"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Menu"},
		{Key: "m", Description: "Mode"},
		{Key: "←→", Description: "Planet"},
		{Key: "c", Description: "Chaos"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Exit"},
	}
}

// mascotFor picks the mascot mood from the last game and lifetime stats.
func mascotFor(snap game.Snapshot) MascotVariant {
	switch {
	case snap.Status == game.StatusFinished && snap.NewHigh:
		return MascotCelebrating
	case snap.Stats.HighScore == 0:
		return MascotRookie
	default:
		return MascotIdle
	}
}
