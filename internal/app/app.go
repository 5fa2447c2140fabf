package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/fx"
	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/screens/home"
	sessionscreen "github.com/abhisek/numberrush/internal/screens/session"
	"github.com/abhisek/numberrush/internal/screens/welcome"
	"github.com/abhisek/numberrush/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps   screen.Deps
	Player fx.Player

	// LogPath receives the debug log. Empty discards it.
	LogPath string

	// Start, when set, skips the splash and launches straight into a game.
	Start *sessionscreen.Setup
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   screen.Deps
	player fx.Player
	start  *sessionscreen.Setup
	width  int
	height int
}

// newAppModel creates an AppModel with the splash (or a game) on top of home.
func newAppModel(opts Options) AppModel {
	player := opts.Player
	if player == nil {
		player = fx.Silent{}
	}
	deps := opts.Deps

	var root screen.Screen
	if opts.Start != nil {
		root = home.New(deps)
	} else {
		root = welcome.New(func() screen.Screen { return home.New(deps) })
	}

	return AppModel{
		router: router.New(root),
		deps:   deps,
		player: player,
		start:  opts.Start,
	}
}

// mutablePlayer is a Player that can be silenced at runtime.
type mutablePlayer interface {
	SetMuted(bool)
	Muted() bool
}

// waitForEvent blocks on the manager's event channel. Update re-arms it
// after each event, so exactly one listener exists.
func waitForEvent(events <-chan game.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return e
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEvent(m.deps.Game.Events())}
	if active := m.router.Active(); active != nil {
		cmds = append(cmds, active.Init())
	}
	if m.start != nil {
		first := sessionscreen.New(m.deps, *m.start)
		cmds = append(cmds, func() tea.Msg { return router.PushScreenMsg{Screen: first} })
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case game.Event:
		if cue, ok := fx.CueFor(msg); ok {
			m.player.Play(cue)
		}
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, waitForEvent(m.deps.Game.Events()))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.deps.Game.Close()
			return m, tea.Quit
		case "ctrl+s":
			if mp, ok := m.player.(mutablePlayer); ok {
				mp.SetMuted(!mp.Muted())
			}
			return m, nil
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptsBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	snap := m.deps.Game.Snapshot()
	header := layout.Header{
		Title: title,
		Score: snap.Score,
		Best:  snap.Stats.HighScore,
		Live:  snap.Status != game.StatusIdle,
	}.Render(m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+S", Description: "Sound"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.LogPath != "" {
		f, err := tea.LogToFile(opts.LogPath, "numberrush")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	defer opts.Deps.Game.Close()

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
