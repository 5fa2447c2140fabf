package home

import (
	"io"
	"log"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/screens/gallery"
	"github.com/abhisek/numberrush/internal/screens/history"
	sessionscreen "github.com/abhisek/numberrush/internal/screens/session"
	settingsscreen "github.com/abhisek/numberrush/internal/screens/settings"
	"github.com/abhisek/numberrush/internal/settings"
	"github.com/abhisek/numberrush/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHome() *HomeScreen {
	kv := store.NewMemoryKV()
	m := game.NewManager(game.Options{
		KV:     kv,
		Clock:  game.NewFakeClock(),
		Logger: log.New(io.Discard, "", 0),
	})
	return New(screen.Deps{Game: m, Settings: settings.New(kv), Results: store.NewMemoryResults()})
}

func TestDefaultSetup(t *testing.T) {
	h := testHome()
	want := sessionscreen.Setup{Mode: game.ModeBlitz, Level: problemgen.LevelMoon}
	if got := h.Setup(); got != want {
		t.Errorf("Setup = %+v, want %+v", got, want)
	}
}

func TestSetupKeys(t *testing.T) {
	h := testHome()

	h.Update(keyPress('m'))
	h.Update(keyPress('c'))
	h.Update(keyPress('3'))
	got := h.Setup()
	if got.Mode != game.ModePractice || !got.Advanced || got.Level != problemgen.LevelSpace {
		t.Errorf("Setup = %+v", got)
	}

	h.Update(specialKey(tea.KeyRight))
	if h.level != problemgen.LevelSpace {
		t.Errorf("right past the last planet should stay, got %d", h.level)
	}
	h.Update(specialKey(tea.KeyLeft))
	h.Update(specialKey(tea.KeyLeft))
	h.Update(specialKey(tea.KeyLeft))
	if h.level != problemgen.LevelMoon {
		t.Errorf("left past the first planet should stay, got %d", h.level)
	}

	h.Update(keyPress('m'))
	if h.mode != game.ModeBlitz {
		t.Error("m should toggle back to blitz")
	}
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	return msg.Screen
}

func TestMenuNavigation(t *testing.T) {
	h := testHome()

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*sessionscreen.SessionScreen); !ok {
		t.Error("START GAME should push the game screen")
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd = h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*gallery.GalleryScreen); !ok {
		t.Error("BADGES should push the gallery")
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd = h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*history.HistoryScreen); !ok {
		t.Error("HISTORY should push the flight log")
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd = h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*settingsscreen.SettingsScreen); !ok {
		t.Error("SETTINGS should push the settings screen")
	}
}

func TestStartUsesCurrentSetup(t *testing.T) {
	h := testHome()
	h.Update(keyPress('2'))

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	s := pushed(t, cmd)
	s.Init()
	if lvl := h.deps.Game.Snapshot().Level; lvl != problemgen.LevelMars {
		t.Errorf("game started on level %d, want Mars", lvl)
	}
}

func TestMascotMood(t *testing.T) {
	h := testHome()
	if got := mascotFor(h.deps.Game.Snapshot()); got != MascotRookie {
		t.Errorf("fresh player mascot = %v, want rookie", got)
	}

	m := h.deps.Game
	m.StartGame(problemgen.LevelMoon, game.ModeBlitz, false)
	m.SubmitAnswer(m.Snapshot().Question.Answer)
	m.EndGame()
	if got := mascotFor(m.Snapshot()); got != MascotCelebrating {
		t.Errorf("after a new high mascot = %v, want celebrating", got)
	}

	m.ResetGame()
	if got := mascotFor(m.Snapshot()); got != MascotIdle {
		t.Errorf("idle mascot = %v, want idle", got)
	}
}

func TestViewRenders(t *testing.T) {
	h := testHome()
	for _, size := range [][2]int{{80, 18}, {120, 50}} {
		view := h.View(size[0], size[1])
		if !contains(view, "START GAME") {
			t.Errorf("%dx%d view missing menu", size[0], size[1])
		}
		if !contains(view, "Moon") {
			t.Errorf("%dx%d view missing planet", size[0], size[1])
		}
	}
}

func TestTitleAndHints(t *testing.T) {
	h := testHome()
	if h.Title() != "Launch Pad" {
		t.Errorf("Title = %q", h.Title())
	}
	if len(h.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && searchString(s, substr)
}

func searchString(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func TestMenuHotkeys(t *testing.T) {
	h := testHome()
	_, cmd := h.Update(keyPress('b'))
	if _, ok := pushed(t, cmd).(*gallery.GalleryScreen); !ok {
		t.Error("b should open the badges gallery")
	}
}

func TestHistoryDisabledWithoutResults(t *testing.T) {
	h := testHome()
	h = New(screen.Deps{Game: h.deps.Game, Settings: h.deps.Settings})

	if _, cmd := h.Update(keyPress('h')); cmd != nil {
		t.Error("history hotkey should do nothing without a results log")
	}

	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*settingsscreen.SettingsScreen); !ok {
		t.Error("cursor should skip the disabled HISTORY item")
	}
}
