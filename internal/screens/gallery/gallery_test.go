package gallery

import (
	"io"
	"log"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/store"
)

func testManager() *game.Manager {
	return game.NewManager(game.Options{
		KV:     store.NewMemoryKV(),
		Clock:  game.NewFakeClock(),
		Logger: log.New(io.Discard, "", 0),
	})
}

func TestFilterCyclesRarities(t *testing.T) {
	s := New(testManager())
	if got := len(s.filtered()); got != len(badges.Catalog()) {
		t.Fatalf("all filter = %d badges, want %d", got, len(badges.Catalog()))
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, b := range s.filtered() {
		if b.Rarity != badges.RarityCommon {
			t.Errorf("common filter returned %s (%s)", b.ID, b.Rarity)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.filter != 0 {
		t.Errorf("shift+tab should go back to all, filter = %d", s.filter)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.filter != len(badges.Rarities()) {
		t.Errorf("shift+tab should wrap to the last rarity, filter = %d", s.filter)
	}
}

func TestViewShowsLockState(t *testing.T) {
	m := testManager()
	s := New(m)

	view := s.View(120, 40)
	if !contains(view, "Unlocked: 0 of 11") {
		t.Errorf("expected zero unlocked:\n%s", view)
	}
	if !contains(view, "🔒") {
		t.Error("locked badges should show a lock")
	}

	m.StartGame(problemgen.LevelMoon, game.ModeBlitz, false)
	m.SubmitAnswer(m.Snapshot().Question.Answer)
	if !contains(s.View(120, 40), "Unlocked: 1 of 11") {
		t.Error("gallery should read live unlock state")
	}
}

func TestScrollBounds(t *testing.T) {
	s := New(testManager())
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.scrollOffset != 0 {
		t.Error("scroll should not go negative")
	}
	for i := 0; i < 50; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.scrollOffset != len(badges.Catalog())-1 {
		t.Errorf("scroll = %d, want %d", s.scrollOffset, len(badges.Catalog())-1)
	}
}

func TestEscPops(t *testing.T) {
	s := New(testManager())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("Esc should pop")
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
