package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

func TestApplyPadKey(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		key  string
		want string
	}{
		{"digit", "1", "2", "12"},
		{"limit", "1234", "5", "1234"},
		{"clear", "123", PadClear, ""},
		{"minus on", "12", PadMinus, "-12"},
		{"minus off", "-12", PadMinus, "12"},
		{"minus at limit", "1234", PadMinus, "1234"},
		{"submit leaves buffer", "7", PadSubmit, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPadKey(tt.buf, tt.key, 4); got != tt.want {
				t.Errorf("ApplyPadKey(%q, %q) = %q, want %q", tt.buf, tt.key, got, tt.want)
			}
		})
	}
}

func TestNumpadNavigation(t *testing.T) {
	n := NewNumpad()
	if n.Selected() != "5" {
		t.Fatalf("start = %q, want 5", n.Selected())
	}

	for i := 0; i < 5; i++ {
		n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if n.Selected() != PadSubmit {
		t.Errorf("bottom row = %q, want %q", n.Selected(), PadSubmit)
	}

	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if n.Selected() != PadClear {
		t.Errorf("got %q, want %q", n.Selected(), PadClear)
	}

	_, cmd := n.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if cmd == nil {
		t.Fatal("space should press the key")
	}
	if msg, ok := cmd().(PadPressedMsg); !ok || msg.Key != PadClear {
		t.Errorf("got %#v", cmd())
	}
}

func TestNumpadDisabled(t *testing.T) {
	n := NewNumpad()
	n.Disabled = true
	n, cmd := n.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if cmd != nil || n.Selected() != "5" {
		t.Error("disabled numpad should ignore keys")
	}
}

func TestTimerBarColor(t *testing.T) {
	if bar := NewTimerBar(8, 10, 0.4, 30); bar.Fill != theme.ArcadeCyan {
		t.Error("plenty of time should be cyan")
	}
	if bar := NewTimerBar(3, 10, 0.4, 30); bar.Fill != theme.Error {
		t.Error("low time should be red")
	}
	if bar := NewTimerBar(0, 0, 0.4, 30); bar.Percent != 0 {
		t.Error("zero total should not divide by zero")
	}
}

func TestProgressBarClamps(t *testing.T) {
	p := NewProgressBar("", 1.5, true, 20)
	if p.View() == "" {
		t.Error("expected a rendered bar")
	}
}

func TestMenuWrapsAndSkipsDisabled(t *testing.T) {
	var picked string
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			picked = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "A", Action: pick("A")},
		{Label: "B", Disabled: true, Action: pick("B")},
		{Label: "C", Hotkey: "c", Action: pick("C")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("down should skip the disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("down from the last item should wrap, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("up from the first item should wrap, got %d", m.Selected)
	}

	m.Selected = 0
	m, _ = m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if picked != "C" || m.Selected != 2 {
		t.Errorf("hotkey picked %q at %d", picked, m.Selected)
	}
}

func TestMenuStartsOnFirstEnabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}, {Label: "B"}})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestTextInputCounter(t *testing.T) {
	in := NewTextInput("name", 5)
	in.SetValue("Ada")
	if in.Focused() {
		t.Error("new fields start unfocused")
	}
	if got := in.View(); !strings.Contains(got, "3/5") {
		t.Errorf("view should show the rune counter, got %q", got)
	}

	in, _ = in.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if in.Value() != "Ada" {
		t.Error("unfocused field should ignore keys")
	}
}
