package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	prefs "github.com/abhisek/numberrush/internal/settings"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

const (
	fieldName = iota
	fieldTimer
	fieldReset
	fieldCount
)

type settingsLoadedMsg struct {
	Settings prefs.Settings
	Err      error
}

// SettingsScreen edits the player name and countdown, and resets progress.
type SettingsScreen struct {
	deps     screen.Deps
	name     components.TextInput
	timer    int
	focus    int
	confirm  bool
	status   string
	errMsg   string
	loaded   bool
	savedFor string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.BackInterceptor = (*SettingsScreen)(nil)

// New creates a SettingsScreen. Values load in Init.
func New(deps screen.Deps) *SettingsScreen {
	s := &SettingsScreen{
		deps:  deps,
		name:  components.NewTextInput("Space Cadet", prefs.MaxNameLen),
		timer: prefs.DefaultTimer,
	}
	s.name.Focus()
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	repo := s.deps.Settings
	fallback := s.deps.Game.Snapshot().Duration
	return func() tea.Msg {
		st, err := repo.Load(context.Background(), fallback)
		return settingsLoadedMsg{Settings: st, Err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// InterceptsBack lets Esc cancel the reset dialog before leaving.
func (s *SettingsScreen) InterceptsBack() bool {
	return true
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Erase progress"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Timer"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.name.SetValue(msg.Settings.Name)
		s.savedFor = msg.Settings.Name
		s.timer = msg.Settings.Timer
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SettingsScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.confirm {
		switch msg.String() {
		case "y", "Y":
			s.deps.Game.ResetStats()
			s.confirm = false
			s.status = "Progress erased. Fresh start!"
		case "n", "N", "esc":
			s.confirm = false
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.saveName()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "shift+tab":
		return s, s.moveFocus(-1)
	case "down", "tab":
		return s, s.moveFocus(1)
	}

	switch s.focus {
	case fieldName:
		if msg.String() == "enter" {
			s.saveName()
			return s, nil
		}
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd

	case fieldTimer:
		switch msg.String() {
		case "left", "h":
			s.setTimer(prefs.PrevTimer(s.timer))
		case "right", "l", "enter", "space":
			s.setTimer(prefs.NextTimer(s.timer))
		}

	case fieldReset:
		if msg.String() == "enter" {
			s.confirm = true
			s.status = ""
		}
	}
	return s, nil
}

func (s *SettingsScreen) moveFocus(delta int) tea.Cmd {
	if s.focus == fieldName {
		s.saveName()
	}
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	if s.focus == fieldName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

// saveName persists the name if it changed.
func (s *SettingsScreen) saveName() {
	raw := s.name.Value()
	if raw == s.savedFor {
		return
	}
	name, err := s.deps.Settings.SetName(context.Background(), raw)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.name.SetValue(name)
	s.savedFor = name
	s.deps.Game.SetPlayerName(name)
	s.status = "Name saved."
}

func (s *SettingsScreen) setTimer(seconds int) {
	if err := s.deps.Settings.SetTimer(context.Background(), seconds); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.timer = seconds
	s.deps.Game.SetDuration(seconds)
	s.status = fmt.Sprintf("Countdown set to %ds.", seconds)
}

func (s *SettingsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading settings...")
	}
	if s.confirm {
		return renderResetConfirm(width)
	}

	cw := components.ContentWidth(width)
	label := func(field int, text string) string {
		st := lipgloss.NewStyle().Width(12).Foreground(theme.TextDim)
		if s.focus == field {
			st = st.Foreground(theme.ArcadeYellow).Bold(true)
		}
		return st.Render(text)
	}

	var timers []string
	for _, t := range prefs.TimerChoices {
		text := fmt.Sprintf("%ds", t)
		if t == s.timer {
			timers = append(timers, lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("["+text+"]"))
		} else {
			timers = append(timers, lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+text+" "))
		}
	}

	rows := []string{
		label(fieldName, "NAME") + s.name.View(),
		label(fieldTimer, "COUNTDOWN") + strings.Join(timers, " "),
		"",
		components.ArcadeButton("RESET PROGRESS", resetState(s.focus == fieldReset), 22),
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeCard(strings.Join(rows, "\n"), cw)))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render(s.errMsg))
	} else if s.status != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Success).Render(s.status))
	}
	return b.String()
}

func renderResetConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Erase all progress?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render("High score, streaks, badges and the flight log will be cleared."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, erase everything"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep it"))
	return b.String()
}

func resetState(focused bool) components.ButtonState {
	if focused {
		return components.ButtonSelected
	}
	return components.ButtonNormal
}
