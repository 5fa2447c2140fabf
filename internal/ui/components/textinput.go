package components

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

// TextInput is a single-line field with a rune limit and a live counter.
type TextInput struct {
	model textinput.Model
	limit int
}

// NewTextInput creates an unfocused field that accepts at most limit runes.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return TextInput{model: ti, limit: limit}
}

// Focus gives the field the cursor.
func (t *TextInput) Focus() tea.Cmd {
	return t.model.Focus()
}

// Blur removes the cursor.
func (t *TextInput) Blur() {
	t.model.Blur()
}

// Focused reports whether the field has the cursor.
func (t TextInput) Focused() bool {
	return t.model.Focused()
}

// SetValue replaces the text.
func (t *TextInput) SetValue(v string) {
	t.model.SetValue(v)
}

// Value returns the text as typed.
func (t TextInput) Value() string {
	return t.model.Value()
}

// Update forwards key presses to the field while it is focused.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if !t.model.Focused() {
		return t, nil
	}
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// View renders the field followed by a "n/limit" counter.
func (t TextInput) View() string {
	used := utf8.RuneCountInString(t.model.Value())
	counter := theme.TextDim
	if used >= t.limit {
		counter = theme.Accent
	}
	return t.model.View() + " " +
		lipgloss.NewStyle().Foreground(counter).Render(fmt.Sprintf("%d/%d", used, t.limit))
}
