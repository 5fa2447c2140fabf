package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

// Numpad keys besides the digits.
const (
	PadClear  = "C"
	PadMinus  = "-"
	PadSubmit = "OK"
)

var padRows = [][]string{
	{"7", "8", "9"},
	{"4", "5", "6"},
	{"1", "2", "3"},
	{PadMinus, "0", PadClear},
	{PadSubmit},
}

// PadPressedMsg is emitted when a numpad key is activated.
type PadPressedMsg struct {
	Key string
}

// Numpad is an on-screen keypad navigated with the arrow keys. Typing
// digits directly is handled by the owning screen; the pad only moves its
// cursor and reports activations.
type Numpad struct {
	Row, Col int
	Disabled bool
}

// NewNumpad creates a numpad with the cursor on "5".
func NewNumpad() Numpad {
	return Numpad{Row: 1, Col: 1}
}

// Selected returns the key under the cursor.
func (n Numpad) Selected() string {
	return padRows[n.Row][n.Col]
}

// Update moves the cursor and emits a PadPressedMsg on space.
func (n Numpad) Update(msg tea.Msg) (Numpad, tea.Cmd) {
	if n.Disabled {
		return n, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return n, nil
	}

	switch kmsg.String() {
	case "up":
		if n.Row > 0 {
			n.Row--
			n.Col = min(n.Col, len(padRows[n.Row])-1)
		}
	case "down":
		if n.Row < len(padRows)-1 {
			n.Row++
			n.Col = min(n.Col, len(padRows[n.Row])-1)
		}
	case "left":
		if n.Col > 0 {
			n.Col--
		}
	case "right":
		if n.Col < len(padRows[n.Row])-1 {
			n.Col++
		}
	case "space":
		key := n.Selected()
		return n, func() tea.Msg { return PadPressedMsg{Key: key} }
	}
	return n, nil
}

// View renders the keypad grid.
func (n Numpad) View() string {
	cell := lipgloss.NewStyle().
		Width(5).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())

	rows := make([]string, 0, len(padRows))
	for r, row := range padRows {
		cells := make([]string, 0, len(row))
		for c, key := range row {
			st := cell.Foreground(theme.Text).BorderForeground(theme.Border)
			if key == PadSubmit {
				st = st.Width(19).Foreground(theme.Success)
			}
			if r == n.Row && c == n.Col && !n.Disabled {
				st = st.Bold(true).
					Foreground(theme.BgDark).
					Background(theme.ArcadeYellow).
					BorderForeground(theme.ArcadeYellow)
			}
			cells = append(cells, st.Render(key))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// ApplyPadKey returns the answer buffer after pressing key.
func ApplyPadKey(buf, key string, limit int) string {
	switch key {
	case PadClear:
		return ""
	case PadMinus:
		if strings.HasPrefix(buf, "-") {
			return buf[1:]
		}
		if len(buf) < limit {
			return "-" + buf
		}
		return buf
	case PadSubmit:
		return buf
	}
	if len(buf) >= limit {
		return buf
	}
	return buf + key
}
