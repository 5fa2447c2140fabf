package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Helmet on, ready
	MascotCelebrating                      // Last game set a new high score
	MascotRookie                           // No score on the board yet
)

const mascotIdle = ` .-----.
( o   o )
 \  ▽  /
 /|+-=|\`

const mascotCelebrating = `\.-----./
( ★   ★ )
 \  ▿  /
 /|+-=|\`

const mascotRookie = ` .-----.
( o   o ) ?
 \  -  /
 /|+-=|\`

// RenderMascot returns the astronaut art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotRookie:
		art = mascotRookie
		fg = theme.ArcadeCyan
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
