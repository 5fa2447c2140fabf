package screen

import (
	"log"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/settings"
	"github.com/abhisek/numberrush/internal/store"
	"github.com/abhisek/numberrush/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackInterceptor is an optional interface for screens that handle Esc
// themselves instead of letting the app pop them.
type BackInterceptor interface {
	InterceptsBack() bool
}

// Deps carries the collaborators screens need to build one another.
type Deps struct {
	Game     *game.Manager
	Settings *settings.Repo
	Results  store.ResultRepo
	Logger   *log.Logger
}
