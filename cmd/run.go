package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/app"
	"github.com/abhisek/numberrush/internal/fx"
	"github.com/abhisek/numberrush/internal/screen"
	sessionscreen "github.com/abhisek/numberrush/internal/screens/session"
)

// runApp opens the store, builds dependencies, and launches the TUI. A
// non-nil start skips the splash and opens a game directly.
func runApp(cmd *cobra.Command, start *sessionscreen.Setup) error {
	// The TUI owns the terminal; the manager logs through the standard
	// logger, which app.Run points at the log file or discards.
	e, err := openEnv(cmd, log.Default())
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Deps: screen.Deps{
			Game:     e.manager,
			Settings: e.settings,
			Results:  e.store.Results(),
			Logger:   log.Default(),
		},
		Player:  fx.NewBell(os.Stderr, !cfg.Sound),
		LogPath: resolveLogPath(cmd),
		Start:   start,
	})
}
