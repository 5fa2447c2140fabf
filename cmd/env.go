package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/settings"
	"github.com/abhisek/numberrush/internal/store"
)

// env is the set of collaborators every subcommand needs.
type env struct {
	store    *store.Store
	settings *settings.Repo
	prefs    settings.Settings
	manager  *game.Manager
}

// openEnv opens the store and builds a manager from saved settings.
func openEnv(cmd *cobra.Command, logger *log.Logger) (*env, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	repo := settings.New(st.KV())
	prefs, err := repo.Load(cmd.Context(), cfg.Timer)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if logger == nil {
		logger = log.New(os.Stderr, "numberrush: ", log.LstdFlags)
	}
	m := game.NewManager(game.Options{
		KV:         st.KV(),
		Results:    st.Results(),
		Duration:   prefs.Timer,
		PlayerName: prefs.Name,
		Logger:     logger,
	})

	return &env{store: st, settings: repo, prefs: prefs, manager: m}, nil
}

func (e *env) Close() error {
	e.manager.Close()
	return e.store.Close()
}
