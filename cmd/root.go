package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/config"
	"github.com/abhisek/numberrush/internal/store"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "numberrush",
	Short: "Arithmetic speed game for kids",
	Long:  "NumberRush is a terminal arcade game where kids race the clock through addition and subtraction.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NUMBERRUSH_DB env var)")
	rootCmd.PersistentFlags().String("log", "", "Write a debug log to this file (overrides NUMBERRUSH_LOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NUMBERRUSH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveLogPath returns the --log flag, falling back to NUMBERRUSH_LOG.
func resolveLogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		return p
	}
	return cfg.LogPath
}
