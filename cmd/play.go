package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/problemgen"
	sessionscreen "github.com/abhisek/numberrush/internal/screens/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		level, _ := cmd.Flags().GetInt("level")
		chaos, _ := cmd.Flags().GetBool("chaos")

		if mode != string(game.ModeBlitz) && mode != string(game.ModePractice) {
			return fmt.Errorf("unknown mode %q (want blitz or practice)", mode)
		}
		if level < int(problemgen.MinLevel) || level > int(problemgen.MaxLevel) {
			return fmt.Errorf("level must be between %d and %d", problemgen.MinLevel, problemgen.MaxLevel)
		}

		return runApp(cmd, &sessionscreen.Setup{
			Mode:     game.ParseMode(mode),
			Level:    problemgen.Level(level),
			Advanced: chaos,
		})
	},
}

func init() {
	playCmd.Flags().String("mode", string(game.ModeBlitz), "Game mode: blitz or practice")
	playCmd.Flags().Int("level", int(problemgen.LevelMoon), "Starting planet: 1 Moon, 2 Mars, 3 Deep Space")
	playCmd.Flags().Bool("chaos", false, "Three-term questions (a ± b ± c)")
}
