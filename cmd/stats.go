package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/problemgen"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show saved statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		printStats(cmd.OutOrStdout(), e.manager.Snapshot().Stats, e.prefs.Name)
		return nil
	},
}

func printStats(w io.Writer, s game.Stats, name string) {
	if name != "" {
		fmt.Fprintf(w, "Player:          %s\n", name)
	}
	fmt.Fprintf(w, "High score:      %d\n", s.HighScore)
	fmt.Fprintf(w, "Best streak:     %d\n", s.BestStreak)
	fmt.Fprintf(w, "Total correct:   %d\n", s.TotalCorrect)
	fmt.Fprintf(w, "Chaos solved:    %d\n", s.TotalChaosSolved)
	for _, l := range problemgen.Levels() {
		fmt.Fprintf(w, "%-16s %d games\n", l.Name()+":", s.GamesOn(l))
	}
	fmt.Fprintf(w, "Badges:          %d/%d\n", len(s.UnlockedBadges), len(badges.Catalog()))
}
