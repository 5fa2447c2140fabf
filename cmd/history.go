package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent games",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		results, err := e.store.Results().Recent(cmd.Context(), n)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		printHistory(cmd.OutOrStdout(), results)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of games to show (0 for all)")
}

func printHistory(w io.Writer, results []store.GameResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No games yet.")
		return
	}
	for _, r := range results {
		chaos := ""
		if r.Advanced {
			chaos = " chaos"
		}
		fmt.Fprintf(w, "%s  %-8s %-10s %4d pts  %d/%d correct  streak %d%s\n",
			r.PlayedAt.Format("2006-01-02 15:04"), r.Mode, problemgen.Level(r.Level).Name(),
			r.Score, r.Correct, r.Answered, r.BestStreak, chaos)
	}
}
