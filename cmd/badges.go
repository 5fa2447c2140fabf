package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/badges"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges and which are unlocked",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		printBadges(cmd.OutOrStdout(), e.manager.Snapshot().Stats.UnlockedBadges)
		return nil
	},
}

func printBadges(w io.Writer, unlocked []badges.ID) {
	for _, b := range badges.Catalog() {
		mark := "  "
		if slices.Contains(unlocked, b.ID) {
			mark = "✓ "
		}
		fmt.Fprintf(w, "%s%s %-16s %-10s %s\n", mark, b.Icon, b.Name, b.Rarity.DisplayName(), b.Description)
	}
}
