package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or change player settings",
}

var configGetCmd = &cobra.Command{
	Use:       "get <name|timer>",
	Short:     "Print a setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"name", "timer"},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		switch args[0] {
		case "name":
			fmt.Fprintln(cmd.OutOrStdout(), e.prefs.Name)
		case "timer":
			fmt.Fprintln(cmd.OutOrStdout(), e.prefs.Timer)
		default:
			return fmt.Errorf("unknown setting %q", args[0])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <name|timer> <value>",
	Short:     "Change a setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"name", "timer"},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		switch args[0] {
		case "name":
			name, err := e.settings.SetName(ctx, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "name = %q\n", name)
		case "timer":
			n, err := strconv.Atoi(args[1])
			if err != nil || !settings.ValidTimer(n) {
				return settings.ErrInvalidTimer
			}
			if err := e.settings.SetTimer(ctx, n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "timer = %d\n", n)
		default:
			return fmt.Errorf("unknown setting %q", args[0])
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
