package cmd

import (
	"fmt"

	"github.com/brogergvhs/shadowres/internal/config"

	"github.com/spf13/cobra"
)

var configRenameCmd = &cobra.Command{
	Use:   "rename <old_label> <new_label>",
	Short: "Rename a config profile, keeping it active if it was",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldLabel, newLabel := args[0], args[1]
		if oldLabel == newLabel {
			return fmt.Errorf("config is already named %q", newLabel)
		}

		if err := config.RenameConfig(oldLabel, newLabel); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Renamed config %q -> %q\n", oldLabel, newLabel)
		if active, _ := config.CurrentLabel(); active == newLabel {
			fmt.Fprintln(out, "It is still the active config.")
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configRenameCmd)
}
