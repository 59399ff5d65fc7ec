package cmd

import (
	"fmt"

	"github.com/brogergvhs/shadowres/internal/config"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the active config to default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		activePath, err := config.ActiveConfigPath()
		if err != nil {
			return fmt.Errorf("%w, run `shadowres config init` first", err)
		}

		out := cmd.OutOrStdout()
		if !flagResetYes && !confirm(cmd.InOrStdin(), out, "Overwrite "+activePath+" with defaults?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}

		def := config.DefaultConfig()
		def.CachePath = config.DefaultCachePath()
		if err := config.SaveYAML(def, activePath); err != nil {
			return err
		}

		fmt.Fprintf(out, "Reset active config: %s\n", activePath)
		return nil
	},
}

func init() {
	configResetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "do not ask for confirmation")
	configCmd.AddCommand(configResetCmd)
}
