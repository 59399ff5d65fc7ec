package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/brogergvhs/shadowres/internal/config"

	"github.com/spf13/cobra"
)

var configAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Create a new config",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string
		if len(args) == 1 {
			label = args[0]
		} else {
			fmt.Fprint(cmd.OutOrStdout(), "Enter label for new config: ")
			label, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		}
		label = strings.TrimSpace(label)

		def := config.DefaultConfig()
		def.CachePath = config.DefaultCachePath()

		path, err := config.CreateConfig(label, def)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created new config: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configAddCmd)
}
