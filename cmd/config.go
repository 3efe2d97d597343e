// Package cmd implements the command-line interface for kinotree.
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/kinotree/kinotree/config"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.SetOut(os.Stdout)
	configInfoCmd.Flags().StringP("key", "k", "", "Show a single configuration field")
}

// configCmd groups configuration-related subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect application configuration",
}

// configInfoCmd prints the configuration fields with their current and default values.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration fields, their current values and defaults",
	Run: func(cmd *cobra.Command, args []string) {
		if k := lo.Must(cmd.Flags().GetString("key")); k != "" {
			field, ok := config.Default[k]
			if !ok {
				handleErr(fmt.Errorf("unknown config key: %s", k))
			}
			cmd.Println(field.Pretty())
			return
		}

		keys := lo.Keys(config.Default)
		sort.Strings(keys)

		for i, k := range keys {
			field := config.Default[k]
			cmd.Println(field.Pretty())
			if i < len(keys)-1 {
				cmd.Println()
			}
		}
	},
}
