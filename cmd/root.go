// Package cmd implements the command-line interface for kinotree.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/kinotree/kinotree/constant"
	"github.com/kinotree/kinotree/key"
	"github.com/kinotree/kinotree/log"
	"github.com/kinotree/kinotree/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().IntP("depth", "d", 2, "Maximum navigable folder depth for local sources")
	lo.Must0(viper.BindPFlag(key.ScannerMaxDepth, rootCmd.PersistentFlags().Lookup("depth")))
}

// rootCmd defines the entry point for the kinotree application.
var rootCmd = &cobra.Command{
	Use:   constant.Kinotree,
	Short: "A navigation core for heterogeneous video collections",
	Long:  style.Italic("Resolves local folder trees and remote catalogs into one uniform, cached catalog of playable items."),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
