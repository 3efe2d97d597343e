// Package cmd implements the command-line interface for kinotree.
package cmd

import (
	"os"

	"github.com/kinotree/kinotree/color"
	"github.com/kinotree/kinotree/recent"
	"github.com/kinotree/kinotree/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.SetOut(os.Stdout)
	recentCmd.Flags().Bool("clear", false, "Forget every recorded visit")
}

// recentCmd lists the most recently visited catalog locations.
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently visited sources and pages",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(recent.Clear())
			return
		}

		visits, err := recent.Get()
		handleErr(err)

		if len(visits) == 0 {
			cmd.Println(style.Faint("nothing visited yet"))
			return
		}

		for _, v := range visits {
			cmd.Printf("%s page %d %s\n",
				style.Fg(color.HiCyan)(v.SourceID),
				v.Page,
				style.Faint(v.VisitedAt.Format("2006-01-02 15:04")))
		}
	},
}
