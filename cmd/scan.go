// Package cmd implements the command-line interface for kinotree.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kinotree/kinotree/color"
	"github.com/kinotree/kinotree/key"
	"github.com/kinotree/kinotree/scanner"
	"github.com/kinotree/kinotree/style"
	"github.com/kinotree/kinotree/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.SetOut(os.Stdout)
	scanCmd.Flags().BoolP("json", "j", false, "Emit the listing as JSON")
}

// scanCmd resolves a local directory into a catalog listing.
var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Resolve a local directory into folders and playable items",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root, err := filepath.Abs(args[0])
		handleErr(err)

		maxDepth := util.Max(viper.GetInt(key.ScannerMaxDepth), 1)
		result := scanner.New(root).Scan(root, maxDepth, 1)

		if lo.Must(cmd.Flags().GetBool("json")) {
			out, err := json.MarshalIndent(result, "", "  ")
			handleErr(err)
			cmd.Println(string(out))
			return
		}

		folderStyle := style.Fg(color.HiBlue)
		flattenedStyle := style.Faint

		for _, folder := range result.Folders {
			cmd.Printf("%s %s\n", folderStyle("dir"), folder.Name)
		}
		for _, video := range result.Videos {
			title := video.Title
			if video.Flattened {
				title = flattenedStyle(title)
			}
			cmd.Printf("%s %s %s\n", style.Fg(color.HiGreen)("vid"), title, style.Faint(video.Extension))
		}

		cmd.Println()
		cmd.Println(style.Bold(util.Quantify(len(result.Folders), "folder", "folders")),
			style.Bold(util.Quantify(len(result.Videos), "video", "videos")))
	},
}
