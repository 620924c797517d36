package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"streetinterview/internal/adapters/clipboard"
	"streetinterview/internal/adapters/filesystem"
	"streetinterview/internal/application/commands"
	"streetinterview/internal/config"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save the finished interview as street-interview-YYYY-MM-DD.txt",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.Export.Dir
		if cmd.Flags().Changed("dir") {
			d, _ := cmd.Flags().GetString("dir")
			dir = config.ExpandPath(d)
		}

		result, err := commands.NewExportTranscriptCommand(GetRepo(), filesystem.NewDocuments(), dir).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		if toClipboard, _ := cmd.Flags().GetBool("copy"); toClipboard {
			if err := clipboard.New().WriteAll(result.Text); err != nil {
				return err
			}
			fmt.Println("Copied to clipboard")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("dir", "d", "", "directory to write to (default export.dir)")
	exportCmd.Flags().Bool("copy", false, "also copy the transcript to the clipboard")
}
