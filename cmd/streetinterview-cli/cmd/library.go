package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"streetinterview/internal/adapters/filesystem"
	"streetinterview/internal/application/commands"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Back up and restore the question list as YAML",
}

var libraryDumpCmd = &cobra.Command{
	Use:   "dump <file.yaml>",
	Short: "Write all questions to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDumpLibraryCommand(GetRepo(), filesystem.NewLibrary(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var libraryLoadCmd = &cobra.Command{
	Use:   "load <file.yaml>",
	Short: "Replace the question list with a YAML backup",
	Long: `Replace the question list with a YAML backup, or add its questions
to the end of the list with --append. Ids must stay unique.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appendMode, _ := cmd.Flags().GetBool("append")
		result, err := commands.NewLoadLibraryCommand(GetRepo(), filesystem.NewLibrary(), args[0], appendMode).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryDumpCmd, libraryLoadCmd)
	libraryLoadCmd.Flags().Bool("append", false, "append instead of replacing")
}
