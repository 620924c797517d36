package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"streetinterview/internal/application"
	"streetinterview/internal/application/commands"
)

var interviewCmd = &cobra.Command{
	Use:     "interview",
	Aliases: []string{"i"},
	Short:   "Run an interview one step at a time",
	Long: `Run an interview one step at a time. The session is saved after every
step, so it can be resumed later from the TUI or the CLI.

Examples:
  streetinterview-cli interview start
  streetinterview-cli interview next yes --note "Every day, rain or shine"
  streetinterview-cli interview end
  streetinterview-cli interview transcript`,
}

var interviewStartCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"restart"},
	Short:   "Start a new interview at the first question",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewStartInterviewCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printInterview(result)
		return nil
	},
}

var interviewStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current question",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewCurrentQuestionCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printInterview(result)
		return nil
	},
}

var interviewNoteCmd = &cobra.Command{
	Use:   "note <text>",
	Short: "Save the note for the current question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note := strings.Join(args, " ")
		result, err := commands.NewRecordNoteCommand(GetRepo(), note).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if result.Status != application.StatusActive {
			printInterview(result)
			return nil
		}
		fmt.Println(result.Message)
		return nil
	},
}

var interviewNextCmd = &cobra.Command{
	Use:   "next [answer]",
	Short: "Move past the current question",
	Long: `Move past the current question. Questions with branches need the
answer category; the others continue with the next question in the list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var answer string
		if len(args) == 1 {
			answer = args[0]
		}
		result, err := commands.NewAdvanceCommand(GetRepo(), answer, noteFlag(cmd)).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printInterview(result)
		return nil
	},
}

var interviewEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the interview now",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewEndInterviewCommand(GetRepo(), noteFlag(cmd)).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printInterview(result)
		return nil
	},
}

var interviewTranscriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Print the transcript of the last finished interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewTranscriptCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(result.Text)
		return nil
	},
}

// noteFlag returns nil when --note was not given, so an earlier note is kept
func noteFlag(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("note") {
		return nil
	}
	note, _ := cmd.Flags().GetString("note")
	return &note
}

func printInterview(result *commands.InterviewResult) {
	if result.Message != "" {
		fmt.Println(result.Message)
	}

	switch result.Status {
	case application.StatusActive:
		if result.Question == nil {
			return
		}
		fmt.Printf("\nQuestion %d of %d\n%s\n", result.Position, result.Total, result.Question.Text)
		if result.Note != "" {
			fmt.Printf("Note: %s\n", result.Note)
		}
		if len(result.Answers) > 0 {
			fmt.Printf("Answers: %s\n", strings.Join(result.Answers, ", "))
		}
	case application.StatusEnded:
		fmt.Println()
		fmt.Print(application.RenderTranscript(result.Transcript))
	default:
		fmt.Println("No interview in progress.")
	}
}

func init() {
	rootCmd.AddCommand(interviewCmd)
	interviewCmd.AddCommand(interviewStartCmd, interviewStatusCmd, interviewNoteCmd,
		interviewNextCmd, interviewEndCmd, interviewTranscriptCmd)

	interviewNextCmd.Flags().StringP("note", "n", "", "note for the current question")
	interviewEndCmd.Flags().StringP("note", "n", "", "note for the current question")
}
