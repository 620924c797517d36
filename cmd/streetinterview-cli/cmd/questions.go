package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"streetinterview/internal/adapters/filesystem"
	"streetinterview/internal/application"
	"streetinterview/internal/application/commands"
)

var questionsCmd = &cobra.Command{
	Use:     "questions",
	Aliases: []string{"q"},
	Short:   "Manage the question list",
	Long: `List, add, edit, delete and import interview questions.

Questions are referred to by their number in the list or by id.
Branches are written as answer=target, where target is a question
number, a question id or "end".

Examples:
  streetinterview-cli questions add "Do you cycle to work?" --rule yes=2 --rule no=end
  streetinterview-cli questions edit 1 --text "Do you cycle?"
  streetinterview-cli questions import questions.md`,
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions with their branches",
	RunE: func(cmd *cobra.Command, args []string) error {
		views, err := commands.NewListQuestionsCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(views) == 0 {
			fmt.Println("No questions yet.")
			return nil
		}

		showIDs, _ := cmd.Flags().GetBool("ids")
		for _, v := range views {
			if showIDs {
				fmt.Printf("%d. %s  [%s]\n", v.Position, v.Question.Text, v.Question.ID)
			} else {
				fmt.Printf("%d. %s\n", v.Position, v.Question.Text)
			}
			for _, b := range v.Branches {
				fmt.Printf("     %s → %s\n", b.Answer, b.Label)
			}
		}
		return nil
	},
}

var questionsAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := parseRuleFlag(cmd)
		if err != nil {
			return err
		}
		result, err := commands.NewAddQuestionCommand(GetRepo(), args[0], rules).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var questionsEditCmd = &cobra.Command{
	Use:   "edit <number|id>",
	Short: "Change a question's text or branches",
	Long: `Change a question's text or branches.

Branches given with --rule replace all existing branches; --clear-rules
removes them. Without either, the branches are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := commands.ResolveQuestionID(GetRepo(), args[0])
		if err != nil {
			return err
		}
		questions, err := GetRepo().ListQuestions()
		if err != nil {
			return err
		}
		var current application.Question
		for _, q := range questions {
			if q.ID == id {
				current = q
			}
		}

		text := current.Text
		if cmd.Flags().Changed("text") {
			text, _ = cmd.Flags().GetString("text")
		}

		rules := current.BranchingRules
		clearRules, _ := cmd.Flags().GetBool("clear-rules")
		switch {
		case clearRules:
			rules = nil
		case cmd.Flags().Changed("rule"):
			if rules, err = parseRuleFlag(cmd); err != nil {
				return err
			}
		}

		result, err := commands.NewUpdateQuestionCommand(GetRepo(), id, text, rules).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var questionsDeleteCmd = &cobra.Command{
	Use:     "delete <number|id>",
	Aliases: []string{"rm"},
	Short:   "Delete a question",
	Long: `Delete a question. Branches in other questions that lead to it
are kept and end the interview when taken.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := commands.ResolveQuestionID(GetRepo(), args[0])
		if err != nil {
			return err
		}
		result, err := commands.NewDeleteQuestionCommand(GetRepo(), id).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var questionsImportCmd = &cobra.Command{
	Use:   "import <file.txt|file.md>",
	Short: "Append questions from a numbered list",
	Long: `Append one question per numbered line of a .txt or .md file.

Recognised lines look like "1. Text", "1) Text", "1 - Text" or "1: Text".
Other lines are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewImportFileCommand(GetRepo(), filesystem.NewDocuments(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func parseRuleFlag(cmd *cobra.Command) (application.BranchRules, error) {
	specs, _ := cmd.Flags().GetStringArray("rule")
	questions, err := GetRepo().ListQuestions()
	if err != nil {
		return nil, err
	}
	var trimmed []string
	for _, s := range specs {
		if s = strings.TrimSpace(s); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	return application.ParseRuleSpecs(trimmed, questions)
}

func init() {
	rootCmd.AddCommand(questionsCmd)
	questionsCmd.AddCommand(questionsListCmd, questionsAddCmd, questionsEditCmd, questionsDeleteCmd, questionsImportCmd)

	questionsListCmd.Flags().Bool("ids", false, "show question ids")

	questionsAddCmd.Flags().StringArrayP("rule", "r", nil, "branch as answer=target (repeatable)")

	questionsEditCmd.Flags().StringP("text", "t", "", "new question text")
	questionsEditCmd.Flags().StringArrayP("rule", "r", nil, "branch as answer=target (repeatable, replaces all)")
	questionsEditCmd.Flags().Bool("clear-rules", false, "remove all branches")
	questionsEditCmd.MarkFlagsMutuallyExclusive("rule", "clear-rules")
}
