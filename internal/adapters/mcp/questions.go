package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"streetinterview/internal/application"
	"streetinterview/internal/application/commands"
)

// --- list_questions ---

func listQuestionsTool() mcp.Tool {
	return mcp.NewTool("list_questions",
		mcp.WithDescription("List interview questions in order with their ids and branching rules."),
	)
}

func (t *Tools) listQuestions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	views, err := commands.NewListQuestionsCommand(t.repo).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	if len(views) == 0 {
		return mcp.NewToolResultText("No questions yet."), nil
	}

	var sb strings.Builder
	for _, v := range views {
		fmt.Fprintf(&sb, "%d. %s  [%s]\n", v.Position, v.Question.Text, v.Question.ID)
		for _, b := range v.Branches {
			fmt.Fprintf(&sb, "   %s → %s\n", b.Answer, b.Label)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// --- add_question ---

func addQuestionTool() mcp.Tool {
	return mcp.NewTool("add_question",
		mcp.WithDescription("Append a question. Rules map an answer category to the next question."),
		mcp.WithString("text",
			mcp.Description("Question text"),
			mcp.Required(),
		),
		mcp.WithArray("rules",
			mcp.Description(`Branching rules as "answer=target"; target is a question id, its 1-based number, or "end".`),
			mcp.WithStringItems(),
		),
	)
}

func (t *Tools) addQuestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules, err := t.parseRules(req)
	if err != nil {
		return toolError(err)
	}

	result, err := commands.NewAddQuestionCommand(t.repo, req.GetString("text", ""), rules).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s [%s]", result.Message, result.Question.ID)), nil
}

// --- update_question ---

func updateQuestionTool() mcp.Tool {
	return mcp.NewTool("update_question",
		mcp.WithDescription("Replace the text and all branching rules of a question."),
		mcp.WithString("question",
			mcp.Description("Question id or 1-based number"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("New question text"),
			mcp.Required(),
		),
		mcp.WithArray("rules",
			mcp.Description(`Complete new rule set as "answer=target". Omit to clear all rules.`),
			mcp.WithStringItems(),
		),
	)
}

func (t *Tools) updateQuestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := commands.ResolveQuestionID(t.repo, req.GetString("question", ""))
	if err != nil {
		return toolError(err)
	}
	rules, err := t.parseRules(req)
	if err != nil {
		return toolError(err)
	}

	result, err := commands.NewUpdateQuestionCommand(t.repo, id, req.GetString("text", ""), rules).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- delete_question ---

func deleteQuestionTool() mcp.Tool {
	return mcp.NewTool("delete_question",
		mcp.WithDescription("Delete a question. Rules pointing at it are kept and will end the interview."),
		mcp.WithString("question",
			mcp.Description("Question id or 1-based number"),
			mcp.Required(),
		),
	)
}

func (t *Tools) deleteQuestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := commands.ResolveQuestionID(t.repo, req.GetString("question", ""))
	if err != nil {
		return toolError(err)
	}

	result, err := commands.NewDeleteQuestionCommand(t.repo, id).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- import_questions ---

func importQuestionsTool() mcp.Tool {
	return mcp.NewTool("import_questions",
		mcp.WithDescription(`Append questions from a numbered list ("1. text", "1) text", "1 - text" or "1: text" per line).`),
		mcp.WithString("content",
			mcp.Description("Numbered list text"),
			mcp.Required(),
		),
	)
}

func (t *Tools) importQuestions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewImportTextCommand(t.repo, req.GetString("content", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	if len(result.Questions) == 0 {
		return mcp.NewToolResultError(result.Message), nil
	}
	return mcp.NewToolResultText(result.Message), nil
}

func (t *Tools) parseRules(req mcp.CallToolRequest) (application.BranchRules, error) {
	specs := req.GetStringSlice("rules", nil)
	if len(specs) == 0 {
		return nil, nil
	}
	questions, err := t.repo.ListQuestions()
	if err != nil {
		return nil, err
	}
	return application.ParseRuleSpecs(specs, questions)
}
