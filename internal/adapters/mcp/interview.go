package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"streetinterview/internal/application"
	"streetinterview/internal/application/commands"
)

func startInterviewTool() mcp.Tool {
	return mcp.NewTool("start_interview",
		mcp.WithDescription("Start a new interview at the first question. Any previous interview is discarded."),
	)
}

func (t *Tools) startInterview(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewStartInterviewCommand(t.repo).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(formatInterview(res)), nil
}

func currentQuestionTool() mcp.Tool {
	return mcp.NewTool("current_question",
		mcp.WithDescription("Show the current question, its saved note and the answer categories."),
	)
}

func (t *Tools) currentQuestion(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewCurrentQuestionCommand(t.repo).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(formatInterview(res)), nil
}

func recordNoteTool() mcp.Tool {
	return mcp.NewTool("record_note",
		mcp.WithDescription("Save the respondent's answer for the current question, replacing any earlier note."),
		mcp.WithString("note",
			mcp.Description("Free-text notes"),
			mcp.Required(),
		),
	)
}

func (t *Tools) recordNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewRecordNoteCommand(t.repo, req.GetString("note", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(formatInterview(res)), nil
}

func advanceTool() mcp.Tool {
	return mcp.NewTool("advance",
		mcp.WithDescription("Move to the next question. Questions with branching rules need an answer category."),
		mcp.WithString("answer",
			mcp.Description("Answer category; required when the current question has rules"),
		),
		mcp.WithString("note",
			mcp.Description("Note to save for the current question before moving on"),
		),
	)
}

func (t *Tools) advance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewAdvanceCommand(t.repo, req.GetString("answer", ""), optionalString(req, "note")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(formatInterview(res)), nil
}

func endInterviewTool() mcp.Tool {
	return mcp.NewTool("end_interview",
		mcp.WithDescription("End the interview now and show the transcript of answered questions."),
		mcp.WithString("note",
			mcp.Description("Note to save for the current question first"),
		),
	)
}

func (t *Tools) endInterview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewEndInterviewCommand(t.repo, optionalString(req, "note")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(formatInterview(res)), nil
}

func transcriptTool() mcp.Tool {
	return mcp.NewTool("transcript",
		mcp.WithDescription("Return the plain-text transcript of the last finished interview."),
	)
}

func (t *Tools) transcript(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewTranscriptCommand(t.repo).Execute(ctx)
	if errors.Is(err, application.ErrNothingToExport) {
		return mcp.NewToolResultText("No finished interview to export."), nil
	}
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(res.Text), nil
}

// optionalString distinguishes an omitted argument from an empty one
func optionalString(req mcp.CallToolRequest, key string) *string {
	v, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
