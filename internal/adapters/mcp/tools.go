// Package mcp exposes the question store and the interview as MCP tools.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"streetinterview/internal/application/commands"
	"streetinterview/internal/domain"
	"streetinterview/internal/ports"
)

// Tools holds what every handler needs. Handlers run one at a time because
// each command reads, changes and writes the whole session.
type Tools struct {
	mu     sync.Mutex
	repo   ports.Repository
	logger *log.Logger
}

// NewTools creates the tool set
func NewTools(repo ports.Repository, logger *log.Logger) *Tools {
	return &Tools{repo: repo, logger: logger}
}

// Register adds all question and interview tools to the MCP server.
func Register(s *server.MCPServer, t *Tools) {
	s.AddTool(listQuestionsTool(), t.handle(t.listQuestions))
	s.AddTool(addQuestionTool(), t.handle(t.addQuestion))
	s.AddTool(updateQuestionTool(), t.handle(t.updateQuestion))
	s.AddTool(deleteQuestionTool(), t.handle(t.deleteQuestion))
	s.AddTool(importQuestionsTool(), t.handle(t.importQuestions))

	s.AddTool(startInterviewTool(), t.handle(t.startInterview))
	s.AddTool(currentQuestionTool(), t.handle(t.currentQuestion))
	s.AddTool(recordNoteTool(), t.handle(t.recordNote))
	s.AddTool(advanceTool(), t.handle(t.advance))
	s.AddTool(endInterviewTool(), t.handle(t.endInterview))
	s.AddTool(transcriptTool(), t.handle(t.transcript))
}

func (t *Tools) handle(h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		t.mu.Lock()
		defer t.mu.Unlock()

		logger := t.logger.With("tool", req.Params.Name)
		result, err := h(log.WithContext(ctx, logger), req)
		if result != nil && result.IsError {
			logger.Warn("tool failed", "error", resultText(result))
		}
		return result, err
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func resultText(r *mcp.CallToolResult) string {
	var parts []string
	for _, c := range r.Content {
		if text, ok := c.(mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func formatInterview(res *commands.InterviewResult) string {
	var sb strings.Builder
	if res.Message != "" {
		sb.WriteString(res.Message)
		sb.WriteByte('\n')
	}

	switch res.Status {
	case domain.StatusActive:
		if res.Question == nil {
			sb.WriteString("No current question.\n")
			break
		}
		fmt.Fprintf(&sb, "Question %d of %d: %s\n", res.Position, res.Total, res.Question.Text)
		if res.Note != "" {
			fmt.Fprintf(&sb, "Note: %s\n", res.Note)
		}
		if len(res.Answers) > 0 {
			fmt.Fprintf(&sb, "Answer categories: %s\n", strings.Join(res.Answers, ", "))
		} else {
			sb.WriteString("No branching: call advance without an answer.\n")
		}
	case domain.StatusEnded:
		sb.WriteString("Interview ended.\n\n")
		sb.WriteString(domain.RenderTranscript(res.Transcript))
	default:
		sb.WriteString("No interview in progress.\n")
	}
	return sb.String()
}
