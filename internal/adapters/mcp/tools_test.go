package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"streetinterview/internal/adapters/memory"
	"streetinterview/internal/adapters/storage"
	"streetinterview/internal/logging"
)

func newTestTools(t *testing.T) *Tools {
	t.Helper()
	return NewTools(storage.NewRepository(memory.NewStore()), logging.Discard())
}

func call(t *testing.T, h server.ToolHandlerFunc, name string, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("%s returned error: %v", name, err)
	}
	return resultText(res), res.IsError
}

func TestTools_InterviewFlow(t *testing.T) {
	tools := newTestTools(t)

	if _, isErr := call(t, tools.handle(tools.importQuestions), "import_questions", map[string]any{
		"content": "1. Do you cycle?\n2. How often?",
	}); isErr {
		t.Fatal("import failed")
	}

	if text, isErr := call(t, tools.handle(tools.updateQuestion), "update_question", map[string]any{
		"question": "1",
		"text":     "Do you cycle?",
		"rules":    []any{"yes=2", "no=end"},
	}); isErr {
		t.Fatalf("update failed: %s", text)
	}

	text, _ := call(t, tools.handle(tools.listQuestions), "list_questions", nil)
	if !strings.Contains(text, "yes → How often?") || !strings.Contains(text, "no → End Interview") {
		t.Errorf("list output:\n%s", text)
	}

	text, _ = call(t, tools.handle(tools.startInterview), "start_interview", nil)
	if !strings.Contains(text, "Question 1 of 2: Do you cycle?") || !strings.Contains(text, "yes, no") {
		t.Errorf("start output:\n%s", text)
	}

	text, isErr := call(t, tools.handle(tools.advance), "advance", map[string]any{"answer": "perhaps"})
	if !isErr || !strings.Contains(text, "does not match") {
		t.Errorf("unknown answer should be a tool error, got %q", text)
	}

	text, _ = call(t, tools.handle(tools.advance), "advance", map[string]any{"answer": "no", "note": "Takes the bus"})
	if !strings.Contains(text, "Interview ended.") || !strings.Contains(text, "→ Takes the bus") {
		t.Errorf("advance output:\n%s", text)
	}

	text, _ = call(t, tools.handle(tools.transcript), "transcript", nil)
	if text != "1. Do you cycle?\n→ Takes the bus\n\n" {
		t.Errorf("transcript = %q", text)
	}
}

func TestTools_ImportWithoutItemsIsError(t *testing.T) {
	tools := newTestTools(t)

	_, isErr := call(t, tools.handle(tools.importQuestions), "import_questions", map[string]any{"content": "no list here"})
	if !isErr {
		t.Error("expected tool error")
	}
}

func TestTools_StartWithEmptyStore(t *testing.T) {
	tools := newTestTools(t)

	text, isErr := call(t, tools.handle(tools.startInterview), "start_interview", nil)
	if !isErr || !strings.Contains(text, "no questions") {
		t.Errorf("start on empty store = %q, error %v", text, isErr)
	}
}
