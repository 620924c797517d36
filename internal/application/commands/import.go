package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"streetinterview/internal/application"
	"streetinterview/internal/domain"
	"streetinterview/internal/ports"
)

// ImportResult contains the questions appended by an import
type ImportResult struct {
	Questions []domain.Question
	Message   string
}

// ImportTextCommand appends one question per numbered-list line
type ImportTextCommand struct {
	repo    ports.QuestionRepository
	Content string
}

// NewImportTextCommand creates a new ImportTextCommand
func NewImportTextCommand(repo ports.QuestionRepository, content string) *ImportTextCommand {
	return &ImportTextCommand{repo: repo, Content: content}
}

// Execute runs the import. An input with no list items appends nothing and is
// not an error here; callers decide whether that deserves a warning.
func (c *ImportTextCommand) Execute(ctx context.Context) (*ImportResult, error) {
	texts := domain.ParseNumberedList(c.Content)
	if len(texts) == 0 {
		return &ImportResult{Message: "No numbered questions found"}, nil
	}

	questions, err := c.repo.ListQuestions()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	created := make([]domain.Question, 0, len(texts))
	for _, text := range texts {
		created = append(created, domain.NewQuestion(text, nil))
	}
	questions = append(questions, created...)

	if err := c.repo.SaveQuestions(questions); err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	log.FromContext(ctx).Info("questions imported", "count", len(created))

	return &ImportResult{
		Questions: created,
		Message:   fmt.Sprintf("Imported %d question%s", len(created), plural(len(created))),
	}, nil
}

// ImportFileCommand imports a .txt or .md numbered list from disk
type ImportFileCommand struct {
	repo  ports.QuestionRepository
	files ports.TextFiles
	Path  string
}

// NewImportFileCommand creates a new ImportFileCommand
func NewImportFileCommand(repo ports.QuestionRepository, files ports.TextFiles, path string) *ImportFileCommand {
	return &ImportFileCommand{repo: repo, files: files, Path: path}
}

// Validate rejects unsupported extensions before anything is read
func (c *ImportFileCommand) Validate() error {
	return application.ValidateImportPath(c.Path)
}

// Execute runs the import file command. A file without list items is an ImportFormatError.
func (c *ImportFileCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.files.ReadText(c.Path)
	if err != nil {
		return nil, &application.IOError{Op: "read", Path: c.Path, Err: err}
	}

	if len(domain.ParseNumberedList(content)) == 0 {
		return nil, &application.ImportFormatError{
			File:   c.Path,
			Reason: "no questions found; use lines like \"1. Question text\"",
		}
	}

	return NewImportTextCommand(c.repo, content).Execute(ctx)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
