package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"streetinterview/internal/application"
	"streetinterview/internal/ports"
)

// LibraryResult contains the outcome of a backup or restore
type LibraryResult struct {
	Count   int
	Message string
}

// DumpLibraryCommand writes every question, rules included, to a backup file
type DumpLibraryCommand struct {
	repo    ports.QuestionRepository
	archive ports.LibraryArchive
	Path    string
}

// NewDumpLibraryCommand creates a new DumpLibraryCommand
func NewDumpLibraryCommand(repo ports.QuestionRepository, archive ports.LibraryArchive, path string) *DumpLibraryCommand {
	return &DumpLibraryCommand{repo: repo, archive: archive, Path: path}
}

// Execute runs the dump command
func (c *DumpLibraryCommand) Execute(ctx context.Context) (*LibraryResult, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}

	questions, err := c.repo.ListQuestions()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if err := c.archive.WriteLibrary(c.Path, questions); err != nil {
		return nil, &application.IOError{Op: "write", Path: c.Path, Err: err}
	}

	log.FromContext(ctx).Info("library dumped", "path", c.Path, "count", len(questions))

	return &LibraryResult{
		Count:   len(questions),
		Message: fmt.Sprintf("Wrote %d question%s to %s", len(questions), plural(len(questions)), c.Path),
	}, nil
}

// LoadLibraryCommand restores questions from a backup, replacing the store
// or appending to it.
type LoadLibraryCommand struct {
	repo    ports.QuestionRepository
	archive ports.LibraryArchive
	Path    string
	Append  bool
}

// NewLoadLibraryCommand creates a new LoadLibraryCommand
func NewLoadLibraryCommand(repo ports.QuestionRepository, archive ports.LibraryArchive, path string, appendMode bool) *LoadLibraryCommand {
	return &LoadLibraryCommand{repo: repo, archive: archive, Path: path, Append: appendMode}
}

// Execute runs the load command. Nothing is saved unless the merged set validates.
func (c *LoadLibraryCommand) Execute(ctx context.Context) (*LibraryResult, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}

	loaded, err := c.archive.ReadLibrary(c.Path)
	if err != nil {
		return nil, &application.IOError{Op: "read", Path: c.Path, Err: err}
	}

	questions := loaded
	if c.Append {
		existing, err := c.repo.ListQuestions()
		if err != nil {
			return nil, fmt.Errorf("failed to load questions: %w", err)
		}
		questions = append(existing, loaded...)
	}
	if err := application.ValidateLibrary(questions); err != nil {
		return nil, err
	}

	if err := c.repo.SaveQuestions(questions); err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	log.FromContext(ctx).Info("library loaded", "path", c.Path, "count", len(loaded), "append", c.Append)

	verb := "Restored"
	if c.Append {
		verb = "Appended"
	}
	return &LibraryResult{
		Count:   len(loaded),
		Message: fmt.Sprintf("%s %d question%s", verb, len(loaded), plural(len(loaded))),
	}, nil
}

