package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"streetinterview/internal/application"
	"streetinterview/internal/domain"
	"streetinterview/internal/ports"
)

// ExportResult contains where the transcript was written
type ExportResult struct {
	Path    string
	Text    string
	Entries int
	Message string
}

// ExportTranscriptCommand writes the finished interview to Dir as
// street-interview-YYYY-MM-DD.txt. A file from earlier the same day is replaced.
type ExportTranscriptCommand struct {
	repo  ports.SessionRepository
	files ports.TextFiles
	Dir   string
	Now   func() time.Time
}

// NewExportTranscriptCommand creates a new ExportTranscriptCommand
func NewExportTranscriptCommand(repo ports.SessionRepository, files ports.TextFiles, dir string) *ExportTranscriptCommand {
	return &ExportTranscriptCommand{
		repo:  repo,
		files: files,
		Dir:   dir,
		Now:   time.Now,
	}
}

// Validate checks if the export operation is valid
func (c *ExportTranscriptCommand) Validate() error {
	return application.ValidateRequired("dir", c.Dir)
}

// Execute runs the export command
func (c *ExportTranscriptCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	transcript, err := NewTranscriptCommand(c.repo).Execute(ctx)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(c.Dir, domain.TranscriptFileName(c.Now()))
	written, err := c.files.WriteText(path, transcript.Text)
	if err != nil {
		return nil, &application.IOError{Op: "write", Path: path, Err: err}
	}

	log.FromContext(ctx).Info("transcript exported", "path", written, "entries", len(transcript.Entries))

	return &ExportResult{
		Path:    written,
		Text:    transcript.Text,
		Entries: len(transcript.Entries),
		Message: fmt.Sprintf("Saved %s", written),
	}, nil
}
