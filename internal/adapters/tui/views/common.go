package views

import (
	"context"

	"github.com/charmbracelet/log"

	"streetinterview/internal/ports"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Services are the collaborators views run commands against
type Services struct {
	Repo      ports.Repository
	Files     ports.TextFiles
	Clipboard ports.Clipboard
	ExportDir string
	Logger    *log.Logger
}

// Context returns a background context carrying the logger for commands
func (s Services) Context() context.Context {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	return log.WithContext(context.Background(), logger)
}

// Messages for view switching
type SwitchToBuilderMsg struct {
	Message string
	IsErr   bool
}

type SwitchToQuestionFormMsg struct {
	// QuestionID is empty when adding a question
	QuestionID string
}

type SwitchToDeleteMsg struct {
	QuestionID string
}

type SwitchToImportMsg struct{}

// SwitchToInterviewMsg opens the interview. Restart discards the previous session.
type SwitchToInterviewMsg struct {
	Restart bool
}

type SwitchToExportMsg struct {
	Message string
}

type SwitchToHelpMsg struct{}

// OpenEditorMsg requests opening a file in editor
type OpenEditorMsg struct {
	Path string
}

// errMsg carries a failed command back to the view that started it
type errMsg struct {
	err error
}
