package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"streetinterview/internal/adapters/tui/views"
	"streetinterview/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBuilder ViewState = iota
	ViewQuestionForm
	ViewDelete
	ViewImport
	ViewInterview
	ViewExport
	ViewHelp
)

// App is the main TUI application model
type App struct {
	svc    views.Services
	editor ports.EditorOpener

	state     ViewState
	builder   *views.BuilderModel
	form      *views.QuestionFormModel
	delete    *views.DeleteModel
	importer  *views.ImportModel
	interview *views.InterviewModel
	export    *views.ExportModel
	help      *views.HelpModel
}

// NewApp creates a new TUI application. ed may be nil when no editor is available.
func NewApp(svc views.Services, ed ports.EditorOpener) *App {
	return &App{
		svc:       svc,
		editor:    ed,
		state:     ViewBuilder,
		builder:   views.NewBuilderModel(svc),
		form:      views.NewQuestionFormModel(svc),
		delete:    views.NewDeleteModel(svc),
		importer:  views.NewImportModel(svc),
		interview: views.NewInterviewModel(svc),
		export:    views.NewExportModel(svc, ed != nil),
		help:      views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.builder.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.builder.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.importer.SetSize(msg.Width, msg.Height)
		a.interview.SetSize(msg.Width, msg.Height)
		a.export.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToBuilderMsg:
		a.state = ViewBuilder
		if msg.Message != "" {
			a.builder.SetMessage(msg.Message, msg.IsErr)
		}
		return a, a.builder.Reload()

	case views.SwitchToQuestionFormMsg:
		a.state = ViewQuestionForm
		return a, a.form.Open(msg.QuestionID)

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		return a, a.delete.Open(msg.QuestionID)

	case views.SwitchToImportMsg:
		a.state = ViewImport
		return a, a.importer.Open()

	case views.SwitchToInterviewMsg:
		a.state = ViewInterview
		return a, a.interview.Open(msg.Restart)

	case views.SwitchToExportMsg:
		a.state = ViewExport
		return a, a.export.Open(msg.Message)

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			log.FromContext(a.svc.Context()).Error("editor failed", "err", msg.err)
			a.export.SetMessage("Editor: "+msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBuilder:
		_, cmd = a.builder.Update(msg)
	case ViewQuestionForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewImport:
		_, cmd = a.importer.Update(msg)
	case ViewInterview:
		_, cmd = a.interview.Update(msg)
	case ViewExport:
		_, cmd = a.export.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewQuestionForm:
		return a.form.View()
	case ViewDelete:
		return a.delete.View()
	case ViewImport:
		return a.importer.View()
	case ViewInterview:
		return a.interview.View()
	case ViewExport:
		return a.export.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.builder.View()
	}
}
