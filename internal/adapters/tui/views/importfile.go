package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"streetinterview/internal/application/commands"
	"streetinterview/internal/config"
)

// ImportModel asks for a numbered-list file and appends its questions
type ImportModel struct {
	ViewState
	svc  Services
	form *InputForm
}

// NewImportModel creates a new import view
func NewImportModel(svc Services) *ImportModel {
	path := NewInputField("File", "~/questions.md", 1024)
	path.Hint = ".txt or .md, one \"1. Question\" per line"
	return &ImportModel{
		svc:  svc,
		form: NewInputForm(path),
	}
}

// Open clears the form
func (m *ImportModel) Open() tea.Cmd {
	m.ClearMessage()
	m.form.Reset()
	return m.form.Init()
}

// Init initializes the import view
func (m *ImportModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the import view
func (m *ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, switchTo(SwitchToBuilderMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.doImport
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *ImportModel) doImport() tea.Msg {
	path := config.ExpandPath(m.form.Value(0))
	result, err := commands.NewImportFileCommand(m.svc.Repo, m.svc.Files, path).Execute(m.svc.Context())
	if err != nil {
		return errMsg{err}
	}
	return SwitchToBuilderMsg{Message: result.Message}
}

// SetSize updates the view dimensions
func (m *ImportModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.form.SetWidth(width - 10)
}

// View renders the import view
func (m *ImportModel) View() string {
	return NewViewBuilder().
		Title("Import Questions").
		Subtitle("Numbered lines become new questions at the end of the list").
		Line(m.form.RenderField(0)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("import")).
		String()
}
