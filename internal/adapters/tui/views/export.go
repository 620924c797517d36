package views

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"streetinterview/internal/adapters/tui/styles"
	"streetinterview/internal/application/commands"
)

// ExportKeyMap defines key bindings for the export view
type ExportKeyMap struct {
	Save    key.Binding
	Copy    key.Binding
	Open    key.Binding
	Restart key.Binding
	Back    key.Binding
}

var ExportKeys = ExportKeyMap{
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in editor"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new interview"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// ExportModel shows the finished transcript and saves or copies it
type ExportModel struct {
	ViewState
	svc       Services
	viewport  viewport.Model
	text      string
	savedPath string
	canEdit   bool
}

// NewExportModel creates a new export view. canEdit enables opening the saved file.
func NewExportModel(svc Services, canEdit bool) *ExportModel {
	return &ExportModel{
		svc:      svc,
		viewport: viewport.New(80, 10),
		canEdit:  canEdit,
	}
}

type transcriptLoadedMsg struct {
	text string
}

type exportedMsg struct {
	result *commands.ExportResult
	// open the file once written
	open bool
}

type copiedMsg struct{}

// Open loads the transcript of the finished interview
func (m *ExportModel) Open(message string) tea.Cmd {
	m.text = ""
	m.savedPath = ""
	m.SetMessage(message, false)
	return func() tea.Msg {
		result, err := commands.NewTranscriptCommand(m.svc.Repo).Execute(m.svc.Context())
		if err != nil {
			return errMsg{err}
		}
		return transcriptLoadedMsg{text: result.Text}
	}
}

// Init initializes the export view
func (m *ExportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the export view
func (m *ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case transcriptLoadedMsg:
		m.text = msg.text
		m.viewport.SetContent(msg.text)
		m.viewport.GotoTop()
		return m, nil

	case exportedMsg:
		m.savedPath = msg.result.Path
		m.SetMessage(msg.result.Message, false)
		if msg.open {
			return m, switchTo(OpenEditorMsg{Path: msg.result.Path})
		}
		return m, nil

	case copiedMsg:
		m.SetMessage("Transcript copied to clipboard", false)
		return m, nil

	case errMsg:
		if m.text == "" {
			return m, switchTo(SwitchToBuilderMsg{Message: msg.err.Error(), IsErr: true})
		}
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		switch {
		case key.Matches(msg, ExportKeys.Back):
			return m, switchTo(SwitchToBuilderMsg{})
		case key.Matches(msg, ExportKeys.Save):
			return m, m.save(false)
		case key.Matches(msg, ExportKeys.Copy):
			return m, m.copy()
		case key.Matches(msg, ExportKeys.Open):
			if !m.canEdit {
				m.SetMessage("No editor configured", true)
				return m, nil
			}
			if m.savedPath != "" {
				return m, switchTo(OpenEditorMsg{Path: m.savedPath})
			}
			return m, m.save(true)
		case key.Matches(msg, ExportKeys.Restart):
			return m, switchTo(SwitchToInterviewMsg{Restart: true})
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ExportModel) save(open bool) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewExportTranscriptCommand(m.svc.Repo, m.svc.Files, m.svc.ExportDir)
		result, err := cmd.Execute(m.svc.Context())
		if err != nil {
			return errMsg{err}
		}
		return exportedMsg{result: result, open: open}
	}
}

func (m *ExportModel) copy() tea.Cmd {
	text := m.text
	return func() tea.Msg {
		if m.svc.Clipboard == nil {
			return errMsg{errors.New("clipboard is not available")}
		}
		if err := m.svc.Clipboard.WriteAll(text); err != nil {
			return errMsg{err}
		}
		return copiedMsg{}
	}
}

// SetSize updates the view dimensions
func (m *ExportModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-8, 20)
	m.viewport.Height = max(height-12, 3)
}

// View renders the export view
func (m *ExportModel) View() string {
	v := NewViewBuilder().Title("Transcript")

	if m.savedPath != "" {
		v.Subtitle(m.savedPath)
	}

	open := ExportKeys.Open
	open.SetEnabled(m.canEdit)

	return v.
		Line(styles.Transcript.Render(m.viewport.View())).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(ExportKeys.Save, ExportKeys.Copy, open, ExportKeys.Restart, ExportKeys.Back).
		String()
}
