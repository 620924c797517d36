package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"streetinterview/internal/adapters/tui/styles"
	"streetinterview/internal/application"
	"streetinterview/internal/application/commands"
)

// BuilderKeyMap defines key bindings for the question builder
type BuilderKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Import   key.Binding
	Start    key.Binding
	Restart  key.Binding
	Export   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BuilderKeys = BuilderKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "interview"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new interview"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// reserved rows for title, status, message and help
const builderChrome = 10

// BuilderModel lists the question store with each question's branches
type BuilderModel struct {
	ViewState
	svc       Services
	questions []commands.QuestionView
	status    application.Status
	paginator *Paginator
	loaded    bool
}

// NewBuilderModel creates a new builder model
func NewBuilderModel(svc Services) *BuilderModel {
	return &BuilderModel{
		svc:       svc,
		paginator: NewPaginator(10),
	}
}

type questionsLoadedMsg struct {
	questions []commands.QuestionView
	status    application.Status
}

// Init initializes the builder
func (m *BuilderModel) Init() tea.Cmd {
	return m.load
}

// Reload reloads the question store
func (m *BuilderModel) Reload() tea.Cmd {
	return m.load
}

func (m *BuilderModel) load() tea.Msg {
	questions, err := commands.NewListQuestionsCommand(m.svc.Repo).Execute(m.svc.Context())
	if err != nil {
		return errMsg{err}
	}
	session, err := m.svc.Repo.LoadSession()
	if err != nil {
		return errMsg{err}
	}
	return questionsLoadedMsg{questions: questions, status: session.Status}
}

// Update handles messages for the builder
func (m *BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case questionsLoadedMsg:
		m.loaded = true
		m.questions = msg.questions
		m.status = msg.status
		m.paginator.SetTotal(len(msg.questions))
		return m, nil

	case errMsg:
		m.loaded = true
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BuilderModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BuilderKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BuilderKeys.Up):
		m.paginator.CursorUp()

	case key.Matches(msg, BuilderKeys.Down):
		m.paginator.CursorDown()

	case key.Matches(msg, BuilderKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, BuilderKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, BuilderKeys.New):
		return switchTo(SwitchToQuestionFormMsg{})

	case key.Matches(msg, BuilderKeys.Edit):
		if q := m.Selected(); q != nil {
			return switchTo(SwitchToQuestionFormMsg{QuestionID: q.Question.ID})
		}

	case key.Matches(msg, BuilderKeys.Delete):
		if q := m.Selected(); q != nil {
			return switchTo(SwitchToDeleteMsg{QuestionID: q.Question.ID})
		}

	case key.Matches(msg, BuilderKeys.Import):
		return switchTo(SwitchToImportMsg{})

	case key.Matches(msg, BuilderKeys.Start):
		if len(m.questions) == 0 {
			m.SetMessage("Add some questions first", true)
			return nil
		}
		return switchTo(SwitchToInterviewMsg{})

	case key.Matches(msg, BuilderKeys.Restart):
		if len(m.questions) == 0 {
			m.SetMessage("Add some questions first", true)
			return nil
		}
		return switchTo(SwitchToInterviewMsg{Restart: true})

	case key.Matches(msg, BuilderKeys.Export):
		if m.status != application.StatusEnded {
			m.SetMessage("No finished interview to export", true)
			return nil
		}
		return switchTo(SwitchToExportMsg{})

	case key.Matches(msg, BuilderKeys.Help):
		return switchTo(SwitchToHelpMsg{})
	}
	return nil
}

// Selected returns the question under the cursor
func (m *BuilderModel) Selected() *commands.QuestionView {
	i := m.paginator.Cursor()
	if i >= 0 && i < len(m.questions) {
		return &m.questions[i]
	}
	return nil
}

// SetSize updates the view dimensions and the page size
func (m *BuilderModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// each question takes its own line plus one per branch; assume two on average
	m.paginator.SetPageSize(max((height-builderChrome)/2, 3))
}

// View renders the builder
func (m *BuilderModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	v := NewViewBuilder().
		Title("Street Interview").
		Subtitle(m.statusLine())

	if len(m.questions) == 0 {
		v.Muted("No questions yet. Press n to add one or i to import a numbered list.")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		v.Raw(m.renderQuestion(m.questions[i], i == m.paginator.Cursor()))
	}

	if m.paginator.TotalPages() > 1 {
		v.BlankLine().Muted(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages()))
	}

	v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(BuilderKeys.Up, BuilderKeys.Down, BuilderKeys.New, BuilderKeys.Edit, BuilderKeys.Delete,
			BuilderKeys.Import, BuilderKeys.Start, BuilderKeys.Export, BuilderKeys.Help, BuilderKeys.Quit)

	return v.String()
}

func (m *BuilderModel) statusLine() string {
	n := len(m.questions)
	noun := "questions"
	if n == 1 {
		noun = "question"
	}
	switch m.status {
	case application.StatusActive:
		return fmt.Sprintf("%d %s • interview in progress (s to resume)", n, noun)
	case application.StatusEnded:
		return fmt.Sprintf("%d %s • interview finished (x to export)", n, noun)
	default:
		return fmt.Sprintf("%d %s", n, noun)
	}
}

func (m *BuilderModel) renderQuestion(q commands.QuestionView, selected bool) string {
	var b strings.Builder

	num := styles.QuestionNumber.Render(fmt.Sprintf("%3d. ", q.Position))
	text := styles.QuestionText.Render(q.Question.Text)
	if selected {
		text = styles.QuestionSelected.Render(q.Question.Text)
	}
	b.WriteString(num + text + "\n")

	for _, branch := range q.Branches {
		b.WriteString("       ")
		b.WriteString(RenderBranch(branch))
		b.WriteString("\n")
	}
	return b.String()
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
