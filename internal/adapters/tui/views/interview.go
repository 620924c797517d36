package views

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"streetinterview/internal/adapters/tui/styles"
	"streetinterview/internal/application"
	"streetinterview/internal/application/commands"
)

// InterviewKeyMap defines key bindings for the interview view
type InterviewKeyMap struct {
	Focus key.Binding
	Left  key.Binding
	Right key.Binding
	Pick  key.Binding
	Next  key.Binding
	Save  key.Binding
	End   key.Binding
	Back  key.Binding
}

var InterviewKeys = InterviewKeyMap{
	Focus: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "notes/answers"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "choose answer"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	Pick: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "answer"),
	),
	Next: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "next"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save note"),
	),
	End: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "end interview"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "pause"),
	),
}

// InterviewModel walks the respondent through the questions
type InterviewModel struct {
	ViewState
	svc          Services
	state        commands.InterviewState
	notes        textarea.Model
	selected     int
	answersFocus bool
	ready        bool
}

// NewInterviewModel creates a new interview view
func NewInterviewModel(svc Services) *InterviewModel {
	notes := textarea.New()
	notes.Placeholder = "What did they say?"
	notes.ShowLineNumbers = false
	notes.CharLimit = 0
	notes.SetHeight(6)

	return &InterviewModel{
		svc:   svc,
		notes: notes,
	}
}

type interviewStateMsg struct {
	result *commands.InterviewResult
}

// Open resumes the running interview, or starts a new one when there is
// none or restart is set.
func (m *InterviewModel) Open(restart bool) tea.Cmd {
	m.ready = false
	m.ClearMessage()
	return func() tea.Msg {
		ctx := m.svc.Context()
		if !restart {
			result, err := commands.NewCurrentQuestionCommand(m.svc.Repo).Execute(ctx)
			if err != nil {
				return errMsg{err}
			}
			if result.Status == application.StatusActive || result.Message != "" {
				return interviewStateMsg{result}
			}
		}
		result, err := commands.NewStartInterviewCommand(m.svc.Repo).Execute(ctx)
		if err != nil {
			return errMsg{err}
		}
		return interviewStateMsg{result}
	}
}

// Init initializes the interview view
func (m *InterviewModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the interview view
func (m *InterviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case interviewStateMsg:
		return m, m.apply(msg.result)

	case errMsg:
		if !m.ready || errors.Is(msg.err, application.ErrNoActiveSession) {
			return m, switchTo(SwitchToBuilderMsg{Message: msg.err.Error(), IsErr: true})
		}
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case noteSavedMsg:
		m.SetMessage("Note saved", false)
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if m.answersFocus {
		return m, nil
	}
	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

func (m *InterviewModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.ready {
		return nil, true
	}
	m.ClearMessage()

	switch {
	case key.Matches(msg, InterviewKeys.Back):
		return m.saveNote(SwitchToBuilderMsg{Message: "Interview paused"}), true

	case key.Matches(msg, InterviewKeys.Next):
		if len(m.state.Answers) > 0 && !m.answersFocus {
			m.setAnswersFocus(true)
			m.SetMessage("Choose an answer to continue", false)
			return nil, true
		}
		return m.advance(m.selectedAnswer()), true

	case key.Matches(msg, InterviewKeys.Save):
		return m.saveNote(noteSavedMsg{}), true

	case key.Matches(msg, InterviewKeys.End):
		return m.end(), true

	case key.Matches(msg, InterviewKeys.Focus):
		if len(m.state.Answers) > 0 {
			m.setAnswersFocus(!m.answersFocus)
		}
		return nil, true
	}

	if !m.answersFocus {
		return nil, false
	}

	switch {
	case key.Matches(msg, InterviewKeys.Left):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, InterviewKeys.Right):
		if m.selected < len(m.state.Answers)-1 {
			m.selected++
		}
	case key.Matches(msg, InterviewKeys.Pick):
		return m.advance(m.selectedAnswer()), true
	default:
		// 1-9 answers directly
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.state.Answers) {
			m.selected = n - 1
			return m.advance(m.selectedAnswer()), true
		}
	}
	return nil, true
}

func (m *InterviewModel) apply(result *commands.InterviewResult) tea.Cmd {
	switch result.Status {
	case application.StatusEnded:
		return switchTo(SwitchToExportMsg{Message: result.Message})
	case application.StatusIdle:
		return switchTo(SwitchToBuilderMsg{Message: result.Message})
	}

	m.ready = true
	m.state = result.InterviewState
	m.selected = 0
	m.notes.SetValue(m.state.Note)
	m.setAnswersFocus(false)
	if result.Message != "" && result.Step == nil {
		m.SetMessage(result.Message, false)
	}
	return textarea.Blink
}

func (m *InterviewModel) setAnswersFocus(on bool) {
	m.answersFocus = on
	if on {
		m.notes.Blur()
	} else {
		m.notes.Focus()
	}
}

func (m *InterviewModel) selectedAnswer() string {
	if m.selected >= 0 && m.selected < len(m.state.Answers) {
		return m.state.Answers[m.selected]
	}
	return ""
}

func (m *InterviewModel) advance(answer string) tea.Cmd {
	note := m.notes.Value()
	return func() tea.Msg {
		result, err := commands.NewAdvanceCommand(m.svc.Repo, answer, &note).Execute(m.svc.Context())
		if err != nil {
			return errMsg{err}
		}
		return interviewStateMsg{result}
	}
}

type noteSavedMsg struct{}

func (m *InterviewModel) saveNote(then tea.Msg) tea.Cmd {
	note := m.notes.Value()
	return func() tea.Msg {
		result, err := commands.NewRecordNoteCommand(m.svc.Repo, note).Execute(m.svc.Context())
		if err != nil {
			return errMsg{err}
		}
		if result.Status != application.StatusActive {
			return interviewStateMsg{result}
		}
		return then
	}
}

func (m *InterviewModel) end() tea.Cmd {
	note := m.notes.Value()
	return func() tea.Msg {
		result, err := commands.NewEndInterviewCommand(m.svc.Repo, &note).Execute(m.svc.Context())
		if err != nil {
			return errMsg{err}
		}
		return interviewStateMsg{result}
	}
}

// SetSize updates the view dimensions
func (m *InterviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.notes.SetWidth(max(width-8, 20))
	m.notes.SetHeight(max(min(height-16, 12), 3))
}

// View renders the interview view
func (m *InterviewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	v := NewViewBuilder().
		Title("Interview").
		Line(styles.Progress.Render(fmt.Sprintf("Question %d of %d", m.state.Position, m.state.Total))).
		BlankLine()

	if m.state.Question != nil {
		v.Line(styles.Prompt.Width(max(m.Width-8, 20)).Render(m.state.Question.Text)).BlankLine()
	}

	label := "Notes"
	if !m.answersFocus {
		label += " " + styles.MutedText.Render("(typing)")
	}
	v.Line(styles.InputLabel.Render(label)).
		Line(m.notes.View()).
		BlankLine()

	if len(m.state.Answers) > 0 {
		v.Line(styles.InputLabel.Render("Answer")).
			Line(m.renderAnswers()).
			BlankLine()
	}

	pick := InterviewKeys.Pick
	pick.SetEnabled(m.answersFocus)
	choose := InterviewKeys.Left
	choose.SetEnabled(m.answersFocus)
	focus := InterviewKeys.Focus
	focus.SetEnabled(len(m.state.Answers) > 0)

	return v.
		Message(m.Message, m.MessageErr).
		Help(focus, choose, pick, InterviewKeys.Next, InterviewKeys.Save, InterviewKeys.End, InterviewKeys.Back).
		String()
}

func (m *InterviewModel) renderAnswers() string {
	buttons := make([]string, len(m.state.Answers))
	for i, answer := range m.state.Answers {
		text := answer
		if i < 9 {
			text = fmt.Sprintf("%d %s", i+1, answer)
		}
		if m.answersFocus && i == m.selected {
			buttons[i] = styles.AnswerSelected.Render(text)
		} else {
			buttons[i] = styles.AnswerButton.Render(text)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	if !m.answersFocus {
		row += "\n" + styles.MutedText.Render("tab to choose an answer")
	}
	return row
}
