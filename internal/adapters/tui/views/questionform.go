package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"streetinterview/internal/adapters/tui/styles"
	"streetinterview/internal/application"
	"streetinterview/internal/application/commands"
)

const (
	fieldText = iota
	fieldRules
)

// QuestionFormModel adds a question or edits an existing one
type QuestionFormModel struct {
	ViewState
	svc        Services
	form       *InputForm
	questionID string
	questions  []application.Question
}

// NewQuestionFormModel creates a new question form
func NewQuestionFormModel(svc Services) *QuestionFormModel {
	text := NewInputField("Question", "What do you think about...?", 500)
	rules := NewInputField("Branches", "yes=2, no=end", 500)
	rules.Hint = "answer=target, comma separated; target is a number from the list below or end"

	return &QuestionFormModel{
		svc:  svc,
		form: NewInputForm(text, rules),
	}
}

type formLoadedMsg struct {
	questions []application.Question
}

// Open resets the form for a new question, or for editing questionID
func (m *QuestionFormModel) Open(questionID string) tea.Cmd {
	m.questionID = questionID
	m.questions = nil
	m.ClearMessage()
	m.form.Reset()
	return tea.Batch(m.form.Init(), m.load)
}

func (m *QuestionFormModel) load() tea.Msg {
	questions, err := m.svc.Repo.ListQuestions()
	if err != nil {
		return errMsg{err}
	}
	return formLoadedMsg{questions: questions}
}

// Editing reports whether the form edits an existing question
func (m *QuestionFormModel) Editing() bool {
	return m.questionID != ""
}

// Init initializes the form
func (m *QuestionFormModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the form
func (m *QuestionFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case formLoadedMsg:
		m.questions = msg.questions
		if m.Editing() {
			q, ok := findQuestion(msg.questions, m.questionID)
			if !ok {
				return m, switchTo(SwitchToBuilderMsg{Message: "Question no longer exists", IsErr: true})
			}
			m.form.SetValue(fieldText, q.Text)
			m.form.SetValue(fieldRules, strings.Join(application.FormatRuleSpecs(q.BranchingRules, msg.questions), ", "))
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, switchTo(SwitchToBuilderMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.save
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *QuestionFormModel) save() tea.Msg {
	rules, err := application.ParseRuleSpecs(SplitRuleSpecs(m.form.Value(fieldRules)), m.questions)
	if err != nil {
		return errMsg{err}
	}

	ctx := m.svc.Context()
	text := m.form.Value(fieldText)

	if m.Editing() {
		result, err := commands.NewUpdateQuestionCommand(m.svc.Repo, m.questionID, text, rules).Execute(ctx)
		if err != nil {
			return errMsg{err}
		}
		return SwitchToBuilderMsg{Message: result.Message}
	}

	result, err := commands.NewAddQuestionCommand(m.svc.Repo, text, rules).Execute(ctx)
	if err != nil {
		return errMsg{err}
	}
	return SwitchToBuilderMsg{Message: result.Message}
}

// SplitRuleSpecs splits "a=1, b=end" into its non-blank specs
func SplitRuleSpecs(s string) []string {
	var specs []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			specs = append(specs, part)
		}
	}
	return specs
}

// View renders the form
func (m *QuestionFormModel) View() string {
	title := "New Question"
	if m.Editing() {
		title = "Edit Question"
	}

	v := NewViewBuilder().
		Title(title).
		Line(m.form.RenderField(fieldText)).
		BlankLine().
		Line(m.form.RenderField(fieldRules)).
		BlankLine()

	if choices := m.renderChoices(); choices != "" {
		v.Line(styles.InputLabel.Render("Targets")).Raw(choices).BlankLine()
	}

	return v.
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("save")).
		String()
}

func (m *QuestionFormModel) renderChoices() string {
	positions := make(map[string]int, len(m.questions))
	for i, q := range m.questions {
		positions[q.ID] = i + 1
	}

	var b strings.Builder
	for _, choice := range application.TargetChoices(m.questions, m.questionID) {
		ref := "end"
		if !choice.Target.Ends() {
			ref = strconv.Itoa(positions[choice.Target.QuestionID])
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styles.HelpKey.Render(fmt.Sprintf("%4s", ref)),
			choice.Label))
	}
	return b.String()
}

// SetSize updates the view dimensions
func (m *QuestionFormModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.form.SetWidth(width - 10)
}

func findQuestion(questions []application.Question, id string) (application.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return application.Question{}, false
}
