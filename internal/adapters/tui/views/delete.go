package views

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"streetinterview/internal/adapters/tui/styles"
	"streetinterview/internal/application"
	"streetinterview/internal/application/commands"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	svc Services
	// rules in other questions that point at the target
	incoming int
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(svc Services) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		svc:               svc,
	}
}

// Open loads the question to delete
func (m *DeleteModel) Open(questionID string) tea.Cmd {
	m.SetTarget(nil, 0)
	m.incoming = 0
	return func() tea.Msg {
		questions, err := m.svc.Repo.ListQuestions()
		if err != nil {
			return errMsg{err}
		}
		for i, q := range questions {
			if q.ID == questionID {
				return deleteTargetMsg{question: q, position: i + 1, incoming: countIncoming(questions, q.ID)}
			}
		}
		return errMsg{application.ErrNotFound}
	}
}

type deleteTargetMsg struct {
	question application.Question
	position int
	incoming int
}

func countIncoming(questions []application.Question, id string) int {
	n := 0
	for _, q := range questions {
		for _, rule := range q.BranchingRules {
			if !rule.Target.Ends() && rule.Target.QuestionID == id {
				n++
			}
		}
	}
	return n
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case deleteTargetMsg:
		m.SetTarget(&msg.question, msg.position)
		m.incoming = msg.incoming
		return m, nil

	case errMsg:
		if errors.Is(msg.err, application.ErrNotFound) {
			return m, switchTo(SwitchToBuilderMsg{Message: "Question no longer exists", IsErr: true})
		}
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doDelete() },
			func() tea.Msg { return SwitchToBuilderMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	if m.Target == nil {
		return errMsg{errors.New("no question selected")}
	}

	result, err := commands.NewDeleteQuestionCommand(m.svc.Repo, m.Target.ID).Execute(m.svc.Context())
	if err != nil {
		return errMsg{err}
	}
	return SwitchToBuilderMsg{Message: result.Message}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	v := NewViewBuilder().
		Title("Delete Question").
		Line(styles.ErrorMsg.Render("This action cannot be undone!")).
		BlankLine().
		Line(RenderTargetInfo(m.Target, m.Position, "Delete")).
		BlankLine()

	switch m.incoming {
	case 0:
	case 1:
		v.Muted("  1 branch points here and will end the interview instead.").BlankLine()
	default:
		v.Muted(fmt.Sprintf("  %d branches point here and will end the interview instead.", m.incoming)).BlankLine()
	}

	return v.
		Message(m.Message, m.MessageErr).
		Raw(RenderConfirmPrompt("Are you sure?")).
		String()
}
