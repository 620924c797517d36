package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"streetinterview/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToBuilderMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Street Interview Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Build a branching question list, then walk through it with a respondent"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Questions"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous/next page"))
	b.WriteString(helpLine("n", "New question"))
	b.WriteString(helpLine("e / Enter", "Edit question and branches"))
	b.WriteString(helpLine("d", "Delete question"))
	b.WriteString(helpLine("i", "Import a numbered list (.txt, .md)"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Interview"))
	b.WriteString("\n")
	b.WriteString(helpLine("s", "Start or resume"))
	b.WriteString(helpLine("r", "Start over"))
	b.WriteString(helpLine("tab", "Switch between notes and answers"))
	b.WriteString(helpLine("1-9 / Enter", "Pick an answer"))
	b.WriteString(helpLine("Ctrl+N", "Next question"))
	b.WriteString(helpLine("Ctrl+X", "End interview"))
	b.WriteString(helpLine("Esc", "Pause"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Transcript"))
	b.WriteString("\n")
	b.WriteString(helpLine("x", "Show the finished transcript"))
	b.WriteString(helpLine("s / c / o", "Save, copy, open in editor"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Branches"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  yes=3, no=end     answer \"yes\" goes to question 3, \"no\" ends"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  (empty)           continue with the next question in the list"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
