package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"streetinterview/internal/adapters/memory"
	"streetinterview/internal/adapters/storage"
	"streetinterview/internal/domain"
	"streetinterview/internal/logging"
)

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func newTestServices(t *testing.T, questions ...domain.Question) (Services, *storage.Repository) {
	t.Helper()
	repo := storage.NewRepository(memory.NewStore())
	if len(questions) > 0 {
		if err := repo.SaveQuestions(questions); err != nil {
			t.Fatalf("failed to seed questions: %v", err)
		}
	}
	return Services{
		Repo:      repo,
		Clipboard: &fakeClipboard{},
		ExportDir: t.TempDir(),
		Logger:    logging.Discard(),
	}, repo
}

func question(id, text string, rules ...string) domain.Question {
	q := domain.Question{ID: id, Text: text}
	for _, spec := range rules {
		rule, err := domain.ParseBranchRule(spec)
		if err != nil {
			panic(err)
		}
		q.BranchingRules.Set(rule.Answer, rule.Target)
	}
	return q
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes a command and returns its message, or nil
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
