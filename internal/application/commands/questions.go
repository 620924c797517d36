package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"streetinterview/internal/application"
	"streetinterview/internal/domain"
	"streetinterview/internal/ports"
)

// QuestionView is a question with its builder position and resolved rule labels
type QuestionView struct {
	Position int
	Question domain.Question
	Branches []domain.BranchSummary
}

// ListQuestionsCommand lists the question store in order
type ListQuestionsCommand struct {
	repo ports.QuestionRepository
}

// NewListQuestionsCommand creates a new ListQuestionsCommand
func NewListQuestionsCommand(repo ports.QuestionRepository) *ListQuestionsCommand {
	return &ListQuestionsCommand{repo: repo}
}

// Execute runs the list questions command
func (c *ListQuestionsCommand) Execute(ctx context.Context) ([]QuestionView, error) {
	questions, err := c.repo.ListQuestions()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{
			Position: i + 1,
			Question: q,
			Branches: domain.Summarize(q, questions),
		}
	}
	return views, nil
}

// AddQuestionResult contains the result of adding a question
type AddQuestionResult struct {
	Question domain.Question
	Position int
	Message  string
}

// AddQuestionCommand appends a question to the store
type AddQuestionCommand struct {
	repo  ports.QuestionRepository
	Text  string
	Rules domain.BranchRules
}

// NewAddQuestionCommand creates a new AddQuestionCommand
func NewAddQuestionCommand(repo ports.QuestionRepository, text string, rules domain.BranchRules) *AddQuestionCommand {
	return &AddQuestionCommand{
		repo:  repo,
		Text:  text,
		Rules: rules,
	}
}

// Validate checks if the add operation is valid
func (c *AddQuestionCommand) Validate() error {
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	return application.ValidateRuleAnswers(c.Rules)
}

// Execute runs the add question command
func (c *AddQuestionCommand) Execute(ctx context.Context) (*AddQuestionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	questions, err := c.repo.ListQuestions()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	q := domain.NewQuestion(c.Text, c.Rules)
	questions = append(questions, q)
	if err := c.repo.SaveQuestions(questions); err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	log.FromContext(ctx).Debug("question added", "id", q.ID, "rules", len(q.BranchingRules))

	return &AddQuestionResult{
		Question: q,
		Position: len(questions),
		Message:  fmt.Sprintf("Added question %d: %s", len(questions), domain.Truncate(q.Text, domain.ChoiceLabelWidth)),
	}, nil
}

// UpdateQuestionResult contains the result of updating a question
type UpdateQuestionResult struct {
	Question domain.Question
	Message  string
}

// UpdateQuestionCommand replaces the text and the full rule set of a question
type UpdateQuestionCommand struct {
	repo       ports.QuestionRepository
	QuestionID string
	Text       string
	Rules      domain.BranchRules
}

// NewUpdateQuestionCommand creates a new UpdateQuestionCommand
func NewUpdateQuestionCommand(repo ports.QuestionRepository, questionID, text string, rules domain.BranchRules) *UpdateQuestionCommand {
	return &UpdateQuestionCommand{
		repo:       repo,
		QuestionID: questionID,
		Text:       text,
		Rules:      rules,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateQuestionCommand) Validate() error {
	if err := application.ValidateRequired("questionID", c.QuestionID); err != nil {
		return err
	}
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	return application.ValidateRuleAnswers(c.Rules)
}

// Execute runs the update question command
func (c *UpdateQuestionCommand) Execute(ctx context.Context) (*UpdateQuestionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	questions, err := c.repo.ListQuestions()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	idx := domain.IndexOf(questions, c.QuestionID)
	if idx < 0 {
		return nil, fmt.Errorf("question %s: %w", c.QuestionID, application.ErrNotFound)
	}

	questions[idx].Text = strings.TrimSpace(c.Text)
	questions[idx].BranchingRules = c.Rules.Clone()
	if err := c.repo.SaveQuestions(questions); err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	log.FromContext(ctx).Debug("question updated", "id", c.QuestionID)

	return &UpdateQuestionResult{
		Question: questions[idx],
		Message:  fmt.Sprintf("Updated question %d", idx+1),
	}, nil
}

// DeleteQuestionResult contains the result of deleting a question
type DeleteQuestionResult struct {
	Question domain.Question
	Message  string
}

// DeleteQuestionCommand removes a question. Rules elsewhere that point at it
// are left alone and resolve to the end of the interview.
type DeleteQuestionCommand struct {
	repo       ports.QuestionRepository
	QuestionID string
}

// NewDeleteQuestionCommand creates a new DeleteQuestionCommand
func NewDeleteQuestionCommand(repo ports.QuestionRepository, questionID string) *DeleteQuestionCommand {
	return &DeleteQuestionCommand{repo: repo, QuestionID: questionID}
}

// Validate checks if the delete operation is valid
func (c *DeleteQuestionCommand) Validate() error {
	return application.ValidateRequired("questionID", c.QuestionID)
}

// Execute runs the delete question command
func (c *DeleteQuestionCommand) Execute(ctx context.Context) (*DeleteQuestionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	questions, err := c.repo.ListQuestions()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	idx := domain.IndexOf(questions, c.QuestionID)
	if idx < 0 {
		return nil, fmt.Errorf("question %s: %w", c.QuestionID, application.ErrNotFound)
	}

	removed := questions[idx]
	questions = slices.Delete(questions, idx, idx+1)
	if err := c.repo.SaveQuestions(questions); err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	log.FromContext(ctx).Debug("question deleted", "id", removed.ID)

	return &DeleteQuestionResult{
		Question: removed,
		Message:  fmt.Sprintf("Deleted: %s", domain.Truncate(removed.Text, domain.ChoiceLabelWidth)),
	}, nil
}

// ResolveQuestionID accepts a question id or a 1-based position and returns the id.
func ResolveQuestionID(repo ports.QuestionRepository, ref string) (string, error) {
	questions, err := repo.ListQuestions()
	if err != nil {
		return "", fmt.Errorf("failed to load questions: %w", err)
	}
	target := application.ResolveTarget(ref, questions)
	if target.Ends() {
		return "", &application.ValidationError{Field: "questionID", Message: "expected a question id or number"}
	}
	if _, ok := domain.Find(questions, target.QuestionID); !ok {
		return "", fmt.Errorf("question %s: %w", ref, application.ErrNotFound)
	}
	return target.QuestionID, nil
}
