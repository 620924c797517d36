package commands

import (
	"errors"
	"testing"

	"streetinterview/internal/application"
	"streetinterview/internal/domain"
)

func TestAddQuestionCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		rules   domain.BranchRules
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid question",
			text: "Where are you from?",
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
			errMsg:  "question text is required",
		},
		{
			name:    "whitespace text",
			text:    "   ",
			wantErr: true,
			errMsg:  "question text is required",
		},
		{
			name:    "blank answer category",
			text:    "Do you cycle?",
			rules:   domain.BranchRules{{Answer: " ", Target: domain.EndInterview()}},
			wantErr: true,
			errMsg:  "answer category is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &AddQuestionCommand{Text: tt.text, Rules: tt.rules}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddQuestionCommand_AppendsAndPersists(t *testing.T) {
	repo := newTestRepo(t)

	first, err := NewAddQuestionCommand(repo, "  First?  ", nil).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	second, err := NewAddQuestionCommand(repo, "Second?", nil).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if first.Question.Text != "First?" {
		t.Errorf("text = %q, want trimmed", first.Question.Text)
	}
	if second.Position != 2 || first.Question.ID == second.Question.ID {
		t.Errorf("unexpected results: %+v %+v", first, second)
	}

	stored, _ := repo.ListQuestions()
	if len(stored) != 2 || stored[1].ID != second.Question.ID {
		t.Errorf("stored = %+v", stored)
	}
}

func TestAddQuestionCommand_EmptyTextLeavesStoreAlone(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewAddQuestionCommand(repo, " ", nil).Execute(ctx)
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	stored, _ := repo.ListQuestions()
	if len(stored) != 0 {
		t.Errorf("store should be empty, got %+v", stored)
	}
}

func TestUpdateQuestionCommand(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo,
		domain.Question{ID: "q1", Text: "Old", BranchingRules: domain.BranchRules{{Answer: "a", Target: domain.EndInterview()}}},
		domain.Question{ID: "q2", Text: "Other"},
	)

	newRules := domain.BranchRules{{Answer: "yes", Target: domain.ContinueTo("q2")}}
	result, err := NewUpdateQuestionCommand(repo, "q1", "New", newRules).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Question.Text != "New" {
		t.Errorf("text = %q", result.Question.Text)
	}

	stored, _ := repo.ListQuestions()
	if len(stored[0].BranchingRules) != 1 || stored[0].BranchingRules[0].Answer != "yes" {
		t.Errorf("rules should be fully replaced, got %+v", stored[0].BranchingRules)
	}
	if stored[0].ID != "q1" {
		t.Errorf("id changed to %s", stored[0].ID)
	}
}

func TestUpdateQuestionCommand_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewUpdateQuestionCommand(repo, "missing", "Text", nil).Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteQuestionCommand_DoesNotCascade(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo,
		domain.Question{ID: "q1", Text: "Start", BranchingRules: domain.BranchRules{{Answer: "yes", Target: domain.ContinueTo("q2")}}},
		domain.Question{ID: "q2", Text: "Follow-up"},
	)

	if _, err := NewDeleteQuestionCommand(repo, "q2").Execute(ctx); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	views, err := NewListQuestionsCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("views = %+v", views)
	}
	if target, _ := views[0].Question.BranchingRules.Lookup("yes"); target.QuestionID != "q2" {
		t.Errorf("rule should still point at q2, got %+v", target)
	}
	if views[0].Branches[0].Label != domain.UnknownLabel {
		t.Errorf("dangling label = %q", views[0].Branches[0].Label)
	}
}

func TestDeleteQuestionCommand_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewDeleteQuestionCommand(repo, "missing").Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListQuestionsCommand_Labels(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo,
		domain.Question{ID: "q1", Text: "Do you cycle?", BranchingRules: domain.BranchRules{
			{Answer: "yes", Target: domain.ContinueTo("q2")},
			{Answer: "no", Target: domain.EndInterview()},
		}},
		domain.Question{ID: "q2", Text: "How often?"},
	)

	views, err := NewListQuestionsCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if views[1].Position != 2 {
		t.Errorf("position = %d", views[1].Position)
	}
	got := views[0].Branches
	if got[0].Label != "How often?" || got[1].Label != domain.EndLabel {
		t.Errorf("branches = %+v", got)
	}
}

func TestResolveQuestionID(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, domain.Question{ID: "q1", Text: "A"}, domain.Question{ID: "q2", Text: "B"})

	tests := []struct {
		ref     string
		want    string
		wantErr error
	}{
		{ref: "q2", want: "q2"},
		{ref: "1", want: "q1"},
		{ref: "3", wantErr: application.ErrNotFound},
		{ref: "nope", wantErr: application.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ResolveQuestionID(repo, tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ResolveQuestionID(%q) = %q, %v", tt.ref, got, err)
			}
		})
	}
}
