package commands

import (
	"errors"
	"testing"

	"streetinterview/internal/application"
	"streetinterview/internal/domain"
)

func TestLibrary_DumpThenLoad(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo,
		domain.Question{ID: "q1", Text: "A", BranchingRules: domain.BranchRules{{Answer: "x", Target: domain.ContinueTo("q2")}}},
		domain.Question{ID: "q2", Text: "B"},
	)
	archive := &fakeArchive{}

	dump, err := NewDumpLibraryCommand(repo, archive, "lib.yaml").Execute(ctx)
	if err != nil || dump.Count != 2 {
		t.Fatalf("dump = %+v, %v", dump, err)
	}

	other := newTestRepo(t)
	seedQuestions(t, other, domain.Question{ID: "z", Text: "Z"})

	if _, err := NewLoadLibraryCommand(other, archive, "lib.yaml", false).Execute(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	stored, _ := other.ListQuestions()
	if len(stored) != 2 || stored[0].ID != "q1" {
		t.Errorf("replace load = %+v", stored)
	}
}

func TestLoadLibraryCommand_AppendRejectsDuplicates(t *testing.T) {
	repo := newTestRepo(t)
	seedQuestions(t, repo, domain.Question{ID: "q1", Text: "A"})
	archive := &fakeArchive{libraries: map[string][]domain.Question{
		"dup.yaml": {{ID: "q1", Text: "Again"}},
		"new.yaml": {{ID: "q9", Text: "New"}},
	}}

	_, err := NewLoadLibraryCommand(repo, archive, "dup.yaml", true).Execute(ctx)
	if !errors.Is(err, application.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	if _, err := NewLoadLibraryCommand(repo, archive, "new.yaml", true).Execute(ctx); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	stored, _ := repo.ListQuestions()
	if len(stored) != 2 || stored[1].ID != "q9" {
		t.Errorf("stored = %+v", stored)
	}
}

func TestLoadLibraryCommand_ReadFailure(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewLoadLibraryCommand(repo, &fakeArchive{}, "missing.yaml", false).Execute(ctx)
	if !errors.Is(err, application.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}
