package commands

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"streetinterview/internal/adapters/memory"
	"streetinterview/internal/adapters/storage"
	"streetinterview/internal/domain"
)

func newTestRepo(t *testing.T) *storage.Repository {
	t.Helper()
	return storage.NewRepository(memory.NewStore())
}

func seedQuestions(t *testing.T, repo *storage.Repository, questions ...domain.Question) {
	t.Helper()
	if err := repo.SaveQuestions(questions); err != nil {
		t.Fatalf("failed to seed questions: %v", err)
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func ptr(s string) *string { return &s }

var ctx = context.Background()

// fakeFiles is an in-memory ports.TextFiles
type fakeFiles struct {
	files    map[string]string
	reads    int
	writeErr error
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{files: make(map[string]string)}
}

func (f *fakeFiles) ReadText(path string) (string, error) {
	f.reads++
	content, ok := f.files[path]
	if !ok {
		return "", fs.ErrNotExist
	}
	return content, nil
}

func (f *fakeFiles) WriteText(path, content string) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	f.files[path] = content
	return path, nil
}

// fakeArchive is an in-memory ports.LibraryArchive
type fakeArchive struct {
	libraries map[string][]domain.Question
}

func (a *fakeArchive) ReadLibrary(path string) ([]domain.Question, error) {
	questions, ok := a.libraries[path]
	if !ok {
		return nil, errors.New("no such library")
	}
	return questions, nil
}

func (a *fakeArchive) WriteLibrary(path string, questions []domain.Question) error {
	if a.libraries == nil {
		a.libraries = make(map[string][]domain.Question)
	}
	a.libraries[path] = questions
	return nil
}
