package ports

import "streetinterview/internal/domain"

// TextFiles reads and writes plain text documents on behalf of the user
type TextFiles interface {
	ReadText(path string) (string, error)
	// WriteText creates parent directories as needed and returns the absolute path written
	WriteText(path, content string) (string, error)
}

// LibraryArchive reads and writes question backups
type LibraryArchive interface {
	ReadLibrary(path string) ([]domain.Question, error)
	WriteLibrary(path string, questions []domain.Question) error
}

// Clipboard copies text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
