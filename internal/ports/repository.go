package ports

import "streetinterview/internal/domain"

// QuestionRepository stores the authored question list in order
type QuestionRepository interface {
	ListQuestions() ([]domain.Question, error)
	SaveQuestions(questions []domain.Question) error
}

// SessionRepository stores the single interview session
type SessionRepository interface {
	// LoadSession restores the persisted session; an empty store yields an idle one
	LoadSession() (*domain.Session, error)
	SaveSession(session *domain.Session) error
}

// Repository is the full persistence surface used by commands
type Repository interface {
	QuestionRepository
	SessionRepository
}
