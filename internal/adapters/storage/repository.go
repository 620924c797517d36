// Package storage maps questions and the interview session onto a key-value store.
package storage

import (
	"encoding/json"
	"fmt"

	"streetinterview/internal/domain"
	"streetinterview/internal/ports"
)

// Storage keys
const (
	KeyQuestions       = "questions"
	KeyEntries         = "interview-entries"
	KeyCurrentQuestion = "interview-current-question"
)

// Repository implements ports.Repository on any ports.KeyValueStore
type Repository struct {
	store ports.KeyValueStore
}

var _ ports.Repository = (*Repository)(nil)

// NewRepository wraps a key-value store
func NewRepository(store ports.KeyValueStore) *Repository {
	return &Repository{store: store}
}

// Close closes the underlying store
func (r *Repository) Close() error {
	return r.store.Close()
}

// Location names where the underlying store keeps its data
func (r *Repository) Location() string {
	return r.store.Location()
}

// ListQuestions returns the stored questions in order; nothing stored is an empty list
func (r *Repository) ListQuestions() ([]domain.Question, error) {
	var questions []domain.Question
	if _, err := r.getJSON(KeyQuestions, &questions); err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	return questions, nil
}

// SaveQuestions replaces the stored question list
func (r *Repository) SaveQuestions(questions []domain.Question) error {
	if questions == nil {
		questions = []domain.Question{}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	return r.store.Put(KeyQuestions, data)
}

// LoadSession restores the session; its status follows from which keys are present
func (r *Repository) LoadSession() (*domain.Session, error) {
	var entries []domain.InterviewEntry
	if _, err := r.getJSON(KeyEntries, &entries); err != nil {
		return nil, err
	}

	var current string
	if _, err := r.getJSON(KeyCurrentQuestion, &current); err != nil {
		return nil, err
	}

	return domain.RestoreSession(current, entries), nil
}

// SaveSession writes the entries and current question together
func (r *Repository) SaveSession(session *domain.Session) error {
	entries := session.Entries
	if entries == nil {
		entries = []domain.InterviewEntry{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	var currentJSON []byte
	if session.CurrentQuestionID != "" {
		if currentJSON, err = json.Marshal(session.CurrentQuestionID); err != nil {
			return fmt.Errorf("encode current question: %w", err)
		}
	}

	if batch, ok := r.store.(ports.BatchStore); ok {
		return saveSessionTx(batch, entriesJSON, currentJSON)
	}

	if err := r.store.Put(KeyEntries, entriesJSON); err != nil {
		return err
	}
	if currentJSON == nil {
		return r.store.Delete(KeyCurrentQuestion)
	}
	return r.store.Put(KeyCurrentQuestion, currentJSON)
}

func saveSessionTx(store ports.BatchStore, entriesJSON, currentJSON []byte) error {
	tx, err := store.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Put(KeyEntries, entriesJSON); err != nil {
		return err
	}
	if currentJSON == nil {
		err = tx.Delete(KeyCurrentQuestion)
	} else {
		err = tx.Put(KeyCurrentQuestion, currentJSON)
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *Repository) getJSON(key string, v any) (bool, error) {
	data, ok, err := r.store.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}
