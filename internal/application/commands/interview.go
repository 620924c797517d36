package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"streetinterview/internal/application"
	"streetinterview/internal/domain"
	"streetinterview/internal/ports"
)

// NothingAnsweredMessage is shown when an interview ends with no notes
const NothingAnsweredMessage = "No questions were answered. Interview data not saved."

// InterviewState is a display-ready snapshot of the session
type InterviewState struct {
	Status     domain.Status
	Question   *domain.Question
	Position   int // 1-based position of Question in the store
	Total      int
	Note       string
	Answers    []string // answer categories; empty means a single "next"
	Transcript []domain.InterviewEntry
}

func snapshot(session *domain.Session, questions []domain.Question) InterviewState {
	state := InterviewState{
		Status:     session.Status,
		Total:      len(questions),
		Transcript: session.Transcript(),
	}
	if q, ok := session.Current(questions); ok {
		state.Question = &q
		state.Position = domain.IndexOf(questions, q.ID) + 1
		state.Answers = q.BranchingRules.Answers()
		if entry, ok := session.Entry(q.ID); ok {
			state.Note = entry.Notes
		}
	}
	return state
}

// interviewCommand loads the store and session for every interview command
type interviewCommand struct {
	repo ports.Repository
}

func (c interviewCommand) load() ([]domain.Question, *domain.Session, error) {
	questions, err := c.repo.ListQuestions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load questions: %w", err)
	}
	session, err := c.repo.LoadSession()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load interview: %w", err)
	}
	return questions, session, nil
}

func (c interviewCommand) save(session *domain.Session) error {
	if err := c.repo.SaveSession(session); err != nil {
		return fmt.Errorf("failed to save interview: %w", err)
	}
	return nil
}

// finish ends the session and reports the outcome. Nothing answered is not an error.
func (c interviewCommand) finish(ctx context.Context, session *domain.Session) (string, error) {
	entries, err := session.End()
	if errors.Is(err, domain.ErrNothingToExport) {
		log.FromContext(ctx).Info("interview ended without answers")
		return NothingAnsweredMessage, c.save(session)
	}
	if err != nil {
		return "", err
	}
	log.FromContext(ctx).Info("interview ended", "answered", len(entries))
	return fmt.Sprintf("Interview complete: %d answered", len(entries)), c.save(session)
}

// InterviewResult is returned by every interview command
type InterviewResult struct {
	InterviewState
	Step    *domain.Step
	Message string
}

// StartInterviewCommand starts a fresh interview at the first question,
// discarding any previous entries.
type StartInterviewCommand struct {
	interviewCommand
}

// NewStartInterviewCommand creates a new StartInterviewCommand
func NewStartInterviewCommand(repo ports.Repository) *StartInterviewCommand {
	return &StartInterviewCommand{interviewCommand{repo: repo}}
}

// Execute runs the start interview command
func (c *StartInterviewCommand) Execute(ctx context.Context) (*InterviewResult, error) {
	questions, session, err := c.load()
	if err != nil {
		return nil, err
	}

	discarded := len(session.Entries)
	if err := session.Start(questions); err != nil {
		return nil, err
	}
	if err := c.save(session); err != nil {
		return nil, err
	}

	log.FromContext(ctx).Info("interview started", "questions", len(questions), "discarded", discarded)

	msg := "Interview started"
	if discarded > 0 {
		msg = fmt.Sprintf("Interview restarted (%d previous entr%s cleared)", discarded, pluralY(discarded))
	}
	return &InterviewResult{InterviewState: snapshot(session, questions), Message: msg}, nil
}

// CurrentQuestionCommand shows the session. A current question that no longer
// exists ends the interview on the spot.
type CurrentQuestionCommand struct {
	interviewCommand
}

// NewCurrentQuestionCommand creates a new CurrentQuestionCommand
func NewCurrentQuestionCommand(repo ports.Repository) *CurrentQuestionCommand {
	return &CurrentQuestionCommand{interviewCommand{repo: repo}}
}

// Execute runs the current question command
func (c *CurrentQuestionCommand) Execute(ctx context.Context) (*InterviewResult, error) {
	questions, session, err := c.load()
	if err != nil {
		return nil, err
	}

	result := &InterviewResult{}
	if session.Status == domain.StatusActive {
		if _, ok := session.Current(questions); !ok {
			log.FromContext(ctx).Warn("current question no longer exists", "id", session.CurrentQuestionID)
			if result.Message, err = c.finish(ctx, session); err != nil {
				return nil, err
			}
		}
	}

	result.InterviewState = snapshot(session, questions)
	return result, nil
}

// RecordNoteCommand saves the note for the current question. When that
// question has been deleted the note is dropped and the interview ends.
type RecordNoteCommand struct {
	interviewCommand
	Note string
}

// NewRecordNoteCommand creates a new RecordNoteCommand
func NewRecordNoteCommand(repo ports.Repository, note string) *RecordNoteCommand {
	return &RecordNoteCommand{interviewCommand: interviewCommand{repo: repo}, Note: note}
}

// Execute runs the record note command
func (c *RecordNoteCommand) Execute(ctx context.Context) (*InterviewResult, error) {
	questions, session, err := c.load()
	if err != nil {
		return nil, err
	}

	if session.Status == domain.StatusActive && session.CurrentQuestionID != "" {
		if _, ok := session.Current(questions); !ok {
			log.FromContext(ctx).Warn("current question no longer exists, note dropped", "id", session.CurrentQuestionID)
			result := &InterviewResult{}
			if result.Message, err = c.finish(ctx, session); err != nil {
				return nil, err
			}
			result.InterviewState = snapshot(session, questions)
			return result, nil
		}
	}

	if err := session.RecordNote(questions, c.Note); err != nil {
		return nil, err
	}
	if err := c.save(session); err != nil {
		return nil, err
	}

	log.FromContext(ctx).Debug("note recorded", "question", session.CurrentQuestionID)

	return &InterviewResult{InterviewState: snapshot(session, questions), Message: "Note saved"}, nil
}

// AdvanceCommand records the pending note and moves past the current question.
// Reaching the end finishes the interview in the same call.
type AdvanceCommand struct {
	interviewCommand
	Answer string
	Note   *string
}

// NewAdvanceCommand creates a new AdvanceCommand. A nil note keeps any note already saved.
func NewAdvanceCommand(repo ports.Repository, answer string, note *string) *AdvanceCommand {
	return &AdvanceCommand{
		interviewCommand: interviewCommand{repo: repo},
		Answer:           answer,
		Note:             note,
	}
}

// Execute runs the advance command
func (c *AdvanceCommand) Execute(ctx context.Context) (*InterviewResult, error) {
	questions, session, err := c.load()
	if err != nil {
		return nil, err
	}

	step, err := session.Advance(questions, c.Answer, c.Note)
	if err != nil {
		return nil, err
	}
	log.FromContext(ctx).Debug("advanced", "step", step.Kind, "next", step.QuestionID)

	result := &InterviewResult{Step: &step}
	switch {
	case step.Terminal():
		if result.Message, err = c.finish(ctx, session); err != nil {
			return nil, err
		}
	default:
		if err := c.save(session); err != nil {
			return nil, err
		}
		if _, ok := session.Current(questions); !ok {
			// Continued to a deleted question: showing it would end the interview, so end it here.
			if result.Message, err = c.finish(ctx, session); err != nil {
				return nil, err
			}
		}
	}

	result.InterviewState = snapshot(session, questions)
	return result, nil
}

// EndInterviewCommand ends the interview early, optionally saving a last note
type EndInterviewCommand struct {
	interviewCommand
	Note *string
}

// NewEndInterviewCommand creates a new EndInterviewCommand
func NewEndInterviewCommand(repo ports.Repository, note *string) *EndInterviewCommand {
	return &EndInterviewCommand{interviewCommand: interviewCommand{repo: repo}, Note: note}
}

// Execute runs the end interview command
func (c *EndInterviewCommand) Execute(ctx context.Context) (*InterviewResult, error) {
	questions, session, err := c.load()
	if err != nil {
		return nil, err
	}
	if session.Status != domain.StatusActive {
		return nil, application.ErrNoActiveSession
	}

	if _, ok := session.Current(questions); ok && c.Note != nil {
		if err := session.RecordNote(questions, *c.Note); err != nil {
			return nil, err
		}
	}

	result := &InterviewResult{}
	if result.Message, err = c.finish(ctx, session); err != nil {
		return nil, err
	}
	result.InterviewState = snapshot(session, questions)
	return result, nil
}

// TranscriptResult contains the exported entries of the last finished interview
type TranscriptResult struct {
	Entries []domain.InterviewEntry
	Text    string
}

// TranscriptCommand renders the transcript of an ended interview
type TranscriptCommand struct {
	repo ports.SessionRepository
}

// NewTranscriptCommand creates a new TranscriptCommand
func NewTranscriptCommand(repo ports.SessionRepository) *TranscriptCommand {
	return &TranscriptCommand{repo: repo}
}

// Execute runs the transcript command. ErrNothingToExport means there is no finished interview.
func (c *TranscriptCommand) Execute(ctx context.Context) (*TranscriptResult, error) {
	session, err := c.repo.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("failed to load interview: %w", err)
	}
	entries := session.Transcript()
	if len(entries) == 0 {
		return nil, application.ErrNothingToExport
	}
	return &TranscriptResult{Entries: entries, Text: domain.RenderTranscript(entries)}, nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
