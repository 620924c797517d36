package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Interview traversal errors
var (
	ErrEmptyStore        = errors.New("no questions to ask")
	ErrNoActiveSession   = errors.New("no active interview")
	ErrUnknownAnswer     = errors.New("answer category does not match any branching rule")
	ErrNothingToExport   = errors.New("no questions were answered")
	ErrNoCurrentQuestion = errors.New("interview has no current question")
)

// Status is the lifecycle state of an interview session
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	default:
		return "idle"
	}
}

// StepKind tags the outcome of moving past a question
type StepKind int

const (
	StepContinue   StepKind = iota // moved to Step.QuestionID
	StepEnd                        // end sentinel or last question reached
	StepUnresolved                 // current question id no longer exists
)

func (k StepKind) String() string {
	switch k {
	case StepContinue:
		return "continue"
	case StepEnd:
		return "end"
	case StepUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Step is the result of one advance
type Step struct {
	Kind       StepKind
	QuestionID string
}

// Terminal reports whether the interview cannot continue after this step
func (s Step) Terminal() bool {
	return s.Kind != StepContinue
}

// InterviewEntry is the note recorded for one visited question.
// QuestionText is a snapshot taken when the note was saved.
type InterviewEntry struct {
	QuestionID   string `json:"questionId" yaml:"question_id"`
	QuestionText string `json:"questionText" yaml:"question_text"`
	Notes        string `json:"notes" yaml:"notes"`
}

// Answered reports whether the entry carries a non-blank note
func (e InterviewEntry) Answered() bool {
	return strings.TrimSpace(e.Notes) != ""
}

// Answered filters entries down to those with non-blank notes, keeping order.
func Answered(entries []InterviewEntry) []InterviewEntry {
	var out []InterviewEntry
	for _, e := range entries {
		if e.Answered() {
			out = append(out, e)
		}
	}
	return out
}

// Session is the state of one interview.
// Questions are passed in on every call so edits to the store show up live.
type Session struct {
	Status            Status
	CurrentQuestionID string
	Entries           []InterviewEntry
}

// NewSession returns an idle session
func NewSession() *Session {
	return &Session{Status: StatusIdle}
}

// RestoreSession rebuilds a session from its persisted parts.
// A current question means the interview is still running; entries without
// one are a finished transcript.
func RestoreSession(currentQuestionID string, entries []InterviewEntry) *Session {
	s := &Session{CurrentQuestionID: currentQuestionID, Entries: entries}
	switch {
	case currentQuestionID != "":
		s.Status = StatusActive
	case len(entries) > 0:
		s.Status = StatusEnded
	default:
		s.Status = StatusIdle
	}
	return s
}

// Start begins a new interview at the first question, dropping any previous entries.
func (s *Session) Start(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyStore
	}
	s.Entries = nil
	s.CurrentQuestionID = questions[0].ID
	s.Status = StatusActive
	return nil
}

// Reset returns the session to idle
func (s *Session) Reset() {
	s.Status = StatusIdle
	s.CurrentQuestionID = ""
	s.Entries = nil
}

// Current resolves the current question against the store.
// ok is false when there is no current id or it no longer exists.
func (s *Session) Current(questions []Question) (q Question, ok bool) {
	if s.Status != StatusActive || s.CurrentQuestionID == "" {
		return Question{}, false
	}
	return Find(questions, s.CurrentQuestionID)
}

// Entry returns the recorded entry for a question
func (s *Session) Entry(questionID string) (InterviewEntry, bool) {
	for _, e := range s.Entries {
		if e.QuestionID == questionID {
			return e, true
		}
	}
	return InterviewEntry{}, false
}

// RecordNote saves the trimmed note for the current question, replacing any earlier note.
// ErrNoCurrentQuestion is returned, and nothing recorded, when the current
// question is unset or no longer in the store.
func (s *Session) RecordNote(questions []Question, note string) error {
	if s.Status != StatusActive {
		return ErrNoActiveSession
	}
	q, ok := s.Current(questions)
	if !ok {
		return ErrNoCurrentQuestion
	}
	s.upsert(InterviewEntry{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		Notes:        strings.TrimSpace(note),
	})
	return nil
}

// Advance moves past the current question.
//
// A non-nil note is recorded for the current question first; nil keeps
// whatever was recorded before (an empty entry is still created on first
// visit). Questions with rules require an answer matching one of them;
// questions without rules continue in store order. A terminal step clears
// the current question and leaves the session for End.
func (s *Session) Advance(questions []Question, answer string, note *string) (Step, error) {
	if s.Status != StatusActive {
		return Step{}, ErrNoActiveSession
	}
	if s.CurrentQuestionID == "" {
		return Step{}, ErrNoCurrentQuestion
	}

	idx := IndexOf(questions, s.CurrentQuestionID)
	if idx < 0 {
		missing := s.CurrentQuestionID
		s.CurrentQuestionID = ""
		return Step{Kind: StepUnresolved, QuestionID: missing}, nil
	}
	current := questions[idx]

	var next Step
	switch {
	case current.HasRules():
		target, ok := current.BranchingRules.Lookup(answer)
		if !ok {
			return Step{}, fmt.Errorf("%w: %q (choices: %s)",
				ErrUnknownAnswer, answer, strings.Join(current.BranchingRules.Answers(), ", "))
		}
		if target.Ends() {
			next = Step{Kind: StepEnd}
		} else {
			next = Step{Kind: StepContinue, QuestionID: target.QuestionID}
		}
	case idx+1 < len(questions):
		next = Step{Kind: StepContinue, QuestionID: questions[idx+1].ID}
	default:
		next = Step{Kind: StepEnd}
	}

	entry, seen := s.Entry(current.ID)
	entry.QuestionID = current.ID
	entry.QuestionText = current.Text
	if note != nil {
		entry.Notes = strings.TrimSpace(*note)
	} else if !seen {
		entry.Notes = ""
	}
	s.upsert(entry)

	if next.Kind == StepContinue {
		s.CurrentQuestionID = next.QuestionID
	} else {
		s.CurrentQuestionID = ""
	}
	return next, nil
}

// End finishes the interview. Entries without notes are dropped; when none
// remain the session goes back to idle and ErrNothingToExport is returned.
func (s *Session) End() ([]InterviewEntry, error) {
	if s.Status != StatusActive {
		return nil, ErrNoActiveSession
	}
	answered := Answered(s.Entries)
	s.CurrentQuestionID = ""
	if len(answered) == 0 {
		s.Reset()
		return nil, ErrNothingToExport
	}
	s.Status = StatusEnded
	s.Entries = answered
	return s.Transcript(), nil
}

// Transcript returns a copy of the exported entries of an ended session
func (s *Session) Transcript() []InterviewEntry {
	if s.Status != StatusEnded {
		return nil
	}
	out := make([]InterviewEntry, len(s.Entries))
	copy(out, s.Entries)
	return out
}

func (s *Session) upsert(entry InterviewEntry) {
	for i := range s.Entries {
		if s.Entries[i].QuestionID == entry.QuestionID {
			s.Entries[i] = entry
			return
		}
	}
	s.Entries = append(s.Entries, entry)
}
