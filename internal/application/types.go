package application

import "streetinterview/internal/domain"

// Re-export domain types for use by adapters
type (
	Question       = domain.Question
	BranchRule     = domain.BranchRule
	BranchRules    = domain.BranchRules
	BranchTarget   = domain.BranchTarget
	BranchSummary  = domain.BranchSummary
	TargetChoice   = domain.TargetChoice
	InterviewEntry = domain.InterviewEntry
	Session        = domain.Session
	Status         = domain.Status
	Step           = domain.Step
	StepKind       = domain.StepKind
)

const (
	StatusIdle   = domain.StatusIdle
	StatusActive = domain.StatusActive
	StatusEnded  = domain.StatusEnded

	StepContinue   = domain.StepContinue
	StepEnd        = domain.StepEnd
	StepUnresolved = domain.StepUnresolved

	EndLabel     = domain.EndLabel
	UnknownLabel = domain.UnknownLabel
)

// Re-export interview errors so adapters can match them without importing domain
var (
	ErrEmptyStore        = domain.ErrEmptyStore
	ErrNoActiveSession   = domain.ErrNoActiveSession
	ErrUnknownAnswer     = domain.ErrUnknownAnswer
	ErrNothingToExport   = domain.ErrNothingToExport
	ErrNoCurrentQuestion = domain.ErrNoCurrentQuestion
)

// TargetChoices lists selectable rule targets
func TargetChoices(questions []Question, editingID string) []TargetChoice {
	return domain.TargetChoices(questions, editingID)
}

// RenderTranscript formats entries as the exported text
func RenderTranscript(entries []InterviewEntry) string {
	return domain.RenderTranscript(entries)
}
