package domain

import "strings"

const (
	// BranchLabelWidth bounds target texts shown next to a rule
	BranchLabelWidth = 40
	// ChoiceLabelWidth bounds question texts offered as rule targets
	ChoiceLabelWidth = 50

	EndLabel     = "End Interview"
	UnknownLabel = "Unknown"
)

// BranchSummary is a display-ready branching rule
type BranchSummary struct {
	Answer string
	Label  string
}

// TargetLabel describes where a rule leads, resolving the id against the store.
func TargetLabel(target BranchTarget, questions []Question) string {
	if target.Ends() {
		return EndLabel
	}
	q, ok := Find(questions, target.QuestionID)
	if !ok {
		return UnknownLabel
	}
	return Truncate(q.Text, BranchLabelWidth)
}

// Summarize renders every rule of q as answer/label pairs in rule order
func Summarize(q Question, questions []Question) []BranchSummary {
	out := make([]BranchSummary, 0, len(q.BranchingRules))
	for _, rule := range q.BranchingRules {
		out = append(out, BranchSummary{
			Answer: rule.Answer,
			Label:  TargetLabel(rule.Target, questions),
		})
	}
	return out
}

// TargetChoice is one selectable destination for a new rule
type TargetChoice struct {
	Target BranchTarget
	Label  string
}

// TargetChoices lists "End Interview" followed by every question except the
// one being edited (pass "" when creating).
func TargetChoices(questions []Question, editingID string) []TargetChoice {
	choices := []TargetChoice{{Target: EndInterview(), Label: EndLabel}}
	for _, q := range questions {
		if q.ID == editingID {
			continue
		}
		choices = append(choices, TargetChoice{
			Target: ContinueTo(q.ID),
			Label:  Truncate(q.Text, ChoiceLabelWidth),
		})
	}
	return choices
}

// Truncate shortens s to n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n]), " ") + "..."
}
