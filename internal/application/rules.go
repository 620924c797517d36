package application

import (
	"fmt"
	"strconv"
	"strings"

	"streetinterview/internal/domain"
)

// ResolveTarget turns a user-typed target into a branch target.
// It accepts "end", an existing question id, or a 1-based position in the
// question list. Anything else is kept as a raw id and may dangle.
func ResolveTarget(ref string, questions []domain.Question) domain.BranchTarget {
	ref = strings.TrimSpace(ref)
	if strings.EqualFold(ref, domain.EndKeyword) {
		return domain.EndInterview()
	}
	if _, ok := domain.Find(questions, ref); ok {
		return domain.ContinueTo(ref)
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(questions) {
		return domain.ContinueTo(questions[n-1].ID)
	}
	return domain.ContinueTo(ref)
}

// ParseRuleSpecs parses "answer=target" specs, resolving each target with ResolveTarget.
// A repeated answer replaces the earlier target.
func ParseRuleSpecs(specs []string, questions []domain.Question) (domain.BranchRules, error) {
	var rules domain.BranchRules
	for _, spec := range specs {
		rule, err := domain.ParseBranchRule(spec)
		if err != nil {
			return nil, &ValidationError{Field: "rules", Message: err.Error()}
		}
		rules.Set(rule.Answer, ResolveTarget(rule.Target.String(), questions))
	}
	return rules, nil
}

// FormatRuleSpecs renders rules back into editable "answer=target" specs,
// using positions for targets that resolve and raw ids for dangling ones.
func FormatRuleSpecs(rules domain.BranchRules, questions []domain.Question) []string {
	specs := make([]string, 0, len(rules))
	for _, rule := range rules {
		target := domain.EndKeyword
		if !rule.Target.Ends() {
			target = rule.Target.QuestionID
			if i := domain.IndexOf(questions, target); i >= 0 {
				target = strconv.Itoa(i + 1)
			}
		}
		specs = append(specs, fmt.Sprintf("%s=%s", rule.Answer, target))
	}
	return specs
}
