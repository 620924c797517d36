package application

import (
	"reflect"
	"testing"

	"streetinterview/internal/domain"
)

func TestResolveTarget(t *testing.T) {
	questions := []domain.Question{{ID: "01HXA", Text: "A"}, {ID: "01HXB", Text: "B"}}

	tests := []struct {
		name string
		ref  string
		want domain.BranchTarget
	}{
		{name: "end", ref: "End", want: domain.EndInterview()},
		{name: "existing id", ref: "01HXB", want: domain.ContinueTo("01HXB")},
		{name: "position", ref: "2", want: domain.ContinueTo("01HXB")},
		{name: "position out of range kept raw", ref: "9", want: domain.ContinueTo("9")},
		{name: "unknown id kept raw", ref: "gone", want: domain.ContinueTo("gone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTarget(tt.ref, questions); got != tt.want {
				t.Errorf("ResolveTarget(%q) = %+v, want %+v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestParseRuleSpecs_FormatRoundTrip(t *testing.T) {
	questions := []domain.Question{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}}

	rules, err := ParseRuleSpecs([]string{"yes=2", "no=end", "maybe=gone"}, questions)
	if err != nil {
		t.Fatalf("ParseRuleSpecs failed: %v", err)
	}

	got := FormatRuleSpecs(rules, questions)
	want := []string{"yes=2", "no=end", "maybe=gone"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatRuleSpecs() = %q, want %q", got, want)
	}
}

func TestParseRuleSpecs_Invalid(t *testing.T) {
	_, err := ParseRuleSpecs([]string{"nope"}, nil)
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("expected *ValidationError, got %T (%v)", err, err)
	}
}
