package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseBranchRule(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    BranchRule
		wantErr bool
	}{
		{
			name: "continue to question",
			spec: "yes=01HX",
			want: BranchRule{Answer: "yes", Target: ContinueTo("01HX")},
		},
		{
			name: "end keyword",
			spec: "no=end",
			want: BranchRule{Answer: "no", Target: EndInterview()},
		},
		{
			name: "end keyword any case with spaces",
			spec: " maybe = END ",
			want: BranchRule{Answer: "maybe", Target: EndInterview()},
		},
		{
			name:    "missing separator",
			spec:    "yes",
			wantErr: true,
		},
		{
			name:    "empty answer",
			spec:    "=end",
			wantErr: true,
		},
		{
			name:    "empty target",
			spec:    "yes=",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBranchRule(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBranchRule(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseBranchRule(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestBranchRules_SetKeepsOrder(t *testing.T) {
	var rules BranchRules
	rules.Set("yes", ContinueTo("a"))
	rules.Set("no", EndInterview())
	rules.Set("yes", ContinueTo("b"))

	if got := strings.Join(rules.Answers(), ","); got != "yes,no" {
		t.Errorf("answers = %s, want yes,no", got)
	}
	target, ok := rules.Lookup("yes")
	if !ok || target.QuestionID != "b" {
		t.Errorf("Lookup(yes) = %+v, %v; want b", target, ok)
	}
	if _, ok := rules.Lookup("other"); ok {
		t.Error("Lookup(other) should not match")
	}
}

func TestBranchRules_JSONKeepsOrderAndEnd(t *testing.T) {
	rules := BranchRules{
		{Answer: "zebra", Target: ContinueTo("q2")},
		{Answer: "apple", Target: EndInterview()},
	}

	data, err := json.Marshal(rules)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"zebra":"q2","apple":null}` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded BranchRules
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Answer != "zebra" || !decoded[1].Target.Ends() {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestBranchRules_UnmarshalRejectsArray(t *testing.T) {
	var rules BranchRules
	if err := json.Unmarshal([]byte(`["yes"]`), &rules); err == nil {
		t.Error("expected error for array input")
	}
}

func TestQuestion_JSONFieldNames(t *testing.T) {
	q := Question{ID: "q1", Text: "Where do you live?"}
	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"id":"q1","text":"Where do you live?","branchingRules":{}}` {
		t.Errorf("Marshal = %s", data)
	}
}

func TestBranchRules_YAML(t *testing.T) {
	in := []Question{{
		ID:   "q1",
		Text: "Do you cycle?",
		BranchingRules: BranchRules{
			{Answer: "yes", Target: ContinueTo("q2")},
			{Answer: "no", Target: EndInterview()},
		},
	}}

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "no: ~") {
		t.Errorf("expected end target as ~, got:\n%s", data)
	}

	var out []Question
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(out) != 1 || len(out[0].BranchingRules) != 2 {
		t.Fatalf("decoded = %+v", out)
	}
	if out[0].BranchingRules[0].Target.QuestionID != "q2" || !out[0].BranchingRules[1].Target.Ends() {
		t.Errorf("rules = %+v", out[0].BranchingRules)
	}
}

func TestNewQuestion(t *testing.T) {
	rules := BranchRules{{Answer: "yes", Target: EndInterview()}}
	a := NewQuestion("  Hello?  ", rules)
	b := NewQuestion("Hello?", nil)

	if a.Text != "Hello?" {
		t.Errorf("text = %q, want trimmed", a.Text)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids must be unique and non-empty: %q %q", a.ID, b.ID)
	}

	rules[0].Answer = "changed"
	if a.BranchingRules[0].Answer != "yes" {
		t.Error("question rules should not alias the caller's slice")
	}
}
