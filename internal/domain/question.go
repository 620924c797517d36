package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

// EndKeyword is the textual form of the end-of-interview target.
const EndKeyword = "end"

// TargetKind tells a branch target apart from the end-of-interview sentinel
type TargetKind int

const (
	TargetEnd      TargetKind = iota // interview stops after this answer
	TargetQuestion                   // interview continues at QuestionID
)

// BranchTarget is where a branching rule sends the interview.
// The zero value ends the interview.
type BranchTarget struct {
	Kind       TargetKind
	QuestionID string
}

// ContinueTo returns a target that moves the interview to the given question.
// The id is not checked against the store; dangling ids resolve when traversed.
func ContinueTo(questionID string) BranchTarget {
	return BranchTarget{Kind: TargetQuestion, QuestionID: questionID}
}

// EndInterview returns the end-of-interview target.
func EndInterview() BranchTarget {
	return BranchTarget{Kind: TargetEnd}
}

// Ends reports whether the target is the end sentinel
func (t BranchTarget) Ends() bool {
	return t.Kind == TargetEnd
}

func (t BranchTarget) String() string {
	if t.Ends() {
		return EndKeyword
	}
	return t.QuestionID
}

// BranchRule maps one answer category to a target
type BranchRule struct {
	Answer string
	Target BranchTarget
}

// BranchRules is an ordered answer-category → target mapping.
// Answers are unique; insertion order is kept for display and persistence.
type BranchRules []BranchRule

// Lookup returns the target for an answer category
func (r BranchRules) Lookup(answer string) (BranchTarget, bool) {
	for _, rule := range r {
		if rule.Answer == answer {
			return rule.Target, true
		}
	}
	return BranchTarget{}, false
}

// Answers returns the answer categories in order
func (r BranchRules) Answers() []string {
	answers := make([]string, 0, len(r))
	for _, rule := range r {
		answers = append(answers, rule.Answer)
	}
	return answers
}

// Set adds a rule, or replaces the target of an existing answer in place.
func (r *BranchRules) Set(answer string, target BranchTarget) {
	for i := range *r {
		if (*r)[i].Answer == answer {
			(*r)[i].Target = target
			return
		}
	}
	*r = append(*r, BranchRule{Answer: answer, Target: target})
}

// Clone returns an independent copy
func (r BranchRules) Clone() BranchRules {
	if r == nil {
		return nil
	}
	out := make(BranchRules, len(r))
	copy(out, r)
	return out
}

// ParseBranchRule parses "answer=target", where target is a question id or "end".
func ParseBranchRule(spec string) (BranchRule, error) {
	answer, target, ok := strings.Cut(spec, "=")
	if !ok {
		return BranchRule{}, fmt.Errorf("branch rule %q: expected answer=target", spec)
	}
	answer = strings.TrimSpace(answer)
	target = strings.TrimSpace(target)
	if answer == "" {
		return BranchRule{}, fmt.Errorf("branch rule %q: answer category is empty", spec)
	}
	if target == "" {
		return BranchRule{}, fmt.Errorf("branch rule %q: target is empty", spec)
	}
	if strings.EqualFold(target, EndKeyword) {
		return BranchRule{Answer: answer, Target: EndInterview()}, nil
	}
	return BranchRule{Answer: answer, Target: ContinueTo(target)}, nil
}

// MarshalJSON encodes the rules as a JSON object in rule order,
// with null standing for the end sentinel.
func (r BranchRules) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rule := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rule.Answer)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if rule.Target.Ends() {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(rule.Target.QuestionID)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping key order.
func (r *BranchRules) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("branching rules: expected object, got %v", tok)
	}

	var rules BranchRules
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		answer, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("branching rules: unexpected key %v", keyTok)
		}

		var target *string
		if err := dec.Decode(&target); err != nil {
			return fmt.Errorf("branching rules: target for %q: %w", answer, err)
		}
		if target == nil {
			rules.Set(answer, EndInterview())
		} else {
			rules.Set(answer, ContinueTo(*target))
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = rules
	return nil
}

// MarshalYAML encodes the rules as an ordered mapping; ~ is the end sentinel.
func (r BranchRules) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, rule := range r {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rule.Answer}
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}
		if !rule.Target.Ends() {
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rule.Target.QuestionID}
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered mapping
func (r *BranchRules) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*r = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("branching rules: line %d: expected mapping", value.Line)
	}

	var rules BranchRules
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("branching rules: line %d: target must be a scalar", val.Line)
		}
		if val.Tag == "!!null" {
			rules.Set(key.Value, EndInterview())
		} else {
			rules.Set(key.Value, ContinueTo(val.Value))
		}
	}
	*r = rules
	return nil
}

// Question is one authored interview prompt with its branching rules
type Question struct {
	ID             string      `json:"id" yaml:"id"`
	Text           string      `json:"text" yaml:"text"`
	BranchingRules BranchRules `json:"branchingRules" yaml:"branching_rules,omitempty"`
}

// NewQuestion builds a question with a fresh id and trimmed text.
func NewQuestion(text string, rules BranchRules) Question {
	return Question{
		ID:             NewQuestionID(),
		Text:           strings.TrimSpace(text),
		BranchingRules: rules.Clone(),
	}
}

// NewQuestionID returns a fresh, lexically sortable question id.
func NewQuestionID() string {
	return ulid.Make().String()
}

// HasRules reports whether the question branches on answer categories
func (q Question) HasRules() bool {
	return len(q.BranchingRules) > 0
}

// IndexOf returns the position of a question id in store order, or -1.
func IndexOf(questions []Question, id string) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the question with the given id
func Find(questions []Question, id string) (Question, bool) {
	if i := IndexOf(questions, id); i >= 0 {
		return questions[i], true
	}
	return Question{}, false
}
