package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestParseNumberedList(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "dot form",
			content: "1. Where are you from?\n2. What brings you here?",
			want:    []string{"Where are you from?", "What brings you here?"},
		},
		{
			name:    "all forms with CRLF and blanks",
			content: "1) Alpha\r\n\r\n2 - Beta\r\n  3: Gamma  \r\n",
			want:    []string{"Alpha", "Beta", "Gamma"},
		},
		{
			name:    "numbers are ignored",
			content: "7. Seventh\n3. Third",
			want:    []string{"Seventh", "Third"},
		},
		{
			name:    "unmatched lines are skipped",
			content: "Intro\n- bullet\n1.NoSpace\n1. Kept",
			want:    []string{"Kept"},
		},
		{
			name:    "first pattern wins",
			content: "1. a: b",
			want:    []string{"a: b"},
		},
		{
			name:    "no-break and wide spaces",
			content: "1.\u00a0Pasted from an editor\n2)\u3000Wide\n3\u00a0-\u202fNarrow",
			want:    []string{"Pasted from an editor", "Wide", "Narrow"},
		},
		{
			name:    "nothing",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumberedList(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseNumberedList() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTranscript(t *testing.T) {
	entries := []InterviewEntry{{QuestionID: "q1", QuestionText: "Where are you from?", Notes: "Lisbon"}}
	want := "1. Where are you from?\n→ Lisbon\n\n"
	if got := RenderTranscript(entries); got != want {
		t.Errorf("RenderTranscript() = %q, want %q", got, want)
	}
	if got := RenderTranscript(nil); got != "" {
		t.Errorf("RenderTranscript(nil) = %q, want empty", got)
	}
}

func TestTranscriptDoesNotRoundTrip(t *testing.T) {
	entries := []InterviewEntry{
		{QuestionID: "q1", QuestionText: "Where are you from?", Notes: "Lisbon"},
		{QuestionID: "q2", QuestionText: "Why here?", Notes: "1. work"},
	}

	got := ParseNumberedList(RenderTranscript(entries))

	// Notes lines start with an arrow so only the question texts come back.
	want := []string{"Where are you from?", "Why here?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("re-imported = %q, want %q", got, want)
	}
}

func TestTranscriptFileName(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	if got := TranscriptFileName(ts); got != "street-interview-2024-03-01.txt" {
		t.Errorf("TranscriptFileName() = %s", got)
	}
}
