package domain

import (
	"fmt"
	"strings"
	"time"
)

// TranscriptPrefix names exported transcript files
const TranscriptPrefix = "street-interview-"

// RenderTranscript formats entries as a numbered report:
//
//	1. question
//	→ notes
//
// The output is not a numbered list the importer can read back into entries;
// only the question lines parse, and the notes are lost.
func RenderTranscript(entries []InterviewEntry) string {
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.QuestionText)
		fmt.Fprintf(&b, "→ %s\n\n", e.Notes)
	}
	return b.String()
}

// TranscriptFileName returns street-interview-YYYY-MM-DD.txt for the UTC date of t.
func TranscriptFileName(t time.Time) string {
	return TranscriptPrefix + t.UTC().Format(time.DateOnly) + ".txt"
}
