package domain

import (
	"regexp"
	"strings"
)

// Numbered list forms, tried in order: "1. text", "1) text", "1 - text", "1: text".
// Separators accept Unicode spaces such as the no-break space.
var numberedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+)\.[\s\p{Zs}]+(.+)$`),
	regexp.MustCompile(`^(\d+)\)[\s\p{Zs}]+(.+)$`),
	regexp.MustCompile(`^(\d+)[\s\p{Zs}]+-[\s\p{Zs}]+(.+)$`),
	regexp.MustCompile(`^(\d+):[\s\p{Zs}]+(.+)$`),
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// ParseNumberedList extracts the item texts of a numbered list.
// The numbers themselves are ignored; lines that are not list items are skipped.
func ParseNumberedList(content string) []string {
	var items []string
	for _, line := range lineBreak.Split(content, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if text, ok := matchNumbered(line); ok {
			items = append(items, text)
		}
	}
	return items
}

func matchNumbered(line string) (string, bool) {
	for _, pattern := range numberedPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		return text, text != ""
	}
	return "", false
}
