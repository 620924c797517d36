package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"streetinterview/internal/domain"
)

// ImportExtensions are the file extensions the importer accepts
var ImportExtensions = []string{".txt", ".md"}

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "questionID" -> "question ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"questionID": "question ID",
		"text":       "question text",
		"path":       "file path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateRuleAnswers rejects rules whose answer category is blank.
func ValidateRuleAnswers(rules domain.BranchRules) error {
	for _, rule := range rules {
		if strings.TrimSpace(rule.Answer) == "" {
			return &ValidationError{Field: "rules", Message: "answer category is required"}
		}
	}
	return nil
}

// ValidateImportPath checks the extension of a file to import, case-insensitively.
func ValidateImportPath(path string) error {
	if err := ValidateRequired("path", path); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range ImportExtensions {
		if ext == allowed {
			return nil
		}
	}
	return &ImportFormatError{
		File:   filepath.Base(path),
		Reason: fmt.Sprintf("only %s files are supported", strings.Join(ImportExtensions, " and ")),
	}
}

// ValidateLibrary checks a set of questions loaded from a backup.
func ValidateLibrary(questions []domain.Question) error {
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if err := ValidateRequired("questionID", q.ID); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if err := ValidateRequired("text", q.Text); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if err := ValidateRuleAnswers(q.BranchingRules); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
