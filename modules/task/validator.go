package task

import (
	"strings"
	"unicode/utf8"
)

// Title length bounds, counted in runes after trimming.
const (
	TitleMinLen = 3
	TitleMaxLen = 100
)

// ValidateTitle trims the raw title and checks it against the length bounds.
// It returns the trimmed title, which is the form that gets stored, plus a
// list of human-readable violations. An empty list means the title is valid.
func ValidateTitle(raw string) (string, []string) {
	title := strings.TrimSpace(raw)

	var violations []string
	if title == "" {
		violations = append(violations, "title is required")
	}

	length := utf8.RuneCountInString(title)
	if length < TitleMinLen {
		violations = append(violations, "title must be at least 3 characters")
	}
	if length > TitleMaxLen {
		violations = append(violations, "title must be at most 100 characters")
	}

	return title, violations
}
