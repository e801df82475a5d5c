package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError is a per-field validation failure, surfaced as a 422 entry.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// namePattern restricts names to word characters, whitespace, hyphens and dots.
var namePattern = regexp.MustCompile(`^[\w\s.-]+$`)

// Name validates a user name and returns it with surrounding whitespace
// stripped. The same rule applies on create and on update.
func Name(v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", &FieldError{Field: "name", Message: "Name must not be empty"}
	}
	if utf8.RuneCountInString(v) > 255 {
		return "", &FieldError{Field: "name", Message: "Name too long (max 255)"}
	}
	if !namePattern.MatchString(v) {
		return "", &FieldError{Field: "name", Message: "Name contains invalid characters"}
	}
	return strings.TrimSpace(v), nil
}
