package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/auraq/auraq-cli/internal/constants"
)

// Story validates a journal entry and returns the trimmed text.
// An entry that is empty after trimming is rejected without any network call.
func Story(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("story text cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > constants.MaxStoryLen {
		return "", fmt.Errorf("story text exceeds %d characters", constants.MaxStoryLen)
	}
	return trimmed, nil
}

// Username validates a login name.
func Username(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("username cannot exceed 64 characters")
	}
	for _, r := range name {
		if !isUsernameRune(r) {
			return fmt.Errorf("username may only contain letters, digits, '.', '-' and '_'")
		}
	}
	return nil
}

// Password validates a password for registration.
func Password(pw string) error {
	if len(pw) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-' || r == '_':
		return true
	}
	return false
}
