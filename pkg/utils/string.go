package utils

import (
	"strings"
	"unicode"
)

// SplitPeople splits a comma-separated list of tagged people into trimmed
// entries. An empty or whitespace-only input yields no entries, and empty
// segments between commas are dropped.
func SplitPeople(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var people []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			people = append(people, part)
		}
	}
	return people
}

// SanitizeString sanitizes a string for safe use
func SanitizeString(s string) string {
	// Remove control characters
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)

	// Trim whitespace
	s = strings.TrimSpace(s)

	return s
}

// TruncateString truncates a string to max length
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// NormalizeEmail normalizes an email address
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)
	return email
}

// MaskToken masks a bearer token for log output
func MaskToken(token string, visibleChars int) string {
	if len(token) <= visibleChars {
		return strings.Repeat("*", len(token))
	}
	return token[:visibleChars] + strings.Repeat("*", len(token)-visibleChars)
}

// IsEmpty checks if string is empty or only whitespace
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
