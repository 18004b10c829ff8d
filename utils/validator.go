// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SanitizeInput trims whitespace and strips null bytes from free-text
// fields (titles, abstracts, comments) before persisting them.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}

// SanitizeList applies SanitizeInput to every entry and drops empties.
func SanitizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := SanitizeInput(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}
