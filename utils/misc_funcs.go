package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeEmail fixes the case policy: emails are compared and stored
// lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims and title-cases a display name. A fresh caser per call:
// cases.Caser is not safe for concurrent use.
func NormalizeName(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}
