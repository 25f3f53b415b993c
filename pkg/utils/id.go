package utils

import (
	"regexp"

	"github.com/google/uuid"
)

// NewID generates a new globally unique identifier
func NewID() string {
	return uuid.New().String()
}

var nonDigits = regexp.MustCompile("[^0-9]")

// DigitsOnly strips every non-digit character from s
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

var digitsOnlyPattern = regexp.MustCompile("^[0-9]+$")

// IsDigits reports whether s consists solely of digits
func IsDigits(s string) bool {
	return digitsOnlyPattern.MatchString(s)
}
