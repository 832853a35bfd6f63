package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// EmailPattern is the shape accepted by Email: local part, "@", domain labels
// and a TLD of at least two letters.
const EmailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

var emailRegex = regexp.MustCompile(EmailPattern)

// Required reports whether value is non-empty after trimming whitespace.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email reports whether value looks like an email address.
func Email(value string) bool {
	return emailRegex.MatchString(value)
}

// MinLength reports whether value has at least n characters.
// Length is counted in runes.
func MinLength(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

// MaxLength reports whether value has at most n characters.
func MaxLength(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// Matches reports whether the field named other is present in values and
// equals value. A nil context never matches.
func Matches(value, other string, values Values) bool {
	if values == nil {
		return false
	}
	v, ok := values[other]
	return ok && v == value
}

// HasUppercase reports whether value contains at least one ASCII uppercase letter.
func HasUppercase(value string) bool {
	return strings.IndexFunc(value, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	}) >= 0
}

// HasDigit reports whether value contains at least one ASCII digit.
func HasDigit(value string) bool {
	return strings.IndexFunc(value, func(r rune) bool {
		return r >= '0' && r <= '9'
	}) >= 0
}
