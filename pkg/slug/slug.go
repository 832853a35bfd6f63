package slug

import (
	"strings"
	"unicode"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	separator string
	maxLength int
}

// Separator replaces the default "-" between words.
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// MaxLength truncates the slug to n runes without leaving a trailing
// separator. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Make lowercases s, joins its words with the separator and drops every rune
// that is not a letter or digit. Runs of separators collapse into one.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-"}
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	count := 0
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pending && b.Len() > 0 {
				if cfg.maxLength > 0 && count+2 > cfg.maxLength {
					return b.String()
				}
				b.WriteString(cfg.separator)
				count++
			}
			pending = false
			if cfg.maxLength > 0 && count >= cfg.maxLength {
				return b.String()
			}
			b.WriteRune(r)
			count++
		default:
			pending = true
		}
	}
	return b.String()
}
