package share

import (
	"strings"
	"unicode"
)

// SanitizeFileName strips characters that are unsafe in a file name,
// keeping letters, digits, spaces, hyphens, underscores and dots.
// The result is trimmed of surrounding whitespace. Uniqueness is not
// guaranteed: inputs differing only in stripped characters collide.
func SanitizeFileName(name string) string {
	return sanitize(name, true)
}

// SanitizeTitle is SanitizeFileName for page titles, which additionally
// drop dots.
func SanitizeTitle(title string) string {
	return sanitize(title, false)
}

func sanitize(s string, keepDots bool) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == '.' && keepDots:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
