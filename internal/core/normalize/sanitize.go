package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize drops invalid UTF-8 bytes and every control rune (C0, DEL, C1)
// tabs and newlines become spaces so word boundaries survive
// the fast path returns s unchanged when nothing needs cleaning
func Sanitize(s string) string {
	clean := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || unicode.IsControl(r) {
			clean = false
			break
		}
		i += size
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
