package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is shown wherever a display value is missing.
const Placeholder = "—"

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// FormatManagerName turns an email-like identifier into a display name.
//
//	inayatullahm@Maaden.com.sa -> Inayatullah M
//	ChakraborttyG@x.com        -> Chakrabortty G
//	Jane Doe                   -> Jane Doe
//	JOHN@x.com                 -> John
//
// Empty strings, the placeholder and identifiers without '@' are returned
// unchanged. Local parts written entirely in capitals are title-cased as one
// word rather than split into letters or initials.
func FormatManagerName(identifier string) string {
	if identifier == "" || identifier == Placeholder {
		return identifier
	}
	at := strings.IndexByte(identifier, '@')
	if at < 0 {
		return identifier
	}
	local := identifier[:at]

	if hasLower(local) {
		spaced := strings.TrimSpace(spaceBeforeUpper(local))
		if fields := strings.Fields(spaced); len(fields) > 0 && spaced != local {
			for i, f := range fields {
				fields[i] = titleWord(f)
			}
			return strings.Join(fields, " ")
		}
	}

	if isLowerASCII(local) && len(local) >= 2 {
		name, initial := local[:len(local)-1], local[len(local)-1:]
		return titleWord(name) + " " + upper.String(initial)
	}

	return titleWord(local)
}

// titleWord upper-cases the first rune of s and lower-cases the rest.
func titleWord(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return upper.String(string(r)) + lower.String(s[size:])
}

func spaceBeforeUpper(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func isLowerASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
