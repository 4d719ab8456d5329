package accessibility

import "strings"

// isSpace matches the ASCII whitespace HTML collapses: tab, LF, FF, CR, space.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// Normalize trims s and collapses every run of HTML whitespace to one space.
func Normalize(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// tokens splits an attribute value on HTML whitespace, dropping empty tokens.
func tokens(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
