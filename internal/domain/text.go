package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ContainsToken reports whether phrase occurs in text on word boundaries,
// case-insensitively. "cto" never matches inside "director", and "product"
// never matches inside "production". Phrases may contain spaces.
func ContainsToken(text, phrase string) bool {
	t := strings.ToLower(text)
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" || t == "" {
		return false
	}

	for start := 0; start <= len(t)-len(p); {
		i := strings.Index(t[start:], p)
		if i < 0 {
			return false
		}
		i += start

		var before, after rune
		if i > 0 {
			before, _ = utf8.DecodeLastRuneInString(t[:i])
		}
		if i+len(p) < len(t) {
			after, _ = utf8.DecodeRuneInString(t[i+len(p):])
		}
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}
		start = i + 1
	}
	return false
}

// ContainsAnyToken returns the first phrase that token-matches text.
func ContainsAnyToken(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if ContainsToken(text, p) {
			return p, true
		}
	}
	return "", false
}

// CountTokens counts how many distinct phrases token-match text.
func CountTokens(text string, phrases []string) int {
	n := 0
	seen := map[string]bool{}
	for _, p := range phrases {
		key := strings.ToLower(strings.TrimSpace(p))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if ContainsToken(text, p) {
			n++
		}
	}
	return n
}
