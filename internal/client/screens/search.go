package screens

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	// fuzzyMinLen is the shortest query that gets typo-tolerant matching;
	// shorter ones would match almost every word.
	fuzzyMinLen      = 4
	fuzzyMaxDistance = 2
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// matches reports whether query is a substring of any field, or for longer
// queries whether some word of a field is within a small edit distance.
// query must already be normalized.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	if utf8.RuneCountInString(query) < fuzzyMinLen {
		return false
	}
	for _, f := range fields {
		words := strings.FieldsFunc(strings.ToLower(f), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, w := range words {
			if levenshtein.ComputeDistance(w, query) <= fuzzyMaxDistance {
				return true
			}
		}
	}
	return false
}
