package contact

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// TitleCase capitalizes the first letter of each word and lowercases the rest.
// Words follow Unicode segmentation, so an apostrophe does not start a new
// word: "o'brien" becomes "O'brien".
// A fresh Caser is built per call because cases.Caser keeps state.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// Fold prepares s for case-insensitive substring comparison.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// ParseKeywords splits a search query on commas into folded, trimmed keywords.
// An empty query yields one empty keyword, which matches every record.
func ParseKeywords(query string) []string {
	parts := strings.Split(Fold(query), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Matches reports whether every keyword occurs in at least one field of r.
func (r Record) Matches(keywords []string) bool {
	values := r.Values()
	for i, v := range values {
		values[i] = Fold(v)
	}
	for _, kw := range keywords {
		found := false
		for _, v := range values {
			if strings.Contains(v, kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
