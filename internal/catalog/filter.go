package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the records whose name or description contains query,
// ignoring case. A blank query returns every record. Input order is kept, so
// filtering an already filtered result by the same query is a no-op.
func Filter(records []ProductRecord, query string) []ProductRecord {
	if strings.TrimSpace(query) == "" {
		return append([]ProductRecord(nil), records...)
	}
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	matches := make([]ProductRecord, 0, len(records))
	for _, record := range records {
		if containsLower(lower, record, needle) {
			matches = append(matches, record)
		}
	}
	return matches
}

// Matches reports whether a single record passes Filter for query.
func Matches(record ProductRecord, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	lower := cases.Lower(language.Und)
	return containsLower(lower, record, lower.String(query))
}

// containsLower compares lowercased text only. "ss" does not match "ß".
func containsLower(lower cases.Caser, record ProductRecord, needle string) bool {
	if strings.Contains(lower.String(record.Name), needle) {
		return true
	}
	return strings.Contains(lower.String(record.DescriptionText()), needle)
}
