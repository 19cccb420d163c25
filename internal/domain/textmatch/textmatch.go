// Package textmatch provides the single substring test used by every
// free-text search in the engine, so search semantics stay consistent
// across feed, schedule and notification filtering.
package textmatch

import "strings"

// Matches reports whether needle occurs in haystack, ignoring case.
// An empty or whitespace-only needle always matches.
func Matches(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
