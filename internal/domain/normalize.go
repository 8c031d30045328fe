package domain

import "strings"

// NormalizeWord maps a free-form input string to the canonical lookup key:
// leading/trailing whitespace trimmed, simple lowercase fold. The empty
// result is not an error here; callers reject it with a validation error.
//
// The fold is deliberately minimal: the key must match what earlier saves
// produced, so no diacritic stripping and no inner-space compression.
func NormalizeWord(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
