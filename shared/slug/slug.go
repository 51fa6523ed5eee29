// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	// invalidChars matches everything the slug alphabet rejects; spaces and
	// hyphens survive this pass and are normalized afterwards.
	invalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	// whitespaceRuns matches consecutive whitespace
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// multipleHyphens matches consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Make converts a title to a URL-friendly slug: lowercase, strip everything
// outside [a-z0-9 -], collapse whitespace runs to single hyphens, collapse
// repeated hyphens, trim hyphens at both ends. Make is idempotent.
func Make(title string) string {
	result := strings.ToLower(title)
	result = invalidChars.ReplaceAllString(result, "")
	result = whitespaceRuns.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValid reports whether s is a well-formed slug: non-empty, only lowercase
// letters, digits and hyphens, no leading/trailing/doubled hyphens.
func IsValid(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}
