// Package slug derives URL-safe identifiers from project titles.
package slug

import "strings"

// Make derives a slug from a title: lowercase, runs of whitespace become a
// single hyphen, and everything outside [a-z0-9-] is stripped. The result is
// not guaranteed collision-free; the storage layer enforces uniqueness.
func Make(title string) string {
	lowered := strings.ToLower(title)
	hyphenated := strings.Join(strings.Fields(lowered), "-")

	var b strings.Builder
	b.Grow(len(hyphenated))
	for _, r := range hyphenated {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
