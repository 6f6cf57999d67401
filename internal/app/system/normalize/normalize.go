// Package normalize canonicalizes user-supplied values before validation
// and storage.
package normalize

import (
	"strings"
	"unicode"

	"github.com/dalemusser/waffle/pantry/text"
)

// Text trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(s)
}

// Slug derives a URL-safe identifier from a display name: case- and
// diacritic-folded, runs of non-alphanumeric characters collapsed to
// single hyphens. "Acme Café 2" becomes "acme-cafe-2".
func Slug(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range text.Fold(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Tags splits a comma-separated string into a deduplicated, trimmed list.
// Order of first appearance is preserved; empty entries are dropped.
func Tags(s string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, raw := range strings.Split(s, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}
