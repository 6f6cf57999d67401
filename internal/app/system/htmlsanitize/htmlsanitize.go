// Package htmlsanitize strips dangerous HTML from user-submitted content.
//
// Profile fields like the about text, job descriptions, and news summaries
// accept limited HTML from submitters and are rendered into pages, so they
// are sanitized with a bluemonday UGC policy before they are persisted.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy = buildPolicy()
	strict = bluemonday.StrictPolicy()
)

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// The UGC policy covers formatting, links, lists, and tables.
	// Styling attributes on table elements are additionally allowed because
	// legacy dataset records carry them.
	p.AllowAttrs("style", "class").OnElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	return p
}

// Sanitize returns s with disallowed elements and attributes removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for template output.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// StripTags removes all markup, leaving plain text. Used for fields that
// render inline, like the tagline.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strict.Sanitize(s)
}
