package inputval

import (
	"net/url"
	"strings"
)

// IsValidHTTPURL reports whether s is a well-formed absolute http or https
// URL. Surrounding whitespace is tolerated; other schemes are rejected.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}
