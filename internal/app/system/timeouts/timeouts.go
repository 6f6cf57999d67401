// Package timeouts provides centralized timeout values for handler operations.
//
// The values bound context.WithTimeout around store reads, dataset writes,
// and analyzer calls so a slow disk or upstream API cannot stall a request
// indefinitely.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-record reads, form rendering
//   - Medium: full-dataset loads and filtered lists, appends
//   - Long: analyzer calls (external API with retries)
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 45 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for simple single-record operations.
func Short() time.Duration { return short }

// Medium returns the timeout for dataset loads and appends.
func Medium() time.Duration { return medium }

// Long returns the timeout for external analysis calls.
func Long() time.Duration { return long }
