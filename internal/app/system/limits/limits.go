// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxSubmitFormSize is the maximum size for organization submission forms.
	// The about section and founder list dominate; 1 MB is generous.
	MaxSubmitFormSize = 1 << 20 // 1 MB
)
