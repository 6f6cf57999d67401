// internal/app/features/errors/errors.go
package errors

// pageData is the basic view model for error pages.
type pageData struct {
	SiteName    string
	Title       string
	Message     string
	BackURL     string
	CurrentPath string
	Flash       string
}
