// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to this application lives.
type AppConfig struct {
	// Profile storage configuration. Backend "file" keeps the dataset in a
	// single JSON file; "mongo" uses MongoDB instead.
	StorageBackend string
	DatasetPath    string

	// MongoDB connection configuration (only used with the mongo backend)
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration (flash messages only; there are no
	// user accounts)
	SessionKey  string
	SessionName string

	// Base URL of the public site
	BaseURL string

	// Gemini API configuration for the optional analysis feature. An empty
	// key disables analysis without affecting the rest of the site.
	GeminiAPIKey string
	GeminiModel  string
}
