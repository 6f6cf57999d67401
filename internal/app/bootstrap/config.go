// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the showcase app.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: dataset_path, session_name, etc.
//   - Environment variables: SHOWCASE_DATASET_PATH, SHOWCASE_SESSION_NAME, etc.
//   - Command-line flags: --dataset_path, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "storage_backend", Default: "file", Desc: "Profile storage backend: 'file' or 'mongo'"},
	{Name: "dataset_path", Default: "./data/showcase_data.json", Desc: "Path to the JSON profile dataset (file backend)"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo backend)"},
	{Name: "mongo_database", Default: "showcase", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "", Desc: "Cookie signing key for flash messages (blank generates a per-process key)"},
	{Name: "session_name", Default: "showcase-session", Desc: "Session cookie name"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of the site"},

	{Name: "gemini_api_key", Default: "", Desc: "Gemini API key for profile analysis (blank disables the feature)"},
	{Name: "gemini_model", Default: "", Desc: "Gemini model name (blank uses the built-in default)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SHOWCASE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SHOWCASE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StorageBackend: appValues.String("storage_backend"),
		DatasetPath:    appValues.String("dataset_path"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),

		BaseURL: appValues.String("base_url"),

		GeminiAPIKey: appValues.String("gemini_api_key"),
		GeminiModel:  appValues.String("gemini_model"),
	}

	// The analyzer historically read GEMINI_API_KEY directly; honor that
	// when no prefixed setting is present.
	if appCfg.GeminiAPIKey == "" {
		appCfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StorageBackend {
	case "file":
		if appCfg.DatasetPath == "" {
			return fmt.Errorf("dataset_path is required with the file storage backend")
		}
	case "mongo":
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	default:
		return fmt.Errorf("storage_backend must be 'file' or 'mongo', got %q", appCfg.StorageBackend)
	}

	return nil
}
