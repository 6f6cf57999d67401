// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	analysisfeature "github.com/impactmy/showcase/internal/app/features/analysis"
	directoryfeature "github.com/impactmy/showcase/internal/app/features/directory"
	healthfeature "github.com/impactmy/showcase/internal/app/features/health"
	showcasefeature "github.com/impactmy/showcase/internal/app/features/showcase"
	submitfeature "github.com/impactmy/showcase/internal/app/features/submit"
	"github.com/impactmy/showcase/internal/app/system/analyzer"
	"github.com/impactmy/showcase/internal/app/system/flash"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, storage connections, schema setup,
// and any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: storage dependencies bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Flash messages ride a signed cookie; secure in production.
	secure := coreCfg.Env == "prod"
	flashMgr := flash.NewManager(appCfg.SessionKey, appCfg.SessionName, secure, logger)

	// The analyzer is optional: without an API key it stays nil and the
	// analysis pages render an unavailable notice.
	aiAnalyzer, err := analyzer.New(context.Background(), appCfg.GeminiAPIKey, appCfg.GeminiModel, logger)
	if err != nil {
		logger.Error("analyzer init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Profiles, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Directory list at the site root
	directoryHandler := directoryfeature.NewHandler(deps.Profiles, flashMgr, logger)
	r.Mount("/", directoryfeature.Routes(directoryHandler))

	// Showcase and analysis pages share the /company prefix
	showcaseHandler := showcasefeature.NewHandler(deps.Profiles, flashMgr, aiAnalyzer.Enabled(), logger)
	analysisHandler := analysisfeature.NewHandler(deps.Profiles, aiAnalyzer, logger)
	r.Route("/company", func(cr chi.Router) {
		cr.Get("/{identifier}", showcaseHandler.ServeView)
		cr.Get("/{identifier}/analysis", analysisHandler.ServeAnalysis)
	})

	// Submission form
	submitHandler := submitfeature.NewHandler(deps.Profiles, flashMgr, logger)
	r.Mount("/submit", submitfeature.Routes(submitHandler))

	return r, nil
}
