// internal/app/features/showcase/handler.go
package showcase

import (
	"go.uber.org/zap"

	uierrors "github.com/impactmy/showcase/internal/app/features/errors"
	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/flash"
)

// Handler is the feature-level entry point for showcase pages.
type Handler struct {
	Store profiles.Store
	Flash *flash.Manager
	Log   *zap.Logger

	// AnalysisEnabled controls whether the page links to the analysis view.
	AnalysisEnabled bool

	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a showcase handler bound to a store and logger.
func NewHandler(store profiles.Store, fm *flash.Manager, analysisEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		Store:           store,
		Flash:           fm,
		Log:             logger,
		AnalysisEnabled: analysisEnabled,
		ErrLog:          uierrors.NewErrorLogger(logger),
	}
}
