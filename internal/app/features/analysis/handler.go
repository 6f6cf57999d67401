// internal/app/features/analysis/handler.go
package analysis

import (
	"go.uber.org/zap"

	uierrors "github.com/impactmy/showcase/internal/app/features/errors"
	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/analyzer"
)

// Handler serves AI analysis pages for listed organizations.
type Handler struct {
	Store    profiles.Store
	Analyzer *analyzer.Analyzer
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler constructs an analysis handler. A nil analyzer is valid and
// renders the unavailable notice instead of a report.
func NewHandler(store profiles.Store, a *analyzer.Analyzer, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Analyzer: a,
		Log:      logger,
		ErrLog:   uierrors.NewErrorLogger(logger),
	}
}
