// internal/app/features/directory/handler.go
package directory

import (
	"go.uber.org/zap"

	uierrors "github.com/impactmy/showcase/internal/app/features/errors"
	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/flash"
)

// Handler is the feature-level entry point for the profile directory.
type Handler struct {
	Store  profiles.Store
	Flash  *flash.Manager
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a directory handler bound to a store and logger.
func NewHandler(store profiles.Store, fm *flash.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Flash:  fm,
		Log:    logger,
		ErrLog: uierrors.NewErrorLogger(logger),
	}
}
