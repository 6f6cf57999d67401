// internal/app/features/submit/handler.go
package submit

import (
	"time"

	"go.uber.org/zap"

	uierrors "github.com/impactmy/showcase/internal/app/features/errors"
	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/flash"
	"github.com/impactmy/showcase/internal/app/system/ratelimit"
)

// Handler is the feature-level entry point for profile submissions.
type Handler struct {
	Store   profiles.Store
	Flash   *flash.Manager
	Limiter *ratelimit.Limiter
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler constructs a submit handler bound to a store and logger.
// Submissions are limited per client IP to discourage scripted floods.
func NewHandler(store profiles.Store, fm *flash.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   store,
		Flash:   fm,
		Limiter: ratelimit.New(5, time.Minute),
		Log:     logger,
		ErrLog:  uierrors.NewErrorLogger(logger),
	}
}
