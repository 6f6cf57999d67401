// internal/app/features/showcase/types.go
package showcase

import (
	"html/template"

	"github.com/impactmy/showcase/internal/app/system/viewdata"
	"github.com/impactmy/showcase/internal/domain/models"
)

// viewData is the view model for the showcase page.
type viewData struct {
	viewdata.BaseVM

	Profile models.OrganizationProfile

	// AboutHTML is the sanitized about text, safe for direct rendering.
	AboutHTML template.HTML

	AnalysisEnabled bool
}
