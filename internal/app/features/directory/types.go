// internal/app/features/directory/types.go
package directory

import (
	"github.com/impactmy/showcase/internal/app/system/filtering"
	"github.com/impactmy/showcase/internal/app/system/viewdata"
	"github.com/impactmy/showcase/internal/domain/models"
)

// listData is the view model for the directory list page.
type listData struct {
	viewdata.BaseVM

	Q        string
	Criteria filtering.Criteria
	Options  filtering.Options

	Items []models.OrganizationProfile
	Shown int
	Total int
}
