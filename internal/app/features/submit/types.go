// internal/app/features/submit/types.go
package submit

import (
	"github.com/impactmy/showcase/internal/app/system/formutil"
)

// formData is the view model for the submission form page.
type formData struct {
	formutil.Base

	Values formValues
}
