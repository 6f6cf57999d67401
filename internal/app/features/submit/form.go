// internal/app/features/submit/form.go
package submit

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/impactmy/showcase/internal/app/system/htmlsanitize"
	"github.com/impactmy/showcase/internal/app/system/inputval"
	"github.com/impactmy/showcase/internal/app/system/normalize"
	"github.com/impactmy/showcase/internal/domain/models"
)

// submitInput defines validation rules for the submission form.
type submitInput struct {
	Name         string `validate:"required,max=200" form:"name" label:"Organization name"`
	Tagline      string `validate:"max=300" form:"tagline" label:"Tagline"`
	About        string `validate:"max=5000" form:"about" label:"About"`
	LogoURL      string `validate:"url,max=500" form:"logo_url" label:"Logo URL"`
	WebsiteURL   string `validate:"url,max=500" form:"website_url" label:"Website URL"`
	Location     string `validate:"max=100" form:"location" label:"Location"`
	Sector       string `validate:"max=100" form:"sector" label:"Sector"`
	Batch        string `validate:"max=50" form:"batch" label:"Batch"`
	FundingStage string `validate:"max=50" form:"funding_stage" label:"Funding stage"`
}

// formValues carries the raw (trimmed) form fields, used both to build the
// profile and to re-render the form with sticky values.
type formValues struct {
	Name         string
	Tagline      string
	About        string
	LogoURL      string
	WebsiteURL   string
	Tags         string
	Location     string
	Sector       string
	Batch        string
	FundingStage string
	FoundingYear string
	TeamSize     string
	Accredited   bool
	Founders     string
}

func parseFormValues(form url.Values) formValues {
	get := func(name string) string { return strings.TrimSpace(form.Get(name)) }
	return formValues{
		Name:         get("name"),
		Tagline:      get("tagline"),
		About:        get("about"),
		LogoURL:      get("logo_url"),
		WebsiteURL:   get("website_url"),
		Tags:         get("tags"),
		Location:     get("location"),
		Sector:       get("sector"),
		Batch:        get("batch"),
		FundingStage: get("funding_stage"),
		FoundingYear: get("founding_year"),
		TeamSize:     get("team_size"),
		Accredited:   form.Get("accredited") != "",
		Founders:     get("founders"),
	}
}

// buildProfile validates v and assembles the profile record. Every failing
// field is reported in the result; the profile is only meaningful when the
// result carries no errors.
func buildProfile(v formValues, now time.Time) (models.OrganizationProfile, *inputval.Result) {
	input := submitInput{
		Name:         v.Name,
		Tagline:      v.Tagline,
		About:        v.About,
		LogoURL:      v.LogoURL,
		WebsiteURL:   v.WebsiteURL,
		Location:     v.Location,
		Sector:       v.Sector,
		Batch:        v.Batch,
		FundingStage: v.FundingStage,
	}
	result := inputval.Validate(input)

	id := normalize.Slug(v.Name)
	if v.Name != "" && id == "" {
		result.Add("name", "Organization name", "Organization name must contain letters or digits.")
	}

	// Numeric fields stay strings on the record, like older dataset entries,
	// but must parse when present.
	if v.FoundingYear != "" {
		n, err := strconv.Atoi(v.FoundingYear)
		if err != nil || n < 1800 || n > now.Year()+1 {
			result.Add("founding_year", "Founding year",
				fmt.Sprintf("Founding year must be a year between 1800 and %d.", now.Year()+1))
		}
	}

	if v.TeamSize != "" {
		n, err := strconv.Atoi(v.TeamSize)
		if err != nil || n < 1 {
			result.Add("team_size", "Team size", "Team size must be a positive number.")
		}
	}

	founders := parseFounders(v.Founders, result)

	p := models.OrganizationProfile{
		ID:           id,
		Name:         v.Name,
		Tagline:      htmlsanitize.StripTags(v.Tagline),
		About:        htmlsanitize.Sanitize(v.About),
		LogoURL:      v.LogoURL,
		WebsiteURL:   v.WebsiteURL,
		Tags:         normalize.Tags(v.Tags),
		Location:     v.Location,
		Sector:       v.Sector,
		Batch:        v.Batch,
		FundingStage: v.FundingStage,
		FoundingYear: v.FoundingYear,
		TeamSize:     v.TeamSize,
		Accredited:   v.Accredited,
		Founders:     founders,
	}
	p.Normalize()
	return p, result
}

// parseFounders reads one founder per line, "Name | profile URL", with the
// URL optional.
func parseFounders(raw string, result *inputval.Result) []models.Founder {
	founders := []models.Founder{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, link := line, ""
		if i := strings.Index(line, "|"); i >= 0 {
			name = strings.TrimSpace(line[:i])
			link = strings.TrimSpace(line[i+1:])
		}
		if name == "" {
			result.Add("founders", "Founders", "Each founder line needs a name before the \"|\".")
			continue
		}
		if link != "" && !inputval.IsValidHTTPURL(link) {
			result.Add("founders", "Founders",
				fmt.Sprintf("Profile link for %q must be a valid http(s) URL.", name))
			continue
		}
		founders = append(founders, models.Founder{Name: name, LinkedInURL: link})
	}
	return founders
}
