// internal/domain/models/profile.go
package models

import "time"

// DefaultSiteName is used when no site name is configured.
const DefaultSiteName = "Impact Showcase"

// OrganizationProfile is a single directory entry: one social enterprise.
//
// The ID is a slug derived from the name at submission time and is unique
// across the whole dataset. All list-valued fields are kept non-nil so
// templates can range over them without guards; call Normalize after
// decoding from storage.
type OrganizationProfile struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`

	Tagline    string `json:"tagline,omitempty" bson:"tagline,omitempty"`
	About      string `json:"about,omitempty" bson:"about,omitempty"`
	LogoURL    string `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	WebsiteURL string `json:"website_url,omitempty" bson:"website_url,omitempty"`

	// Filter dimensions.
	Tags         []string `json:"tags" bson:"tags"`
	Location     string   `json:"location,omitempty" bson:"location,omitempty"`
	Sector       string   `json:"sector,omitempty" bson:"sector,omitempty"`
	Batch        string   `json:"batch,omitempty" bson:"batch,omitempty"`
	FundingStage string   `json:"funding_stage,omitempty" bson:"funding_stage,omitempty"`

	FoundingYear string `json:"founding_year,omitempty" bson:"founding_year,omitempty"`
	TeamSize     string `json:"team_size,omitempty" bson:"team_size,omitempty"`
	Accredited   bool   `json:"accredited" bson:"accredited"`

	Founders []Founder    `json:"founders" bson:"founders"`
	Jobs     []JobPosting `json:"jobs" bson:"jobs"`
	News     []NewsItem   `json:"news" bson:"news"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Founder is one member of the founding team.
type Founder struct {
	Name        string `json:"name" bson:"name"`
	LinkedInURL string `json:"linkedin_url,omitempty" bson:"linkedin_url,omitempty"`
}

// JobPosting is a free-form opening listed on the showcase page.
type JobPosting struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ApplyURL    string `json:"apply_url,omitempty" bson:"apply_url,omitempty"`
}

// NewsItem is a press mention or update shown on the showcase page.
type NewsItem struct {
	Title   string `json:"title" bson:"title"`
	URL     string `json:"url,omitempty" bson:"url,omitempty"`
	Summary string `json:"summary,omitempty" bson:"summary,omitempty"`
	Date    string `json:"date,omitempty" bson:"date,omitempty"`
}

// Normalize replaces nil containers with empty ones. Records decoded from
// older datasets may omit these fields entirely.
func (p *OrganizationProfile) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Founders == nil {
		p.Founders = []Founder{}
	}
	if p.Jobs == nil {
		p.Jobs = []JobPosting{}
	}
	if p.News == nil {
		p.News = []NewsItem{}
	}
}

// HasJobs reports whether the showcase page should render the jobs section.
// Value receiver: templates call this on profile values.
func (p OrganizationProfile) HasJobs() bool { return len(p.Jobs) > 0 }

// HasNews reports whether the showcase page should render the news section.
func (p OrganizationProfile) HasNews() bool { return len(p.News) > 0 }
