package showcase

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/impactmy/showcase/internal/app/resources"
	"github.com/impactmy/showcase/internal/app/system/viewdata"
	"github.com/impactmy/showcase/internal/domain/models"
)

// parseViewTemplates loads the feature's embedded templates together with
// the shared layout partials, so tests execute the real markup against the
// real view model and catch drift between the two.
func parseViewTemplates(t *testing.T) *template.Template {
	t.Helper()
	tpl := template.New("views")
	template.Must(tpl.ParseFS(resources.FS, "templates/*.gohtml"))
	template.Must(tpl.ParseFS(FS, "templates/*.gohtml"))
	return tpl
}

func TestShowcaseViewTemplateRenders(t *testing.T) {
	data := viewData{
		BaseVM: viewdata.BaseVM{
			SiteName:    models.DefaultSiteName,
			Title:       "Acme Learning",
			CurrentPath: "/company/acme-learning",
		},
		Profile: models.OrganizationProfile{
			ID:       "acme-learning",
			Name:     "Acme Learning",
			Tagline:  "Learning for every kampung",
			Location: "Penang",
			Sector:   "education",
			Tags:     []string{"edtech"},
			Founders: []models.Founder{{Name: "Aisha Rahman", LinkedInURL: "https://linkedin.com/in/aisha"}},
			Jobs:     []models.JobPosting{{Title: "Field Trainer", ApplyURL: "https://acme.example/jobs"}},
			News:     []models.NewsItem{{Title: "Acme wins literacy grant", URL: "https://news.example/acme"}},
		},
		AboutHTML:       template.HTML("<p>Acme trains teachers.</p>"),
		AnalysisEnabled: true,
	}

	var buf bytes.Buffer
	if err := parseViewTemplates(t).ExecuteTemplate(&buf, "showcase_view", data); err != nil {
		t.Fatalf("render showcase_view: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Acme Learning",
		"Field Trainer",
		"Acme wins literacy grant",
		"Aisha Rahman",
		"/company/acme-learning/analysis",
		"<p>Acme trains teachers.</p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestShowcaseViewTemplateOmitsEmptySections(t *testing.T) {
	data := viewData{
		BaseVM: viewdata.BaseVM{SiteName: models.DefaultSiteName, Title: "Bare Org", CurrentPath: "/company/bare-org"},
		Profile: models.OrganizationProfile{
			ID:   "bare-org",
			Name: "Bare Org",
		},
	}

	var buf bytes.Buffer
	if err := parseViewTemplates(t).ExecuteTemplate(&buf, "showcase_view", data); err != nil {
		t.Fatalf("render showcase_view: %v", err)
	}

	out := buf.String()
	for _, absent := range []string{"Open roles", "In the news", "/analysis"} {
		if strings.Contains(out, absent) {
			t.Errorf("rendered page should not contain %q", absent)
		}
	}
	if !strings.Contains(out, "No description provided.") {
		t.Error("missing empty-about placeholder")
	}
}
