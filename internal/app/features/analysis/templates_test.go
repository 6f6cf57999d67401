package analysis

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/impactmy/showcase/internal/app/resources"
	"github.com/impactmy/showcase/internal/app/system/analyzer"
	"github.com/impactmy/showcase/internal/app/system/viewdata"
	"github.com/impactmy/showcase/internal/domain/models"
)

func parseViewTemplates(t *testing.T) *template.Template {
	t.Helper()
	tpl := template.New("views")
	template.Must(tpl.ParseFS(resources.FS, "templates/*.gohtml"))
	template.Must(tpl.ParseFS(FS, "templates/*.gohtml"))
	return tpl
}

func testViewData() viewData {
	return viewData{
		BaseVM: viewdata.BaseVM{
			SiteName:    models.DefaultSiteName,
			Title:       "Acme Learning analysis",
			CurrentPath: "/company/acme-learning/analysis",
		},
		Profile: models.OrganizationProfile{ID: "acme-learning", Name: "Acme Learning"},
	}
}

func TestAnalysisViewTemplateRendersReport(t *testing.T) {
	data := testViewData()
	data.Enabled = true
	data.Report = analyzer.Report{
		Categorization: analyzer.Categorization{
			PrimaryCategory: "Education",
			SubCategories:   []string{"Teacher Training"},
			Keywords:        []string{"literacy", "rural"},
		},
		Outlook: analyzer.Outlook{
			Assessment: "Moderate Growth",
			KeyFactors: []string{"Grant funding secured"},
			Summary:    "Steady demand in underserved districts.",
		},
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := parseViewTemplates(t).ExecuteTemplate(&buf, "analysis_view", data); err != nil {
		t.Fatalf("render analysis_view: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Education",
		"Teacher Training",
		"Moderate Growth",
		"Grant funding secured",
		"Steady demand in underserved districts.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestAnalysisViewTemplateDisabledNotice(t *testing.T) {
	var buf bytes.Buffer
	if err := parseViewTemplates(t).ExecuteTemplate(&buf, "analysis_view", testViewData()); err != nil {
		t.Fatalf("render analysis_view: %v", err)
	}
	if !strings.Contains(buf.String(), "AI analysis is not available on this deployment.") {
		t.Error("rendered page missing the disabled notice")
	}
}
