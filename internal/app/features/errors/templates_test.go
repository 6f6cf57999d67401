package errors

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/impactmy/showcase/internal/app/resources"
	"github.com/impactmy/showcase/internal/domain/models"
)

func TestErrorPageTemplateRenders(t *testing.T) {
	tpl := template.New("views")
	template.Must(tpl.ParseFS(resources.FS, "templates/*.gohtml"))
	template.Must(tpl.ParseFS(FS, "templates/*.gohtml"))

	data := pageData{
		SiteName:    models.DefaultSiteName,
		Title:       "Not found",
		Message:     "That organization is not listed.",
		BackURL:     "/",
		CurrentPath: "/company/nope",
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "error_page", data); err != nil {
		t.Fatalf("render error_page: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "That organization is not listed.") {
		t.Error("rendered page missing the message")
	}
	if !strings.Contains(out, `href="/"`) {
		t.Error("rendered page missing the back link")
	}
}
