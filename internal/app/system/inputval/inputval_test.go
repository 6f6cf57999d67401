package inputval

import (
	"reflect"
	"strings"
	"testing"
)

type sampleInput struct {
	Name    string `validate:"required,max=20" form:"name" label:"Name"`
	LogoURL string `validate:"url" form:"logo_url" label:"Logo URL"`
	Note    string `validate:"max=5" form:"note" label:"Note"`
}

func TestValidate_AllPass(t *testing.T) {
	result := Validate(sampleInput{Name: "Acme", LogoURL: "https://acme.example/logo.png", Note: "ok"})
	if result.HasErrors() {
		t.Errorf("expected no errors, got %v", result.Fields())
	}
}

func TestValidate_CollectsEveryFailingField(t *testing.T) {
	result := Validate(sampleInput{Name: "", LogoURL: "not a url", Note: "too long note"})
	if !result.HasErrors() {
		t.Fatal("expected errors")
	}

	want := []string{"name", "logo_url", "note"}
	if got := result.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}

func TestValidate_RequiredRejectsWhitespace(t *testing.T) {
	result := Validate(sampleInput{Name: "   "})
	if result.ErrorFor("name") == "" {
		t.Error("expected whitespace-only name to fail required")
	}
}

func TestValidate_EmptyOptionalURLPasses(t *testing.T) {
	result := Validate(sampleInput{Name: "Acme", LogoURL: ""})
	if result.ErrorFor("logo_url") != "" {
		t.Errorf("empty URL should pass, got %q", result.ErrorFor("logo_url"))
	}
}

func TestValidate_FirstAndErrorFor(t *testing.T) {
	result := Validate(sampleInput{Name: ""})
	if !strings.Contains(result.First(), "Name") {
		t.Errorf("First() = %q, want message mentioning Name", result.First())
	}
	if result.ErrorFor("missing") != "" {
		t.Error("ErrorFor on a passing field should be empty")
	}
}

func TestResult_Add(t *testing.T) {
	result := Validate(sampleInput{Name: "Acme"})
	result.Add("name", "Name", "An organization with this name already exists.")
	if !result.HasErrors() {
		t.Fatal("expected error after Add")
	}
	if result.ErrorFor("name") == "" {
		t.Error("expected added error to be reported for name")
	}
}
