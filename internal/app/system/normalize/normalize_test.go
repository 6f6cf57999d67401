package normalize

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Acme", "Acme"},
		{"  Acme  ", "Acme"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Text(tt.input)
			if got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Acme", "acme"},
		{"Acme2", "acme2"},
		{"Acme Social Ventures", "acme-social-ventures"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Dots.And/Slashes", "dots-and-slashes"},
		{"--weird--input--", "weird-input"},
		{"UPPER case", "upper-case"},
		{"Acme Café 2", "acme-cafe-2"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slug(tt.input)
			if got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "edtech,health", []string{"edtech", "health"}},
		{"trims spaces", " edtech , health ", []string{"edtech", "health"}},
		{"drops empties", "edtech,,health,", []string{"edtech", "health"}},
		{"dedupes case-insensitively", "EdTech,edtech,health", []string{"EdTech", "health"}},
		{"empty input", "", []string{}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tags(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tags(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
