// Package inputval validates form input structs declaratively.
//
// Rules are declared with struct tags and every failing field is collected,
// so a form can report all of its problems in a single pass instead of one
// at a time:
//
//	type submitInput struct {
//		Name    string `validate:"required,max=200" form:"name" label:"Name"`
//		LogoURL string `validate:"url,max=500" form:"logo_url" label:"Logo URL"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//		for _, fe := range result.Fields() { ... }
//	}
//
// Supported rules: required, max=N, url (well-formed http(s) URL or empty).
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FieldError describes one failing field.
type FieldError struct {
	Field   string // form field name
	Label   string // human-readable label
	Message string
}

// Result holds the outcome of a Validate call.
type Result struct {
	errs []FieldError
}

// HasErrors reports whether any field failed.
func (r *Result) HasErrors() bool { return len(r.errs) > 0 }

// Fields returns all failing fields in declaration order.
func (r *Result) Fields() []FieldError { return r.errs }

// First returns the first error message, or "" when validation passed.
func (r *Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0].Message
}

// FieldNames returns the form names of all failing fields.
func (r *Result) FieldNames() []string {
	names := make([]string, 0, len(r.errs))
	for _, fe := range r.errs {
		names = append(names, fe.Field)
	}
	return names
}

// ErrorFor returns the message for a specific form field, or "".
func (r *Result) ErrorFor(field string) string {
	for _, fe := range r.errs {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Add appends an error for a field. Handlers use this to fold in failures
// that the tag rules cannot express (duplicate identifiers, etc.).
func (r *Result) Add(field, label, message string) {
	r.errs = append(r.errs, FieldError{Field: field, Label: label, Message: message})
}

// Validate checks every exported string field of the input struct against
// its validate tag and returns all failures.
func Validate(input any) *Result {
	res := &Result{}
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return res
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type.Kind() != reflect.String {
			continue
		}
		rules := sf.Tag.Get("validate")
		if rules == "" {
			continue
		}

		value := v.Field(i).String()
		field := sf.Tag.Get("form")
		if field == "" {
			field = strings.ToLower(sf.Name)
		}
		label := sf.Tag.Get("label")
		if label == "" {
			label = sf.Name
		}

		for _, rule := range strings.Split(rules, ",") {
			if msg := check(rule, value, label); msg != "" {
				res.Add(field, label, msg)
				break // one message per field is enough
			}
		}
	}
	return res
}

func check(rule, value, label string) string {
	switch {
	case rule == "required":
		if strings.TrimSpace(value) == "" {
			return fmt.Sprintf("%s is required.", label)
		}
	case rule == "url":
		if strings.TrimSpace(value) != "" && !IsValidHTTPURL(value) {
			return fmt.Sprintf("%s must be a valid http(s) URL.", label)
		}
	case strings.HasPrefix(rule, "max="):
		n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
		if err == nil && len(value) > n {
			return fmt.Sprintf("%s must be at most %d characters.", label, n)
		}
	}
	return ""
}
