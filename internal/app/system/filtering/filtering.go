// Package filtering narrows the profile directory along fixed dimensions.
//
// It is a pure layer over an in-memory record slice: no state, no I/O.
// The list page parses its query string into a Criteria and applies it to
// whatever the profile store loaded.
package filtering

import (
	"net/url"
	"sort"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/impactmy/showcase/internal/domain/models"
)

// Filter dimension names, as they appear in list-page query parameters.
const (
	DimLocation     = "location"
	DimSector       = "sector"
	DimBatch        = "batch"
	DimFundingStage = "funding_stage"
	DimTags         = "tags"
)

// Dimensions lists every recognized filter dimension. Criteria keys outside
// this list impose no constraint; they are ignored rather than rejected.
var Dimensions = []string{DimLocation, DimSector, DimBatch, DimFundingStage, DimTags}

// Criteria maps a dimension name to its accepted values. A record matches
// when every present dimension accepts it; an empty Criteria matches all.
type Criteria map[string][]string

// IsEmpty reports whether the criteria impose no constraint.
func (c Criteria) IsEmpty() bool {
	for _, vals := range c {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// Has reports whether dim carries at least one accepted value.
func (c Criteria) Has(dim string) bool { return len(c[dim]) > 0 }

// Selected reports whether value is among the accepted values for dim,
// so filter controls can reflect the active criteria.
func (c Criteria) Selected(dim, value string) bool {
	want := text.Fold(value)
	for _, v := range c[dim] {
		if text.Fold(v) == want {
			return true
		}
	}
	return false
}

// ParseCriteria extracts filter criteria from list-page query parameters.
// Repeated parameters accumulate values; blank values and parameters that
// are not filter dimensions are dropped.
func ParseCriteria(vals url.Values) Criteria {
	c := Criteria{}
	for _, dim := range Dimensions {
		for _, raw := range vals[dim] {
			v := strings.TrimSpace(raw)
			if v == "" {
				continue
			}
			c[dim] = append(c[dim], v)
		}
	}
	return c
}

// Apply returns the records matching c, preserving input order. An empty
// criteria returns the input unchanged.
func Apply(records []models.OrganizationProfile, c Criteria) []models.OrganizationProfile {
	if c.IsEmpty() {
		return records
	}
	out := make([]models.OrganizationProfile, 0, len(records))
	for _, p := range records {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p satisfies every dimension present in c.
// Scalar dimensions match by case-folded set membership; tags match when
// the record's tag set intersects the accepted values.
func Matches(p models.OrganizationProfile, c Criteria) bool {
	for _, dim := range Dimensions {
		accepted := c[dim]
		if len(accepted) == 0 {
			continue
		}
		if dim == DimTags {
			if !intersects(p.Tags, accepted) {
				return false
			}
			continue
		}
		if !member(scalarValue(p, dim), accepted) {
			return false
		}
	}
	return true
}

func scalarValue(p models.OrganizationProfile, dim string) string {
	switch dim {
	case DimLocation:
		return p.Location
	case DimSector:
		return p.Sector
	case DimBatch:
		return p.Batch
	case DimFundingStage:
		return p.FundingStage
	}
	return ""
}

func member(value string, accepted []string) bool {
	v := text.Fold(value)
	for _, a := range accepted {
		if text.Fold(a) == v {
			return true
		}
	}
	return false
}

func intersects(tags, accepted []string) bool {
	for _, t := range tags {
		if member(t, accepted) {
			return true
		}
	}
	return false
}

// Options holds the distinct values per dimension across a record set,
// used to populate the list page's filter controls.
type Options struct {
	Locations     []string
	Sectors       []string
	Batches       []string
	FundingStages []string
	Tags          []string
}

// CollectOptions derives sorted distinct filter values from records.
func CollectOptions(records []models.OrganizationProfile) Options {
	return Options{
		Locations:     distinct(records, func(p models.OrganizationProfile) []string { return one(p.Location) }),
		Sectors:       distinct(records, func(p models.OrganizationProfile) []string { return one(p.Sector) }),
		Batches:       distinct(records, func(p models.OrganizationProfile) []string { return one(p.Batch) }),
		FundingStages: distinct(records, func(p models.OrganizationProfile) []string { return one(p.FundingStage) }),
		Tags:          distinct(records, func(p models.OrganizationProfile) []string { return p.Tags }),
	}
}

func one(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return []string{v}
}

func distinct(records []models.OrganizationProfile, pick func(models.OrganizationProfile) []string) []string {
	seen := map[string]string{}
	for _, p := range records {
		for _, v := range pick(p) {
			key := text.Fold(v)
			if _, ok := seen[key]; !ok {
				seen[key] = v
			}
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return text.Fold(out[i]) < text.Fold(out[j]) })
	return out
}
