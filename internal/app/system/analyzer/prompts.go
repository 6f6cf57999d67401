package analyzer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/impactmy/showcase/internal/domain/models"
)

func categorizePrompt(p models.OrganizationProfile) string {
	var b strings.Builder
	b.WriteString("Based on the following organization information, provide:\n")
	b.WriteString("1. A `primary_category` (e.g., \"EdTech\", \"AgriTech\", \"Circular Economy\").\n")
	b.WriteString("2. A list of 2-4 `sub_categories`.\n")
	b.WriteString("3. A list of 3-5 relevant `keywords`.\n\n")
	b.WriteString("Respond ONLY with a JSON object with the exact structure:\n")
	b.WriteString("{\"primary_category\": \"...\", \"sub_categories\": [\"...\"], \"keywords\": [\"...\"]}\n\n")
	b.WriteString("Organization Information:\n---\n")
	writeProfileContext(&b, p)
	b.WriteString("---\n")
	return b.String()
}

func outlookPrompt(p models.OrganizationProfile, cat Categorization) string {
	var b strings.Builder
	b.WriteString("Based on the organization's profile and its categorization, provide a ")
	b.WriteString("qualitative analysis of its growth outlook.\n\n")
	b.WriteString("Respond ONLY with a JSON object with the following exact structure:\n")
	b.WriteString("{\n")
	b.WriteString("  \"growth_potential_assessment\": \"High/Medium/Low/Uncertain\",\n")
	b.WriteString("  \"key_factors\": [\"...\"],\n")
	b.WriteString("  \"potential_opportunities\": [\"...\"],\n")
	b.WriteString("  \"potential_risks\": [\"...\"],\n")
	b.WriteString("  \"overall_outlook_summary\": \"A concise 2-4 sentence summary.\"\n")
	b.WriteString("}\n\n")
	b.WriteString("Organization Profile:\n---\n")
	writeProfileContext(&b, p)
	fmt.Fprintf(&b, "Primary Category: %s\n", cat.PrimaryCategory)
	if len(cat.SubCategories) > 0 {
		fmt.Fprintf(&b, "Sub-categories: %s\n", strings.Join(cat.SubCategories, ", "))
	}
	b.WriteString("---\n")
	return b.String()
}

func writeProfileContext(b *strings.Builder, p models.OrganizationProfile) {
	fmt.Fprintf(b, "Name: %s\n", p.Name)
	if p.Tagline != "" {
		fmt.Fprintf(b, "Tagline: %s\n", p.Tagline)
	}
	if p.Sector != "" {
		fmt.Fprintf(b, "Sector: %s\n", p.Sector)
	}
	if p.Location != "" {
		fmt.Fprintf(b, "Location: %s\n", p.Location)
	}
	if p.FoundingYear != "" {
		fmt.Fprintf(b, "Founded: %s\n", p.FoundingYear)
	}
	if p.FundingStage != "" {
		fmt.Fprintf(b, "Funding Stage: %s\n", p.FundingStage)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(b, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if p.About != "" {
		fmt.Fprintf(b, "About: %s\n", p.About)
	}
}

var markdownJSON = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// decodeModelJSON decodes a JSON-mode response. Some models still wrap the
// object in a markdown fence, so that is tried as a fallback.
func decodeModelJSON(text string, out any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("empty response")
	}

	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}
	if m := markdownJSON.FindStringSubmatch(text); m != nil {
		if err := json.Unmarshal([]byte(m[1]), out); err == nil {
			return nil
		}
	}
	return fmt.Errorf("response is not valid JSON")
}
