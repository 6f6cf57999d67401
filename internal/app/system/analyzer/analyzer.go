// Package analyzer produces AI-assisted categorization and outlook reports
// for organization profiles via the Gemini API. The feature is optional: a
// nil *Analyzer means no API key was configured and callers render an
// unavailable notice instead.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/impactmy/showcase/internal/domain/models"
)

const (
	defaultModel = "gemini-2.0-flash"

	maxAttempts   = 3
	retryWaitMin  = 2 * time.Second
	retryWaitMax  = 10 * time.Second
	maxOutputToks = 2048
)

// Categorization is the model's classification of an organization.
type Categorization struct {
	PrimaryCategory string   `json:"primary_category"`
	SubCategories   []string `json:"sub_categories"`
	Keywords        []string `json:"keywords"`
}

// Outlook is the model's qualitative growth assessment.
type Outlook struct {
	Assessment    string   `json:"growth_potential_assessment"`
	KeyFactors    []string `json:"key_factors"`
	Opportunities []string `json:"potential_opportunities"`
	Risks         []string `json:"potential_risks"`
	Summary       string   `json:"overall_outlook_summary"`
}

// Report bundles both analyses for one profile.
type Report struct {
	Categorization Categorization
	Outlook        Outlook
	GeneratedAt    time.Time
}

// Fallback values used when a call fails or the response cannot be parsed,
// so a partial report still renders.
var (
	fallbackCategorization = Categorization{
		PrimaryCategory: "Uncategorized",
		SubCategories:   []string{},
		Keywords:        []string{},
	}
	fallbackOutlook = Outlook{
		Assessment:    "Uncertain",
		KeyFactors:    []string{},
		Opportunities: []string{},
		Risks:         []string{},
		Summary:       "Outlook unavailable: the analysis service did not return a usable response.",
	}
)

// Analyzer wraps a Gemini client configured for JSON responses.
type Analyzer struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// New creates an Analyzer, or returns (nil, nil) when apiKey is empty so
// the rest of the app keeps working without the feature.
func New(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Analyzer, error) {
	if apiKey == "" {
		logger.Info("no Gemini API key configured; profile analysis disabled")
		return nil, nil
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Analyzer{client: client, model: model, log: logger}, nil
}

// Enabled reports whether analysis is available.
func (a *Analyzer) Enabled() bool { return a != nil }

// Analyze runs both analyses for p. Each section degrades to its fallback
// independently, so one failed call never blanks the whole report. The
// returned error is non-nil only when every section failed.
func (a *Analyzer) Analyze(ctx context.Context, p models.OrganizationProfile) (Report, error) {
	report := Report{GeneratedAt: time.Now().UTC()}

	var catErr, outErr error

	report.Categorization, catErr = a.Categorize(ctx, p)
	if catErr != nil {
		a.log.Warn("categorization failed", zap.String("profile", p.ID), zap.Error(catErr))
		report.Categorization = fallbackCategorization
	}

	report.Outlook, outErr = a.AssessOutlook(ctx, p, report.Categorization)
	if outErr != nil {
		a.log.Warn("outlook assessment failed", zap.String("profile", p.ID), zap.Error(outErr))
		report.Outlook = fallbackOutlook
	}

	if catErr != nil && outErr != nil {
		return report, fmt.Errorf("analysis unavailable: %w", catErr)
	}
	return report, nil
}

// Categorize asks the model to classify the organization.
func (a *Analyzer) Categorize(ctx context.Context, p models.OrganizationProfile) (Categorization, error) {
	var out Categorization
	if err := a.generateJSON(ctx, categorizePrompt(p), &out); err != nil {
		return Categorization{}, err
	}
	if out.PrimaryCategory == "" {
		return Categorization{}, fmt.Errorf("response missing primary_category")
	}
	return out, nil
}

// AssessOutlook asks the model for a growth outlook, feeding the earlier
// categorization back in as context.
func (a *Analyzer) AssessOutlook(ctx context.Context, p models.OrganizationProfile, cat Categorization) (Outlook, error) {
	var out Outlook
	if err := a.generateJSON(ctx, outlookPrompt(p, cat), &out); err != nil {
		return Outlook{}, err
	}
	if out.Assessment == "" {
		return Outlook{}, fmt.Errorf("response missing growth_potential_assessment")
	}
	return out, nil
}

// generateJSON calls the model in JSON mode and decodes the response into
// out, retrying transient failures with exponential backoff.
func (a *Analyzer) generateJSON(ctx context.Context, prompt string, out any) error {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.4),
		TopP:             genai.Ptr[float32](1),
		MaxOutputTokens:  maxOutputToks,
		ResponseMIMEType: "application/json",
	}

	var lastErr error
	wait := retryWaitMin
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
			if wait > retryWaitMax {
				wait = retryWaitMax
			}
		}

		resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, cfg)
		if err != nil {
			lastErr = err
			a.log.Warn("model call failed",
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		if err := decodeModelJSON(resp.Text(), out); err != nil {
			lastErr = err
			a.log.Warn("model response unparsable",
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}
		return nil
	}
	return fmt.Errorf("model call failed after %d attempts: %w", maxAttempts, lastErr)
}
