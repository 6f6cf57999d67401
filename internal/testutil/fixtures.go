package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/normalize"
	"github.com/impactmy/showcase/internal/domain/models"
)

// TestContext returns a context with a sensible timeout for test operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// Fixtures provides helper methods for creating test data in a throwaway
// file-backed profile store.
type Fixtures struct {
	store *profiles.FileStore
	t     *testing.T
}

// NewFixtures creates a Fixtures instance over a store in t's temp dir.
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	store := profiles.NewFileStore(filepath.Join(t.TempDir(), "showcase_data.json"), zap.NewNop())
	return &Fixtures{store: store, t: t}
}

// Store returns the underlying store for direct access in tests.
func (f *Fixtures) Store() *profiles.FileStore {
	return f.store
}

// CreateProfile appends a minimal profile with the given name and returns it.
func (f *Fixtures) CreateProfile(ctx context.Context, name string) models.OrganizationProfile {
	f.t.Helper()

	p := models.OrganizationProfile{
		ID:       normalize.Slug(name),
		Name:     name,
		Tagline:  "Test tagline",
		Location: "Test City",
		Sector:   "education",
	}
	if err := f.store.Append(ctx, p); err != nil {
		f.t.Fatalf("CreateProfile(%s): %v", name, err)
	}

	got, err := f.store.GetByID(ctx, p.ID)
	if err != nil {
		f.t.Fatalf("CreateProfile(%s): read back: %v", name, err)
	}
	return got
}
