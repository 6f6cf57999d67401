package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/impactmy/showcase/internal/app/features/health"
	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/domain/models"
)

// failingStore always reports storage down.
type failingStore struct{}

func (failingStore) LoadAll(context.Context) ([]models.OrganizationProfile, error) {
	return nil, errors.New("disk gone")
}
func (failingStore) GetByID(context.Context, string) (models.OrganizationProfile, error) {
	return models.OrganizationProfile{}, errors.New("disk gone")
}
func (failingStore) Append(context.Context, models.OrganizationProfile) error {
	return errors.New("disk gone")
}
func (failingStore) Ping(context.Context) error { return errors.New("disk gone") }

func TestServe_StorageAvailable(t *testing.T) {
	store := profiles.NewFileStore(filepath.Join(t.TempDir(), "showcase_data.json"), zap.NewNop())
	handler := health.NewHandler(store, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", contentType)
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
	if resp["storage"] != "available" {
		t.Errorf("expected storage available, got %v", resp["storage"])
	}
}

func TestServe_StorageUnavailable(t *testing.T) {
	handler := health.NewHandler(failingStore{}, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "error" {
		t.Errorf("expected status error, got %v", resp["status"])
	}
	if resp["storage"] != "unavailable" {
		t.Errorf("expected storage unavailable, got %v", resp["storage"])
	}
}
