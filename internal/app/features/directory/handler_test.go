package directory_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/impactmy/showcase/internal/app/features/directory"
	"github.com/impactmy/showcase/internal/app/system/flash"
	"github.com/impactmy/showcase/internal/testutil"
)

func newTestHandler(t *testing.T) (*directory.Handler, *testutil.Fixtures) {
	t.Helper()
	logger := zap.NewNop()
	fx := testutil.NewFixtures(t)
	fm := flash.NewManager("test-secret", "showcase_session", false, logger)
	return directory.NewHandler(fx.Store(), fm, logger), fx
}

func serveList(t *testing.T, h *directory.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Logf("recovered from panic (expected - template not initialized): %v", r)
			}
		}()
		h.ServeList(rec, req)
	}()
	return rec
}

func TestServeList_EmptyDataset(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := serveList(t, handler, testutil.NewRequest("GET", "/"))

	if rec.Code == http.StatusServiceUnavailable {
		t.Errorf("empty dataset must not be an error, got status %d", rec.Code)
	}
}

func TestServeList_WithFilters(t *testing.T) {
	handler, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateProfile(ctx, "First Org")
	fx.CreateProfile(ctx, "Second Org")

	rec := serveList(t, handler, testutil.NewRequest("GET", "/?sector=education&q=first"))

	if rec.Code == http.StatusServiceUnavailable {
		t.Errorf("filtered list must not be an error, got status %d", rec.Code)
	}
}

func TestServeList_CorruptDataset(t *testing.T) {
	handler, fx := newTestHandler(t)

	if err := os.WriteFile(fx.Store().Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt dataset: %v", err)
	}

	rec := serveList(t, handler, testutil.NewRequest("GET", "/"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestServeList_CorruptDatasetHTMX(t *testing.T) {
	handler, fx := newTestHandler(t)

	if err := os.WriteFile(fx.Store().Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt dataset: %v", err)
	}

	req := testutil.NewRequest("GET", "/")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "directory-table-wrap")

	// HTMX requests get a plain-text error, no template involved
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
}
