package profiles

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/impactmy/showcase/internal/domain/models"
)

// newTestMongoStore connects to the MongoDB named by SHOWCASE_TEST_MONGO_URI
// and returns a store over a throwaway database. Tests are skipped when the
// variable is unset so the suite runs without a live server.
func newTestMongoStore(t *testing.T) *MongoStore {
	t.Helper()

	uri := os.Getenv("SHOWCASE_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("SHOWCASE_TEST_MONGO_URI not set; skipping MongoDB store tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("mongo connect failed: %v", err)
	}

	db := client.Database("showcase_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return NewMongoStore(client, db)
}

func TestMongoStore_AppendAndLoadAll(t *testing.T) {
	s := newTestMongoStore(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		if err := s.Append(ctx, models.OrganizationProfile{ID: id, Name: id}); err != nil {
			t.Fatalf("Append(%s) failed: %v", id, err)
		}
	}

	records, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"first", "second", "third"} {
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %q, want %q", i, records[i].ID, want)
		}
	}
}

func TestMongoStore_DuplicateIdentifier(t *testing.T) {
	s := newTestMongoStore(t)
	ctx := context.Background()

	if err := s.Append(ctx, models.OrganizationProfile{ID: "acme", Name: "Acme"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	err := s.Append(ctx, models.OrganizationProfile{ID: "acme", Name: "Acme Again"})
	if !errors.Is(err, ErrDuplicateIdentifier) {
		t.Errorf("expected ErrDuplicateIdentifier, got %v", err)
	}
}

func TestMongoStore_GetByID(t *testing.T) {
	s := newTestMongoStore(t)
	ctx := context.Background()

	if err := s.Append(ctx, models.OrganizationProfile{ID: "acme", Name: "Acme", Tags: []string{"edtech"}}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := s.GetByID(ctx, "acme")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Acme" {
		t.Errorf("Name = %q, want %q", got.Name, "Acme")
	}

	_, err = s.GetByID(ctx, "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
