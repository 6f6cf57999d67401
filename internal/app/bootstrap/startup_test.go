package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestValidateConfig_FileBackend(t *testing.T) {
	cfg := AppConfig{StorageBackend: "file", DatasetPath: "./data/showcase_data.json"}
	if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
		t.Errorf("valid file config rejected: %v", err)
	}
}

func TestValidateConfig_FileBackendNeedsPath(t *testing.T) {
	cfg := AppConfig{StorageBackend: "file"}
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("expected error for file backend without dataset_path")
	}
}

func TestValidateConfig_MongoBackend(t *testing.T) {
	cfg := AppConfig{StorageBackend: "mongo", MongoURI: "mongodb://localhost:27017"}
	if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
		t.Errorf("valid mongo config rejected: %v", err)
	}

	cfg.MongoURI = "localhost:27017"
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("expected error for malformed mongo URI")
	}
}

func TestValidateConfig_UnknownBackend(t *testing.T) {
	cfg := AppConfig{StorageBackend: "postgres"}
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("expected error for unknown storage backend")
	}
}

func TestConnectDB_FileBackend(t *testing.T) {
	cfg := AppConfig{
		StorageBackend: "file",
		DatasetPath:    filepath.Join(t.TempDir(), "showcase_data.json"),
	}

	deps, err := ConnectDB(context.Background(), nil, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	if deps.Profiles == nil {
		t.Fatal("expected a profile store")
	}
	if deps.MongoClient != nil {
		t.Error("file backend should not carry a mongo client")
	}
	if err := deps.Profiles.Ping(context.Background()); err != nil {
		t.Errorf("store ping failed: %v", err)
	}
}
