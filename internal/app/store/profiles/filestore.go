package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/impactmy/showcase/internal/domain/models"
)

// FileStore keeps the whole dataset in one JSON array file.
//
// Append is a read-modify-write of the full file, serialized by a mutex so
// two concurrent submissions cannot drop each other's records. The rewrite
// goes through a uniquely named temp file in the same directory followed by
// a rename, so a failed write never leaves a partial dataset behind.
type FileStore struct {
	path string
	log  *zap.Logger

	mu sync.Mutex // serializes Append's read-modify-write
}

// NewFileStore creates a store over the JSON dataset at path. A missing
// file reads as an empty dataset; it is created on first append.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, log: logger}
}

// Path returns the dataset file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) LoadAll(ctx context.Context) ([]models.OrganizationProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.read()
}

func (s *FileStore) GetByID(ctx context.Context, id string) (models.OrganizationProfile, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return models.OrganizationProfile{}, err
	}
	for _, p := range records {
		if p.ID == id {
			return p, nil
		}
	}
	return models.OrganizationProfile{}, ErrNotFound
}

func (s *FileStore) Append(ctx context.Context, p models.OrganizationProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	for _, existing := range records {
		if existing.ID == p.ID {
			return ErrDuplicateIdentifier
		}
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Normalize()
	records = append(records, p)

	return s.write(records)
}

func (s *FileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("stat dataset: %w", err)
	}
	return nil
}

func (s *FileStore) read() ([]models.OrganizationProfile, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.OrganizationProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []models.OrganizationProfile
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Error("dataset parse failed", zap.String("path", s.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDatasetCorrupt, err)
	}
	for i := range records {
		records[i].Normalize()
	}
	return records, nil
}

// write replaces the dataset atomically. The temp file carries a uuid so
// concurrent processes pointed at the same directory cannot collide.
func (s *FileStore) write(records []models.OrganizationProfile) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
