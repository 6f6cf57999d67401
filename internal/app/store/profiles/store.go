// Package profiles owns the authoritative organization-profile dataset.
//
// Two backends implement the same contract: a flat JSON file (the default,
// matching the showcase_data.json layout the dataset ships in) and a MongoDB
// collection for deployments that already run one. Everything above this
// package sees read-only snapshots; new records enter only through Append.
package profiles

import (
	"context"
	"errors"

	"github.com/impactmy/showcase/internal/domain/models"
)

var (
	// ErrNotFound is returned when no profile has the requested identifier.
	ErrNotFound = errors.New("profile not found")

	// ErrDuplicateIdentifier is returned when an appended profile's
	// identifier collides with an existing record.
	ErrDuplicateIdentifier = errors.New("a profile with this identifier already exists")

	// ErrDatasetCorrupt is returned when the persisted dataset cannot be
	// parsed. The request fails; the process keeps serving.
	ErrDatasetCorrupt = errors.New("profile dataset is corrupt")
)

// Store is the profile dataset contract.
type Store interface {
	// LoadAll returns every profile in persisted order.
	LoadAll(ctx context.Context) ([]models.OrganizationProfile, error)

	// GetByID returns the profile with the given identifier, or ErrNotFound.
	GetByID(ctx context.Context, id string) (models.OrganizationProfile, error)

	// Append persists a new profile. It fails with ErrDuplicateIdentifier
	// when the identifier is taken, and leaves the dataset untouched on any
	// failure.
	Append(ctx context.Context, p models.OrganizationProfile) error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}
