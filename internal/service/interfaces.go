// Package service defines the contracts between the CLI layer and the
// persistence layer.
package service

import (
	"context"

	"github.com/glei1339/FinLens/internal/model"
)

// Store is the persistence contract. A profile's transactions, rules,
// custom categories, and ingested files are saved and loaded as one unit:
// the ingestion pipeline is copy-on-write over ProfileState, so the store
// replaces a profile's derived data wholesale rather than patching rows.
type Store interface {
	// Profile operations
	CreateProfile(ctx context.Context, profile model.Profile) error
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	GetProfile(ctx context.Context, id string) (*model.Profile, error)
	FindProfileByName(ctx context.Context, name string) (*model.Profile, error)
	RenameProfile(ctx context.Context, id, name string) error
	DeleteProfile(ctx context.Context, id string) error

	// State operations
	LoadState(ctx context.Context, profileID string) (*model.ProfileState, error)
	SaveState(ctx context.Context, state *model.ProfileState) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
