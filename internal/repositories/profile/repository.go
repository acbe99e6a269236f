// Package profile provides the interface for player profile persistence
package profile

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/KirkDiggler/critter-arena/internal/repositories/profile Repository

import (
	"context"

	"github.com/KirkDiggler/critter-arena/internal/entities"
)

// Repository defines the interface for profile persistence.
//
// Profiles carry a version. Save only succeeds when the stored version still
// equals the version of the profile being saved, and bumps it by one.
type Repository interface {
	// Get retrieves a profile, creating and persisting a fresh one if the
	// user has none yet
	// Returns errors.InvalidArgument for empty user IDs
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the whole profile atomically
	// Returns errors.InvalidArgument for a nil profile or empty user ID
	// Returns errors.NotFound if the profile was never created
	// Returns errors.Aborted if the profile changed since it was loaded
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for getting a profile
type GetInput struct {
	UserID string
}

// GetOutput defines the output for getting a profile
type GetOutput struct {
	Profile *entities.Profile
	// Created is true when this call created the profile
	Created bool
}

// SaveInput defines the input for saving a profile
type SaveInput struct {
	Profile *entities.Profile
}

// SaveOutput defines the output for saving a profile
type SaveOutput struct {
	// Profile is the stored profile with its new version
	Profile *entities.Profile
}

const (
	errProfileNil     = "profile cannot be nil"
	errUserIDEmpty    = "user ID cannot be empty"
	errVersionChanged = "profile %s changed since it was loaded (version %d, stored %d)"
)
