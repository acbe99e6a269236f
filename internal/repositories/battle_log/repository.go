// Package battlelog keeps the recent battle history of each player
package battlelog

//go:generate mockgen -destination=mock/mock_repository.go -package=battlelogmock github.com/KirkDiggler/critter-arena/internal/repositories/battle_log Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/critter-arena/internal/entities"
)

// Retention limits
const (
	MaxEntries = 20
	TTL        = 7 * 24 * time.Hour
)

// Repository stores battle outcomes newest first
type Repository interface {
	// Append records an outcome and trims the history to MaxEntries
	// Returns errors.InvalidArgument for a nil outcome or empty user ID
	// Returns errors.Internal for storage failures
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns up to Limit recent outcomes, newest first
	// Returns errors.InvalidArgument for an empty user ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AppendInput defines the input for recording a battle
type AppendInput struct {
	Outcome *entities.BattleOutcome
}

// AppendOutput defines the output for recording a battle
type AppendOutput struct{}

// ListInput defines the input for listing battles. Limit <= 0 or above
// MaxEntries returns everything kept.
type ListInput struct {
	UserID string
	Limit  int
}

// ListOutput defines the output for listing battles
type ListOutput struct {
	Outcomes []*entities.BattleOutcome
}
