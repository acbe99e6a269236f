package profile

import (
	"context"
	"sync"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Profile
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]*entities.Profile),
		clock: c,
	}
}

// Get retrieves a profile, creating it on first use
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	r.mu.RLock()
	p, exists := r.store[input.UserID]
	r.mu.RUnlock()
	if exists {
		return &GetOutput{Profile: p.Clone()}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, exists := r.store[input.UserID]; exists {
		return &GetOutput{Profile: p.Clone()}, nil
	}
	fresh := entities.NewProfile(input.UserID, r.clock.Now())
	r.store[input.UserID] = fresh

	return &GetOutput{Profile: fresh.Clone(), Created: true}, nil
}

// Save replaces the stored profile if its version is unchanged
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.store[input.Profile.UserID]
	if !exists {
		return nil, errors.NotFoundf("profile %s not found", input.Profile.UserID)
	}
	if stored.Version != input.Profile.Version {
		return nil, errors.Abortedf(errVersionChanged, input.Profile.UserID, input.Profile.Version, stored.Version)
	}

	next := prepare(input.Profile, r.clock)
	r.store[next.UserID] = next

	return &SaveOutput{Profile: next.Clone()}, nil
}

var _ Repository = (*InMemoryRepository)(nil)
