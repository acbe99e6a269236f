package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/repositories/profile"
)

// Default roster used by CreateTestProfile: one common creature per role
const (
	TestTank    = "turtle"
	TestAttack  = "fox"
	TestSupport = "rabbit"
)

// CreateTestProfile creates a battle-ready profile with a full common team
// and a spare attacker
func CreateTestProfile(userID string, now time.Time) *entities.Profile {
	p := entities.NewProfile(userID, now)
	p.Creatures = map[string]int{TestTank: 1, TestAttack: 2, TestSupport: 1}
	p.Team = entities.Team{TestTank, TestAttack, TestSupport}
	return p
}

// SeedProfile loads or creates a stored profile, applies fn and saves it
func SeedProfile(t *testing.T, repo profile.Repository, userID string, fn func(p *entities.Profile)) *entities.Profile {
	t.Helper()
	ctx := context.Background()

	out, err := repo.Get(ctx, profile.GetInput{UserID: userID})
	require.NoError(t, err, "failed to load profile")

	fn(out.Profile)
	saved, err := repo.Save(ctx, profile.SaveInput{Profile: out.Profile})
	require.NoError(t, err, "failed to save profile")
	return saved.Profile
}
