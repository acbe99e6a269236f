// Package matchmaker picks a power-balanced opponent for a player's team.
//
// The search is satisficing: it stops at the first candidate within
// Tolerance of the target power and otherwise keeps the closest one seen
// in MaxAttempts draws.
package matchmaker

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/game/power"
	"github.com/KirkDiggler/critter-arena/internal/game/team"
	"github.com/KirkDiggler/critter-arena/internal/pkg/rng"
)

// Search parameters
const (
	MinMultiplier = 0.85
	MaxMultiplier = 1.30
	Tolerance     = 0.07
	MaxAttempts   = 50
)

// Input is what the matchmaker needs to know about the player
type Input struct {
	Player    entities.Lineup
	LastEnemy entities.Signature
}

// Result is the chosen opponent
type Result struct {
	Enemy       entities.Lineup
	Signature   entities.Signature
	Multiplier  float64
	TargetPower float64
	EnemyPower  float64
	// Attempts counts the draws consumed, skipped repeats included
	Attempts int
	// Accepted is true when the enemy landed within Tolerance of the target
	Accepted bool
}

// Delta is the absolute distance between enemy and target power
func (r *Result) Delta() float64 {
	return math.Abs(r.EnemyPower - r.TargetPower)
}

// Matchmaker draws opponents from a catalog
type Matchmaker struct {
	catalog *catalog.Catalog
}

// New creates a matchmaker over the catalog
func New(cat *catalog.Catalog) *Matchmaker {
	return &Matchmaker{catalog: cat}
}

// Find searches for an opponent. The roller is used for the multiplier and
// every species draw.
func (m *Matchmaker) Find(roller dice.Roller, input *Input) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	pools, err := m.pools(input.Player)
	if err != nil {
		return nil, err
	}

	multiplier, err := rng.Uniform(roller, MinMultiplier, MaxMultiplier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw enemy multiplier")
	}
	target := power.Lineup(input.Player) * multiplier

	var best *Result
	attempts := 0
	for attempts < MaxAttempts {
		attempts++

		enemy, err := draw(roller, pools)
		if err != nil {
			return nil, err
		}
		if !input.LastEnemy.IsZero() && enemy.Signature() == input.LastEnemy {
			continue
		}

		candidate := newResult(enemy, multiplier, target)
		if candidate.Delta() <= target*Tolerance {
			candidate.Accepted = true
			best = candidate
			break
		}
		if best == nil || candidate.Delta() < best.Delta() {
			best = candidate
		}
	}

	// Every draw repeated the last opponent
	if best == nil {
		enemy, err := draw(roller, pools)
		if err != nil {
			return nil, err
		}
		best = newResult(enemy, multiplier, target)
		best.Accepted = best.Delta() <= target*Tolerance
	}

	best.Attempts = attempts
	return best, nil
}

// Band returns the tiers enemies may be drawn from: the rounded mean tier of
// the player's team and its neighbours, clamped to the valid range.
func Band(tiers []entities.Rarity) []entities.Rarity {
	if len(tiers) == 0 {
		return nil
	}
	sum := 0
	for _, t := range tiers {
		sum += int(t)
	}
	center := int(math.Round(float64(sum) / float64(len(tiers))))

	band := make([]entities.Rarity, 0, 3)
	for i := center - 1; i <= center+1; i++ {
		r := entities.Rarity(i)
		if r.Valid() {
			band = append(band, r)
		}
	}
	return band
}

// pools returns the candidate species per slot. A role with nothing in the
// band falls back to every species of that role.
func (m *Matchmaker) pools(player entities.Lineup) ([entities.SlotCount][]*entities.Species, error) {
	var pools [entities.SlotCount][]*entities.Species

	tiers, err := team.Rarities(player, m.catalog)
	if err != nil {
		return pools, err
	}
	band := Band(tiers)

	for _, s := range entities.Slots() {
		pool := m.catalog.SpeciesByRole(s.Role(), band)
		if len(pool) == 0 {
			pool = m.catalog.SpeciesByRole(s.Role(), entities.Rarities())
		}
		if len(pool) == 0 {
			return pools, errors.FailedPreconditionf("catalog has no %s species", s.Role())
		}
		pools[s.Index()] = pool
	}
	return pools, nil
}

func draw(roller dice.Roller, pools [entities.SlotCount][]*entities.Species) (entities.Lineup, error) {
	var lineup entities.Lineup
	for i, pool := range pools {
		idx, err := rng.Intn(roller, len(pool))
		if err != nil {
			return lineup, errors.Wrap(err, "failed to draw enemy species")
		}
		species := pool[idx]
		lineup[i] = entities.Fighter{
			SpeciesID: species.ID,
			Stats:     species.Base,
		}
	}
	return lineup, nil
}

func newResult(enemy entities.Lineup, multiplier, target float64) *Result {
	return &Result{
		Enemy:       enemy,
		Signature:   enemy.Signature(),
		Multiplier:  multiplier,
		TargetPower: target,
		EnemyPower:  power.Lineup(enemy),
	}
}
