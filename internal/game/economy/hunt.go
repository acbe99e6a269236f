package economy

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/pkg/rng"
)

// HuntResult reports what a hunt cost and what it found
type HuntResult struct {
	Rolls       int
	CoinsSpent  int64
	EnergySpent int64
	// Drops lists every drawn species in roll order
	Drops   []*entities.Species
	ReadyAt time.Time
}

// Counts groups the drops by species id
func (r *HuntResult) Counts() map[string]int {
	out := make(map[string]int, len(r.Drops))
	for _, s := range r.Drops {
		out[s.ID]++
	}
	return out
}

// Hunt spends coins in multiples of HuntQuantum, one roll per quantum and
// one energy per roll, and adds the drawn creatures to the profile.
func Hunt(
	p *entities.Profile,
	cat *catalog.Catalog,
	roller dice.Roller,
	amount int64,
	now time.Time,
) (*HuntResult, error) {
	if err := CheckCooldown(ActionHunt, p.Cooldowns.Hunt, now); err != nil {
		return nil, err
	}
	if amount <= 0 || amount%HuntQuantum != 0 {
		return nil, errors.InvalidAmountf("hunt amount must be a positive multiple of %d, got %d", HuntQuantum, amount)
	}

	rolls := amount / HuntQuantum
	energy := rolls * EnergyPerRoll
	if p.Coins < amount {
		return nil, errors.InsufficientFunds("coins", amount, p.Coins)
	}
	if p.Energy < energy {
		return nil, errors.InsufficientFunds("energy", energy, p.Energy)
	}

	// Draw everything before touching the profile so a roller failure
	// leaves it untouched
	drops := make([]*entities.Species, 0, rolls)
	for i := int64(0); i < rolls; i++ {
		species, err := DrawSpecies(cat, roller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to draw roll %d", i+1)
		}
		drops = append(drops, species)
	}

	p.Coins -= amount
	p.Energy -= energy
	for _, s := range drops {
		p.AddCreatures(s.ID, 1)
	}
	p.Cooldowns.Hunt = now.Add(HuntCooldown)

	return &HuntResult{
		Rolls:       int(rolls),
		CoinsSpent:  amount,
		EnergySpent: energy,
		Drops:       drops,
		ReadyAt:     p.Cooldowns.Hunt,
	}, nil
}

// DrawRarity draws a uniform value in [0, 100) and returns the first tier
// whose cumulative weight is at least the draw
func DrawRarity(roller dice.Roller) (entities.Rarity, error) {
	f, err := rng.Float64(roller)
	if err != nil {
		return 0, err
	}
	return RarityFor(f * 100), nil
}

// RarityFor maps a draw in [0, 100) onto the cumulative weight table
func RarityFor(draw float64) entities.Rarity {
	cumulative := 0
	for _, r := range entities.Rarities() {
		cumulative += r.Weight()
		if float64(cumulative) >= draw {
			return r
		}
	}
	return entities.RarityHidden
}

// DrawSpecies draws a tier, then a species uniformly within the tier
func DrawSpecies(cat *catalog.Catalog, roller dice.Roller) (*entities.Species, error) {
	tier, err := DrawRarity(roller)
	if err != nil {
		return nil, err
	}
	pool := cat.SpeciesByTier(tier)
	if len(pool) == 0 {
		return nil, errors.Internalf("rarity %s has no species", tier)
	}
	idx, err := rng.Intn(roller, len(pool))
	if err != nil {
		return nil, err
	}
	return pool[idx], nil
}
