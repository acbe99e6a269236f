// Package economy implements the coin, energy, creature and item
// transactions of a profile.
//
// Every operation validates fully before it touches the profile. A returned
// error means the profile is exactly as it was passed in.
package economy

import (
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
)

// Economy constants
const (
	HuntQuantum    = 5
	EnergyPerRoll  = 1
	HuntCooldown   = 10 * time.Second
	DailyCooldown  = 24 * time.Hour
	DailyCoins     = 50
	DailyEnergy    = 10
	BattleCooldown = 15 * time.Second

	MinBattleCoins  = 5
	BaseBattleCoins = 10
	BattleEnergy    = 1
)

// Actions gated by cooldowns
const (
	ActionHunt   = "hunt"
	ActionBattle = "battle"
	ActionDaily  = "daily"
)

// CheckCooldown fails with CooldownActive while readyAt is in the future
func CheckCooldown(action string, readyAt, now time.Time) error {
	if now.Before(readyAt) {
		return errors.CooldownActive(action, readyAt.Sub(now))
	}
	return nil
}

// Quantity is either an exact count or everything that may be sold
type Quantity struct {
	All bool
	N   int
}

// All sells every sellable unit
func All() Quantity {
	return Quantity{All: true}
}

// Exactly sells n units
func Exactly(n int) Quantity {
	return Quantity{N: n}
}

// ParseQuantity accepts "all" or a positive integer
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "all" {
		return All(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Quantity{}, errors.InvalidAmountf("quantity must be a positive number or \"all\", got %q", s)
	}
	return Exactly(n), nil
}

// String renders the quantity the way ParseQuantity reads it
func (q Quantity) String() string {
	if q.All {
		return "all"
	}
	return strconv.Itoa(q.N)
}

// resolve turns the quantity into a concrete count against what is available
func (q Quantity) resolve(available int, what string) (int, error) {
	if q.All {
		if available <= 0 {
			return 0, errors.InvalidAmountf("you have no sellable %s", what)
		}
		return available, nil
	}
	if q.N <= 0 {
		return 0, errors.InvalidAmountf("quantity must be positive, got %d", q.N)
	}
	if q.N > available {
		return 0, errors.InvalidAmountf("you can only sell %d %s", available, what)
	}
	return q.N, nil
}

// DailyResult reports a claimed daily reward
type DailyResult struct {
	Coins   int64
	Energy  int64
	ReadyAt time.Time
}

// ClaimDaily grants the daily coins and energy and restarts the 24h cooldown
func ClaimDaily(p *entities.Profile, now time.Time) (*DailyResult, error) {
	if err := CheckCooldown(ActionDaily, p.Cooldowns.Daily, now); err != nil {
		return nil, err
	}

	p.Coins += DailyCoins
	p.Energy += DailyEnergy
	p.Cooldowns.Daily = now.Add(DailyCooldown)

	return &DailyResult{
		Coins:   DailyCoins,
		Energy:  DailyEnergy,
		ReadyAt: p.Cooldowns.Daily,
	}, nil
}
