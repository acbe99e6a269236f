// Package rng provides the random sources used by hunts and matchmaking.
//
// All randomness flows through the rpg-toolkit dice.Roller contract. Each
// operation asks a Factory for its own Roller, so a seeded factory makes a
// sequence of operations reproducible and concurrent operations never share
// generator state.
package rng

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/critter-arena/internal/errors"
)

// floatResolution is the number of distinct values Float64 can return
const floatResolution = 1 << 30

// Factory returns a Roller for a single operation
type Factory func() dice.Roller

// Default uses the toolkit's crypto-backed roller for every operation
func Default() Factory {
	return func() dice.Roller {
		return dice.DefaultRoller
	}
}

// SeededFactory returns rollers seeded seed, seed+1, seed+2, ... in call order
func SeededFactory(seed uint64) Factory {
	var n atomic.Uint64
	return func() dice.Roller {
		return NewSeeded(seed + n.Add(1) - 1)
	}
}

// Seeded is a deterministic Roller. It is not safe for concurrent use;
// hand each goroutine its own.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a PCG-backed roller
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count cannot be negative, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var _ dice.Roller = (*Seeded)(nil)

// Intn returns a uniform value in [0, n)
func Intn(r dice.Roller, n int) (int, error) {
	v, err := r.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	if v < 1 || v > n {
		return 0, errors.Internalf("roller returned %d outside [1, %d]", v, n)
	}
	return v - 1, nil
}

// Float64 returns a uniform value in [0, 1)
func Float64(r dice.Roller) (float64, error) {
	v, err := Intn(r, floatResolution)
	if err != nil {
		return 0, err
	}
	return float64(v) / floatResolution, nil
}

// Uniform returns a uniform value in [lo, hi]
func Uniform(r dice.Roller, lo, hi float64) (float64, error) {
	v, err := Intn(r, floatResolution+1)
	if err != nil {
		return 0, err
	}
	return lo + (hi-lo)*float64(v)/floatResolution, nil
}
