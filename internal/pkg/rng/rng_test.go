package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/pkg/rng"
)

type fixedRoller struct {
	value int
}

func (f *fixedRoller) Roll(_ int) (int, error)       { return f.value, nil }
func (f *fixedRoller) RollN(_, _ int) ([]int, error) { return []int{f.value}, nil }

func TestSeededIsReproducible(t *testing.T) {
	a := rng.NewSeeded(42)
	b := rng.NewSeeded(42)

	for i := 0; i < 100; i++ {
		va, err := a.Roll(20)
		require.NoError(t, err)
		vb, err := b.Roll(20)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 1)
		assert.LessOrEqual(t, va, 20)
	}
}

func TestSeededRejectsBadSize(t *testing.T) {
	_, err := rng.NewSeeded(1).Roll(0)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = rng.NewSeeded(1).RollN(-1, 6)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSeededFactoryHandsOutIndependentRollers(t *testing.T) {
	first := rng.SeededFactory(7)
	second := rng.SeededFactory(7)

	for i := 0; i < 3; i++ {
		ra, rb := first(), second()
		va, err := ra.RollN(5, 100)
		require.NoError(t, err)
		vb, err := rb.RollN(5, 100)
		require.NoError(t, err)
		assert.Equal(t, va, vb, "call %d", i)
	}
}

func TestIntnRejectsOutOfRangeRoller(t *testing.T) {
	_, err := rng.Intn(&fixedRoller{value: 0}, 10)
	assert.True(t, errors.IsInternal(err))

	v, err := rng.Intn(&fixedRoller{value: 10}, 10)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestUniformBounds(t *testing.T) {
	r := rng.NewSeeded(3)
	for i := 0; i < 1000; i++ {
		v, err := rng.Uniform(r, 0.85, 1.30)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.85)
		assert.LessOrEqual(t, v, 1.30)

		f, err := rng.Float64(r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
