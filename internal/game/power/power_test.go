package power_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/game/power"
)

func TestOf(t *testing.T) {
	// 10 + 3*1.5 + 3*1.2
	assert.InDelta(t, 18.1, power.Of(entities.Stats{HP: 10, ATK: 3, DEF: 3}), 1e-9)
	assert.Equal(t, 0.0, power.Of(entities.Stats{}))
}

func TestLineup(t *testing.T) {
	l := entities.Lineup{
		{SpeciesID: "turtle", Stats: entities.Stats{HP: 10, ATK: 3, DEF: 3}},
		{SpeciesID: "fox", Stats: entities.Stats{HP: 9, ATK: 9, DEF: 3}},
		{SpeciesID: "rabbit", Stats: entities.Stats{HP: 9, ATK: 4, DEF: 5}},
	}
	// 18.1 + 26.1 + 21
	assert.InDelta(t, 65.2, power.Lineup(l), 1e-9)
}
