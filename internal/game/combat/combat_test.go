package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/game/combat"
	"github.com/KirkDiggler/critter-arena/internal/pkg/rng"
)

func lineup(stats ...entities.Stats) entities.Lineup {
	var l entities.Lineup
	for i, s := range stats {
		l[i] = entities.Fighter{SpeciesID: "critter", Stats: s}
	}
	return l
}

func allDown(hp [entities.SlotCount]int) bool {
	for _, v := range hp {
		if v > 0 {
			return false
		}
	}
	return true
}

func TestResolveMirrorMatch(t *testing.T) {
	team := lineup(
		entities.Stats{HP: 10, ATK: 3, DEF: 3},
		entities.Stats{HP: 9, ATK: 9, DEF: 3},
		entities.Stats{HP: 9, ATK: 4, DEF: 5},
	)

	result := combat.Resolve(team, team)

	require.NotEmpty(t, result.Strikes)
	assert.False(t, result.CapReached)
	assert.Less(t, result.Rounds, combat.MaxRounds)
	for i := range result.PlayerHP {
		assert.GreaterOrEqual(t, result.PlayerHP[i], 0)
		assert.GreaterOrEqual(t, result.EnemyHP[i], 0)
	}

	// the side landing the last hit wins, and that hit emptied the other side
	last := result.Strikes[len(result.Strikes)-1]
	assert.Equal(t, 0, last.TargetHP)
	if last.Attacker == entities.SidePlayer {
		assert.True(t, result.PlayerWon)
		assert.True(t, allDown(result.EnemyHP))
	} else {
		assert.False(t, result.PlayerWon)
		assert.True(t, allDown(result.PlayerHP))
	}

	// the player strikes first in a mirror, so it finishes first
	assert.True(t, result.PlayerWon)
	assert.Equal(t, entities.SidePlayer, result.Strikes[0].Attacker)
	assert.Equal(t, 11, result.Strikes[0].AuraDEF)
	assert.Equal(t, 1, result.Strikes[0].Damage)
}

func TestResolveTargetsLowestLivingSlot(t *testing.T) {
	player := lineup(
		entities.Stats{HP: 50, ATK: 5, DEF: 0},
		entities.Stats{HP: 50, ATK: 5, DEF: 0},
		entities.Stats{HP: 50, ATK: 5, DEF: 0},
	)
	enemy := lineup(
		entities.Stats{HP: 5, ATK: 1, DEF: 0},
		entities.Stats{HP: 20, ATK: 1, DEF: 0},
		entities.Stats{HP: 20, ATK: 1, DEF: 0},
	)

	result := combat.Resolve(player, enemy)

	require.GreaterOrEqual(t, len(result.Strikes), 3)
	assert.Equal(t, entities.Slot(1), result.Strikes[0].TargetSlot)
	assert.Equal(t, 0, result.Strikes[0].TargetHP)
	assert.Equal(t, entities.Slot(2), result.Strikes[1].TargetSlot)
	assert.Equal(t, entities.Slot(2), result.Strikes[2].TargetSlot)

	// enemy strikes go to player slot 1 while it lives
	for _, s := range result.Strikes {
		if s.Attacker == entities.SideEnemy {
			assert.Equal(t, entities.Slot(1), s.TargetSlot)
		}
	}
}

func TestResolveRecomputesAuraPerStrike(t *testing.T) {
	player := lineup(
		entities.Stats{HP: 30, ATK: 11, DEF: 0},
		entities.Stats{HP: 30, ATK: 11, DEF: 0},
		entities.Stats{HP: 30, ATK: 11, DEF: 0},
	)
	enemy := lineup(
		entities.Stats{HP: 1, ATK: 1, DEF: 10},
		entities.Stats{HP: 50, ATK: 1, DEF: 0},
		entities.Stats{HP: 50, ATK: 1, DEF: 0},
	)

	result := combat.Resolve(player, enemy)

	first, second := result.Strikes[0], result.Strikes[1]
	assert.Equal(t, 10, first.AuraDEF)
	assert.Equal(t, 1, first.Damage)
	assert.Equal(t, 0, first.TargetHP)

	// the dead tank no longer shields the second strike
	assert.Equal(t, 0, second.AuraDEF)
	assert.Equal(t, 11, second.Damage)
	assert.Equal(t, entities.Slot(2), second.TargetSlot)
}

func TestResolveEndsWithoutCounterPhase(t *testing.T) {
	player := lineup(
		entities.Stats{HP: 10, ATK: 100, DEF: 0},
		entities.Stats{HP: 10, ATK: 100, DEF: 0},
		entities.Stats{HP: 10, ATK: 100, DEF: 0},
	)
	enemy := lineup(
		entities.Stats{HP: 5, ATK: 50, DEF: 0},
		entities.Stats{HP: 5, ATK: 50, DEF: 0},
		entities.Stats{HP: 5, ATK: 50, DEF: 0},
	)

	result := combat.Resolve(player, enemy)

	assert.True(t, result.PlayerWon)
	assert.Equal(t, 0, result.Rounds)
	assert.Len(t, result.Strikes, 3)
	assert.Equal(t, [entities.SlotCount]int{10, 10, 10}, result.PlayerHP)
	for _, s := range result.Strikes {
		assert.Equal(t, entities.SidePlayer, s.Attacker)
	}
}

func TestResolveCountsCompletedRounds(t *testing.T) {
	glass := entities.Stats{HP: 1, ATK: 0, DEF: 0}
	player := lineup(glass, glass, glass)
	enemy := lineup(
		entities.Stats{HP: 10, ATK: 5, DEF: 0},
		entities.Stats{HP: 10, ATK: 5, DEF: 0},
		entities.Stats{HP: 10, ATK: 5, DEF: 0},
	)

	result := combat.Resolve(player, enemy)

	assert.False(t, result.PlayerWon)
	assert.Equal(t, 1, result.Rounds)
	for _, s := range result.Strikes {
		assert.Equal(t, 1, s.Round)
	}
}

func TestResolveRoundCap(t *testing.T) {
	wall := entities.Stats{HP: 1000, ATK: 0, DEF: 50}

	t.Run("tie goes to the enemy", func(t *testing.T) {
		result := combat.Resolve(lineup(wall, wall, wall), lineup(wall, wall, wall))
		assert.True(t, result.CapReached)
		assert.Equal(t, combat.MaxRounds, result.Rounds)
		assert.False(t, result.PlayerWon)
		assert.Equal(t, 1000-3*combat.MaxRounds, result.PlayerHP[0])
		assert.Equal(t, result.PlayerHP, result.EnemyHP)
	})

	t.Run("more remaining HP wins", func(t *testing.T) {
		sturdier := wall
		sturdier.HP++
		result := combat.Resolve(lineup(sturdier, wall, wall), lineup(wall, wall, wall))
		assert.True(t, result.CapReached)
		assert.True(t, result.PlayerWon)
	})
}

func TestResolveAlreadyDefeated(t *testing.T) {
	healthy := entities.Stats{HP: 10, ATK: 5, DEF: 1}
	result := combat.Resolve(lineup(healthy, healthy, healthy), entities.Lineup{})

	assert.True(t, result.PlayerWon)
	assert.Equal(t, 0, result.Rounds)
	assert.Empty(t, result.Strikes)
}

func TestResolveInvariants(t *testing.T) {
	roller := rng.NewSeeded(11)
	stat := func(n int) int {
		v, err := rng.Intn(roller, n)
		require.NoError(t, err)
		return v
	}
	randomLineup := func() entities.Lineup {
		var l entities.Lineup
		for i := range l {
			l[i] = entities.Fighter{
				SpeciesID: "critter",
				Stats:     entities.Stats{HP: 1 + stat(60), ATK: stat(40), DEF: stat(20)},
			}
		}
		return l
	}

	for i := 0; i < 500; i++ {
		player, enemy := randomLineup(), randomLineup()
		result := combat.Resolve(player, enemy)

		assert.LessOrEqual(t, result.Rounds, combat.MaxRounds)
		for _, s := range result.Strikes {
			assert.GreaterOrEqual(t, s.Damage, 1)
			assert.GreaterOrEqual(t, s.TargetHP, 0)
			assert.GreaterOrEqual(t, s.Round, 1)
			assert.LessOrEqual(t, s.Round, result.Rounds+1)
		}
		for slot := range result.PlayerHP {
			assert.GreaterOrEqual(t, result.PlayerHP[slot], 0)
			assert.LessOrEqual(t, result.PlayerHP[slot], player[slot].Stats.HP)
			assert.GreaterOrEqual(t, result.EnemyHP[slot], 0)
		}
		if !result.CapReached {
			assert.Equal(t, result.PlayerWon, allDown(result.EnemyHP))
		}

		again := combat.Resolve(player, enemy)
		assert.Equal(t, result, again)
	}
}
