// Package combat resolves a battle between two full lineups.
//
// Resolution is deterministic: the same two lineups always produce the same
// strikes and the same winner.
package combat

import (
	"github.com/KirkDiggler/critter-arena/internal/entities"
)

// MaxRounds caps the length of a battle
const MaxRounds = 100

// Result is the outcome of Resolve
type Result struct {
	PlayerHP  [entities.SlotCount]int
	EnemyHP   [entities.SlotCount]int
	PlayerWon bool
	// Rounds counts completed rounds. A battle the player finishes in the
	// first attack phase reports 0.
	Rounds int
	// CapReached is true when the battle was decided on remaining HP
	CapReached bool
	Strikes    []entities.Strike
}

// Resolve runs the battle. Each round the player side attacks first, slot by
// slot, always hitting the lowest living enemy slot. The enemy answers only
// if it still has a living creature.
func Resolve(player, enemy entities.Lineup) *Result {
	b := &battle{
		lineups: [2]entities.Lineup{player, enemy},
	}
	for i := range player {
		b.hp[0][i] = player[i].Stats.HP
		b.hp[1][i] = enemy[i].Stats.HP
	}

	for b.rounds < MaxRounds && b.alive(0) && b.alive(1) {
		b.phase(0, 1)
		if !b.alive(1) {
			break
		}
		b.phase(1, 0)
		b.rounds++
	}

	result := &Result{
		PlayerHP: b.hp[0],
		EnemyHP:  b.hp[1],
		Rounds:   b.rounds,
		Strikes:  b.strikes,
	}
	switch {
	case !b.alive(1):
		result.PlayerWon = true
	case !b.alive(0):
		result.PlayerWon = false
	default:
		// ties go to the enemy
		result.CapReached = true
		result.PlayerWon = sum(b.hp[0]) > sum(b.hp[1])
	}
	return result
}

var sides = [2]entities.Side{entities.SidePlayer, entities.SideEnemy}

type battle struct {
	lineups [2]entities.Lineup
	hp      [2][entities.SlotCount]int
	rounds  int
	strikes []entities.Strike
}

func (b *battle) phase(attacker, defender int) {
	for i, f := range b.lineups[attacker] {
		if b.hp[attacker][i] <= 0 {
			continue
		}
		target := b.target(defender)
		if target < 0 {
			return
		}

		aura := b.aura(defender)
		damage := f.Stats.ATK - aura
		if damage < 1 {
			damage = 1
		}
		b.hp[defender][target] -= damage
		if b.hp[defender][target] < 0 {
			b.hp[defender][target] = 0
		}

		b.strikes = append(b.strikes, entities.Strike{
			Round:      b.rounds + 1,
			Attacker:   sides[attacker],
			FromSlot:   entities.Slot(i + 1),
			TargetSlot: entities.Slot(target + 1),
			AuraDEF:    aura,
			Damage:     damage,
			TargetHP:   b.hp[defender][target],
		})
	}
}

// target is the lowest living slot index of a side, or -1
func (b *battle) target(side int) int {
	for i, hp := range b.hp[side] {
		if hp > 0 {
			return i
		}
	}
	return -1
}

// aura sums the DEF of the living creatures of a side
func (b *battle) aura(side int) int {
	total := 0
	for i, f := range b.lineups[side] {
		if b.hp[side][i] > 0 {
			total += f.Stats.DEF
		}
	}
	return total
}

func (b *battle) alive(side int) bool {
	return b.target(side) >= 0
}

func sum(hp [entities.SlotCount]int) int {
	total := 0
	for _, v := range hp {
		total += v
	}
	return total
}
