// Package power scores creatures for matchmaking balance.
//
// The score is only used to pick fair opponents. Combat itself works on the
// raw stat values.
package power

import (
	"github.com/KirkDiggler/critter-arena/internal/entities"
)

// Stat weights
const (
	WeightHP  = 1.0
	WeightATK = 1.5
	WeightDEF = 1.2
)

// Of returns the weighted score of a stat block
func Of(s entities.Stats) float64 {
	return float64(s.HP)*WeightHP + float64(s.ATK)*WeightATK + float64(s.DEF)*WeightDEF
}

// Lineup sums the scores of the effective stats of a combat-ready team
func Lineup(l entities.Lineup) float64 {
	total := 0.0
	for _, f := range l {
		total += Of(f.Stats)
	}
	return total
}
