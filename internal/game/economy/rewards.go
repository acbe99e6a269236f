package economy

import (
	"math"

	"github.com/KirkDiggler/critter-arena/internal/entities"
)

// BattleCoins is the coin reward for a win against an opponent scaled by
// the given enemy multiplier
func BattleCoins(multiplier float64) int64 {
	return max(MinBattleCoins, int64(math.Round(BaseBattleCoins*multiplier)))
}

// ApplyBattleResult credits a win and bumps the win counter of every
// equipped slot. A loss changes nothing and returns zero rewards.
func ApplyBattleResult(p *entities.Profile, won bool, multiplier float64) entities.Rewards {
	if !won {
		return entities.Rewards{}
	}

	rewards := entities.Rewards{
		Coins:  BattleCoins(multiplier),
		Energy: BattleEnergy,
	}
	p.Coins += rewards.Coins
	p.Energy += rewards.Energy

	for i := range p.Equipped {
		if !p.Equipped[i].Empty() {
			p.Equipped[i].Wins++
		}
	}
	return rewards
}
