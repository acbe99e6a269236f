package entities

import (
	"time"
)

// Side identifies one of the two teams in a battle
type Side string

// Battle sides
const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Fighter is a creature as it enters combat: species plus the effective
// stats after any equipped item bonus.
type Fighter struct {
	SpeciesID string `json:"species_id"`
	ItemID    string `json:"item_id,omitempty"`
	Stats     Stats  `json:"stats"`
}

// Lineup is a full three-slot team ready for combat, indexed by Slot.Index
type Lineup [SlotCount]Fighter

// Signature returns the ordered species tuple of the lineup
func (l Lineup) Signature() Signature {
	return Signature{l[0].SpeciesID, l[1].SpeciesID, l[2].SpeciesID}
}

// Strike is one attack in the battle log. Round is 1-based.
type Strike struct {
	Round      int  `json:"round"`
	Attacker   Side `json:"attacker"`
	FromSlot   Slot `json:"from_slot"`
	TargetSlot Slot `json:"target_slot"`
	AuraDEF    int  `json:"aura_def"`
	Damage     int  `json:"damage"`
	TargetHP   int  `json:"target_hp"`
}

// Rewards are the deltas applied to the profile after a battle
type Rewards struct {
	Coins  int64 `json:"coins"`
	Energy int64 `json:"energy"`
}

// BattleOutcome is the result of one battle as shown to the player and
// stored in the battle log
type BattleOutcome struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Player          Lineup         `json:"player"`
	Enemy           Lineup         `json:"enemy"`
	PlayerHP        [SlotCount]int `json:"player_hp"`
	EnemyHP         [SlotCount]int `json:"enemy_hp"`
	PlayerWon       bool           `json:"player_won"`
	Rounds          int            `json:"rounds"`
	Strikes         []Strike       `json:"strikes"`
	EnemyMultiplier float64        `json:"enemy_multiplier"`
	TargetPower     float64        `json:"target_power"`
	EnemyPower      float64        `json:"enemy_power"`
	Rewards         Rewards        `json:"rewards"`
	FoughtAt        time.Time      `json:"fought_at"`
}
