// Package entities provides core data structures for critter-arena.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	EntityTypeSpecies = "species"
	EntityTypeItem    = "item"
)

// Rarity is an ordered drop tier. The index order defines the adjacency
// band used by matchmaking.
type Rarity int

// Rarity tiers, lowest to highest
const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityMythic
	RarityLegendary
	RarityHidden
)

// RarityCount is the number of rarity tiers
const RarityCount = 7

// tierTable holds the fixed drop weight (percent) and sale value per tier
var tierTable = [RarityCount]struct {
	name   string
	weight int
	sale   int64
}{
	{"common", 45, 1},
	{"uncommon", 25, 3},
	{"rare", 15, 10},
	{"epic", 8, 25},
	{"mythic", 4, 60},
	{"legendary", 2, 150},
	{"hidden", 1, 500},
}

// Rarities returns every tier in ascending order
func Rarities() []Rarity {
	out := make([]Rarity, RarityCount)
	for i := range out {
		out[i] = Rarity(i)
	}
	return out
}

// Valid reports whether r is one of the seven tiers
func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityHidden
}

// String returns the tier name
func (r Rarity) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return tierTable[r].name
}

// Weight returns the tier's drop weight in percent
func (r Rarity) Weight() int {
	if !r.Valid() {
		return 0
	}
	return tierTable[r].weight
}

// SaleValue returns the coins paid per creature of this tier
func (r Rarity) SaleValue() int64 {
	if !r.Valid() {
		return 0
	}
	return tierTable[r].sale
}

// ParseRarity resolves a tier by name
func ParseRarity(name string) (Rarity, bool) {
	for i, t := range tierTable {
		if t.name == name {
			return Rarity(i), true
		}
	}
	return 0, false
}

// Role determines which team slot a creature may occupy
type Role string

// Creature roles
const (
	RoleTank    Role = "tank"
	RoleAttack  Role = "attack"
	RoleSupport Role = "support"
)

// Stats are the three combat values shared by creatures and item bonuses
type Stats struct {
	HP  int `json:"hp"`
	ATK int `json:"atk"`
	DEF int `json:"def"`
}

// Add returns the element-wise sum
func (s Stats) Add(other Stats) Stats {
	return Stats{
		HP:  s.HP + other.HP,
		ATK: s.ATK + other.ATK,
		DEF: s.DEF + other.DEF,
	}
}

// Species is a static creature definition from the catalog
type Species struct {
	ID      string
	Emoji   string
	Rarity  Rarity
	Role    Role
	Base    Stats
	Aliases []string
}

// GetID returns the species id
func (s *Species) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *Species) GetType() string {
	return EntityTypeSpecies
}

// Item is a static consumable definition from the catalog
type Item struct {
	ID          string
	Emoji       string
	Rarity      Rarity
	Cost        int64
	Bonus       Stats
	Description string
	Aliases     []string
}

// GetID returns the item id
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *Item) GetType() string {
	return EntityTypeItem
}

// SaleValue is what the shop pays back for one item
func (i *Item) SaleValue() int64 {
	return i.Cost / 2
}

var (
	_ core.Entity = (*Species)(nil)
	_ core.Entity = (*Item)(nil)
)
