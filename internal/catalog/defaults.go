package catalog

import (
	"github.com/KirkDiggler/critter-arena/internal/entities"
)

// DefaultSpecies is the shipped creature roster: one species per tier and role
var DefaultSpecies = []entities.Species{
	{ID: "turtle", Emoji: "🐢", Rarity: entities.RarityCommon, Role: entities.RoleTank,
		Base: entities.Stats{HP: 10, ATK: 3, DEF: 3}, Aliases: []string{"tortoise", "shell"}},
	{ID: "fox", Emoji: "🦊", Rarity: entities.RarityCommon, Role: entities.RoleAttack,
		Base: entities.Stats{HP: 9, ATK: 9, DEF: 3}, Aliases: []string{"kit"}},
	{ID: "rabbit", Emoji: "🐇", Rarity: entities.RarityCommon, Role: entities.RoleSupport,
		Base: entities.Stats{HP: 9, ATK: 4, DEF: 5}, Aliases: []string{"bunny", "hare"}},

	{ID: "boar", Emoji: "🐗", Rarity: entities.RarityUncommon, Role: entities.RoleTank,
		Base: entities.Stats{HP: 14, ATK: 4, DEF: 4}, Aliases: []string{"pig"}},
	{ID: "wolf", Emoji: "🐺", Rarity: entities.RarityUncommon, Role: entities.RoleAttack,
		Base: entities.Stats{HP: 12, ATK: 11, DEF: 3}},
	{ID: "owl", Emoji: "🦉", Rarity: entities.RarityUncommon, Role: entities.RoleSupport,
		Base: entities.Stats{HP: 12, ATK: 5, DEF: 6}},

	{ID: "rhino", Emoji: "🦏", Rarity: entities.RarityRare, Role: entities.RoleTank,
		Base: entities.Stats{HP: 18, ATK: 5, DEF: 6}, Aliases: []string{"rhinoceros"}},
	{ID: "tiger", Emoji: "🐅", Rarity: entities.RarityRare, Role: entities.RoleAttack,
		Base: entities.Stats{HP: 15, ATK: 14, DEF: 4}},
	{ID: "dolphin", Emoji: "🐬", Rarity: entities.RarityRare, Role: entities.RoleSupport,
		Base: entities.Stats{HP: 15, ATK: 6, DEF: 8}, Aliases: []string{"flipper"}},

	{ID: "elephant", Emoji: "🐘", Rarity: entities.RarityEpic, Role: entities.RoleTank,
		Base: entities.Stats{HP: 24, ATK: 6, DEF: 8}},
	{ID: "shark", Emoji: "🦈", Rarity: entities.RarityEpic, Role: entities.RoleAttack,
		Base: entities.Stats{HP: 19, ATK: 18, DEF: 5}},
	{ID: "peacock", Emoji: "🦚", Rarity: entities.RarityEpic, Role: entities.RoleSupport,
		Base: entities.Stats{HP: 19, ATK: 8, DEF: 10}},

	{ID: "mammoth", Emoji: "🦣", Rarity: entities.RarityMythic, Role: entities.RoleTank,
		Base: entities.Stats{HP: 30, ATK: 8, DEF: 10}},
	{ID: "eagle", Emoji: "🦅", Rarity: entities.RarityMythic, Role: entities.RoleAttack,
		Base: entities.Stats{HP: 24, ATK: 23, DEF: 6}},
	{ID: "swan", Emoji: "🦢", Rarity: entities.RarityMythic, Role: entities.RoleSupport,
		Base: entities.Stats{HP: 24, ATK: 10, DEF: 13}},

	{ID: "dragon", Emoji: "🐉", Rarity: entities.RarityLegendary, Role: entities.RoleTank,
		Base: entities.Stats{HP: 38, ATK: 10, DEF: 13}},
	{ID: "trex", Emoji: "🦖", Rarity: entities.RarityLegendary, Role: entities.RoleAttack,
		Base: entities.Stats{HP: 30, ATK: 29, DEF: 8}, Aliases: []string{"t rex", "tyrannosaurus"}},
	{ID: "unicorn", Emoji: "🦄", Rarity: entities.RarityLegendary, Role: entities.RoleSupport,
		Base: entities.Stats{HP: 30, ATK: 13, DEF: 16}},

	{ID: "sauropod", Emoji: "🦕", Rarity: entities.RarityHidden, Role: entities.RoleTank,
		Base: entities.Stats{HP: 48, ATK: 12, DEF: 16}, Aliases: []string{"brontosaurus", "dino"}},
	{ID: "kraken", Emoji: "🦑", Rarity: entities.RarityHidden, Role: entities.RoleAttack,
		Base: entities.Stats{HP: 38, ATK: 36, DEF: 10}, Aliases: []string{"squid"}},
	{ID: "phoenix", Emoji: "🐦‍🔥", Rarity: entities.RarityHidden, Role: entities.RoleSupport,
		Base: entities.Stats{HP: 38, ATK: 16, DEF: 20}, Aliases: []string{"firebird"}},
}

// DefaultItems is the shipped consumable list
var DefaultItems = []entities.Item{
	{ID: "apple", Emoji: "🍎", Rarity: entities.RarityCommon, Cost: 10,
		Bonus: entities.Stats{HP: 3}, Description: "A crisp snack. +3 HP.", Aliases: []string{"red apple"}},
	{ID: "meat", Emoji: "🍖", Rarity: entities.RarityUncommon, Cost: 25,
		Bonus: entities.Stats{ATK: 3}, Description: "Raw power. +3 ATK.", Aliases: []string{"steak"}},
	{ID: "honey", Emoji: "🍯", Rarity: entities.RarityRare, Cost: 60,
		Bonus: entities.Stats{DEF: 3}, Description: "Sticky armor. +3 DEF.", Aliases: []string{"honey pot"}},
	{ID: "cake", Emoji: "🍰", Rarity: entities.RarityEpic, Cost: 150,
		Bonus: entities.Stats{HP: 5, ATK: 3, DEF: 3}, Description: "A feast. +5 HP, +3 ATK, +3 DEF."},
	{ID: "star", Emoji: "🌟", Rarity: entities.RarityLegendary, Cost: 600,
		Bonus: entities.Stats{HP: 12, ATK: 8, DEF: 6}, Description: "Fallen starlight. +12 HP, +8 ATK, +6 DEF.",
		Aliases: []string{"star fruit", "glowing star"}},
}

// Default builds the catalog from the shipped data set
func Default() *Catalog {
	c, err := New(DefaultSpecies, DefaultItems)
	if err != nil {
		// The shipped data is validated by tests; failing here is a programming error
		panic("catalog: invalid default data: " + err.Error())
	}
	return c
}
