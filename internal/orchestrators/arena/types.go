package arena

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/game/economy"
	"github.com/KirkDiggler/critter-arena/internal/game/team"
)

// GetProfileInput defines the request for loading a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput defines the response for loading a profile
type GetProfileOutput struct {
	Profile *entities.Profile
}

// ResolveEntityInput defines the request for resolving a name or emoji
type ResolveEntityInput struct {
	Query string
}

// ResolveEntityOutput holds the matched catalog entity, a *entities.Species
// or *entities.Item depending on its GetType
type ResolveEntityOutput struct {
	Entity core.Entity
}

// ClaimDailyInput defines the request for the daily reward
type ClaimDailyInput struct {
	UserID string
}

// ClaimDailyOutput defines the response for the daily reward
type ClaimDailyOutput struct {
	Coins   int64
	Energy  int64
	ReadyAt time.Time
	Profile *entities.Profile
}

// HuntInput defines the request for a hunt
type HuntInput struct {
	UserID string
	// Amount is the coins to spend, a multiple of economy.HuntQuantum
	Amount int64
}

// HuntOutput defines the response for a hunt
type HuntOutput struct {
	Result  *economy.HuntResult
	Profile *entities.Profile
}

// SellCreatureInput defines the request for selling one species
type SellCreatureInput struct {
	UserID   string
	Query    string
	Quantity economy.Quantity
}

// SellRarityInput defines the request for selling a whole tier
type SellRarityInput struct {
	UserID   string
	Rarity   entities.Rarity
	Quantity economy.Quantity
}

// SellItemInput defines the request for selling an item
type SellItemInput struct {
	UserID   string
	Query    string
	Quantity economy.Quantity
}

// SellOutput is shared by every sell operation
type SellOutput struct {
	Sale    *economy.SaleResult
	Profile *entities.Profile
}

// BuyItemInput defines the request for buying items
type BuyItemInput struct {
	UserID   string
	Query    string
	Quantity int
}

// BuyItemOutput defines the response for buying items
type BuyItemOutput struct {
	Purchase *economy.PurchaseResult
	Profile  *entities.Profile
}

// AssignSlotInput defines the request for placing a creature on the team
type AssignSlotInput struct {
	UserID string
	Query  string
	Slot   int
}

// AssignSlotOutput defines the response for placing a creature on the team
type AssignSlotOutput struct {
	Result  *team.AssignResult
	Profile *entities.Profile
}

// ClearSlotInput defines the request for emptying a team slot
type ClearSlotInput struct {
	UserID string
	Slot   int
}

// ClearSlotOutput defines the response for emptying a team slot
type ClearSlotOutput struct {
	// Cleared is the species that held the slot, empty if it was already empty
	Cleared string
	Profile *entities.Profile
}

// EquipItemInput defines the request for equipping an item
type EquipItemInput struct {
	UserID string
	Query  string
	Slot   int
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Result  *economy.EquipResult
	Profile *entities.Profile
}

// UnequipItemInput defines the request for taking an item off a slot
type UnequipItemInput struct {
	UserID string
	Slot   int
}

// UnequipItemOutput defines the response for taking an item off a slot
type UnequipItemOutput struct {
	ItemID  string
	Profile *entities.Profile
}

// BattleInput defines the request for a battle
type BattleInput struct {
	UserID string
}

// BattleOutput defines the response for a battle
type BattleOutput struct {
	Outcome *entities.BattleOutcome
	// MatchAccepted is false when no opponent landed within tolerance and
	// the closest one was used
	MatchAccepted bool
	MatchAttempts int
	Profile       *entities.Profile
}

// ListBattlesInput defines the request for recent battles
type ListBattlesInput struct {
	UserID string
	Limit  int
}

// ListBattlesOutput defines the response for recent battles
type ListBattlesOutput struct {
	Outcomes []*entities.BattleOutcome
}
