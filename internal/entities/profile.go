package entities

import (
	"time"
)

// Slot is a team position. Each slot accepts exactly one role.
type Slot int

// Team slots
const (
	SlotTank    Slot = 1
	SlotAttack  Slot = 2
	SlotSupport Slot = 3
)

// SlotCount is the number of team slots
const SlotCount = 3

// Slots returns the team slots in battle order
func Slots() []Slot {
	return []Slot{SlotTank, SlotAttack, SlotSupport}
}

// Valid reports whether s is 1, 2 or 3
func (s Slot) Valid() bool {
	return s >= SlotTank && s <= SlotSupport
}

// Index returns the zero-based array index for the slot
func (s Slot) Index() int {
	return int(s) - 1
}

// Role returns the role the slot requires
func (s Slot) Role() Role {
	switch s {
	case SlotTank:
		return RoleTank
	case SlotAttack:
		return RoleAttack
	case SlotSupport:
		return RoleSupport
	default:
		return ""
	}
}

// SlotForRole returns the slot a role belongs in
func SlotForRole(role Role) Slot {
	switch role {
	case RoleTank:
		return SlotTank
	case RoleAttack:
		return SlotAttack
	case RoleSupport:
		return SlotSupport
	default:
		return 0
	}
}

// Team holds one optional species id per slot, indexed by Slot.Index.
// An empty string is an empty slot.
type Team [SlotCount]string

// Get returns the species id in a slot
func (t Team) Get(slot Slot) string {
	return t[slot.Index()]
}

// Reserved counts how many slots hold the species
func (t Team) Reserved(speciesID string) int {
	n := 0
	for _, id := range t {
		if id != "" && id == speciesID {
			n++
		}
	}
	return n
}

// Signature is the ordered (tank, attack, support) tuple of an enemy team.
// It is the only trace of an opponent persisted on the profile.
type Signature [SlotCount]string

// IsZero reports whether no signature has been recorded
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// EquippedItem is the item held by a slot and the wins since it was equipped
type EquippedItem struct {
	ItemID string `json:"item_id,omitempty"`
	Wins   int    `json:"wins"`
}

// Empty reports whether no item is equipped
func (e EquippedItem) Empty() bool {
	return e.ItemID == ""
}

// Equipment holds the equipped item per slot, indexed by Slot.Index
type Equipment [SlotCount]EquippedItem

// Count returns how many slots have the item equipped
func (e Equipment) Count(itemID string) int {
	n := 0
	for _, eq := range e {
		if eq.ItemID != "" && eq.ItemID == itemID {
			n++
		}
	}
	return n
}

// Cooldowns stores when each repeatable action becomes available again
type Cooldowns struct {
	Hunt   time.Time `json:"hunt"`
	Battle time.Time `json:"battle"`
	Daily  time.Time `json:"daily"`
}

// Profile is the per-user economy and roster state
type Profile struct {
	UserID    string         `json:"user_id"`
	Coins     int64          `json:"coins"`
	Energy    int64          `json:"energy"`
	Creatures map[string]int `json:"creatures"`
	Team      Team           `json:"team"`
	Items     map[string]int `json:"items"`
	Equipped  Equipment      `json:"equipped"`
	Cooldowns Cooldowns      `json:"cooldowns"`
	LastEnemy Signature      `json:"last_enemy"`
	Version   int64          `json:"version"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewProfile returns the zeroed default profile for a user
func NewProfile(userID string, now time.Time) *Profile {
	return &Profile{
		UserID:    userID,
		Creatures: make(map[string]int),
		Items:     make(map[string]int),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Owned returns the owned count of a species
func (p *Profile) Owned(speciesID string) int {
	return p.Creatures[speciesID]
}

// Sellable returns the owned count minus team reservations
func (p *Profile) Sellable(speciesID string) int {
	n := p.Creatures[speciesID] - p.Team.Reserved(speciesID)
	if n < 0 {
		return 0
	}
	return n
}

// FreeItems returns the owned count of an item minus equipped copies
func (p *Profile) FreeItems(itemID string) int {
	n := p.Items[itemID] - p.Equipped.Count(itemID)
	if n < 0 {
		return 0
	}
	return n
}

// Clone returns a deep copy so a failed operation never leaks partial state
func (p *Profile) Clone() *Profile {
	out := *p
	out.Creatures = make(map[string]int, len(p.Creatures))
	for k, v := range p.Creatures {
		out.Creatures[k] = v
	}
	out.Items = make(map[string]int, len(p.Items))
	for k, v := range p.Items {
		out.Items[k] = v
	}
	return &out
}

// Normalize fills nil maps left by storage decoding
func (p *Profile) Normalize() {
	if p.Creatures == nil {
		p.Creatures = make(map[string]int)
	}
	if p.Items == nil {
		p.Items = make(map[string]int)
	}
}

// AddCreatures adjusts a species count, dropping the key at zero
func (p *Profile) AddCreatures(speciesID string, delta int) {
	p.Creatures[speciesID] += delta
	if p.Creatures[speciesID] <= 0 {
		delete(p.Creatures, speciesID)
	}
}

// AddItems adjusts an item count, dropping the key at zero
func (p *Profile) AddItems(itemID string, delta int) {
	p.Items[itemID] += delta
	if p.Items[itemID] <= 0 {
		delete(p.Items, itemID)
	}
}
