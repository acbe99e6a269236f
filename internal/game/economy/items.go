package economy

import (
	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/game/team"
)

// PurchaseResult reports a shop purchase
type PurchaseResult struct {
	Item     *entities.Item
	Quantity int
	Cost     int64
}

// BuyItem buys n copies of an item at catalog cost
func BuyItem(p *entities.Profile, cat *catalog.Catalog, query string, n int) (*PurchaseResult, error) {
	item, err := cat.ResolveItem(query)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, errors.InvalidAmountf("quantity must be positive, got %d", n)
	}

	cost := item.Cost * int64(n)
	if p.Coins < cost {
		return nil, errors.InsufficientFunds("coins", cost, p.Coins)
	}

	p.Coins -= cost
	p.AddItems(item.ID, n)

	return &PurchaseResult{
		Item:     item,
		Quantity: n,
		Cost:     cost,
	}, nil
}

// EquipResult reports an equip
type EquipResult struct {
	Slot entities.Slot
	Item *entities.Item
	// Destroyed is the item that was in the slot before; it is consumed,
	// not returned to the inventory
	Destroyed string
}

// EquipItem puts a free copy of an item on a slot. Whatever was equipped
// there is destroyed and the slot's win counter restarts at zero.
func EquipItem(p *entities.Profile, cat *catalog.Catalog, query string, slot int) (*EquipResult, error) {
	s, err := team.ValidateSlot(slot)
	if err != nil {
		return nil, err
	}
	item, err := cat.ResolveItem(query)
	if err != nil {
		return nil, err
	}
	if p.FreeItems(item.ID) < 1 {
		return nil, errors.NotOwned(item.ID)
	}

	previous := p.Equipped[s.Index()]
	if !previous.Empty() {
		p.AddItems(previous.ItemID, -1)
	}
	p.Equipped[s.Index()] = entities.EquippedItem{ItemID: item.ID}

	return &EquipResult{
		Slot:      s,
		Item:      item,
		Destroyed: previous.ItemID,
	}, nil
}

// UnequipItem takes the item off a slot and back into free inventory
func UnequipItem(p *entities.Profile, slot int) (string, error) {
	s, err := team.ValidateSlot(slot)
	if err != nil {
		return "", err
	}
	previous := p.Equipped[s.Index()]
	if previous.Empty() {
		return "", errors.FailedPreconditionf("nothing is equipped on slot %d", slot)
	}
	p.Equipped[s.Index()] = entities.EquippedItem{}
	return previous.ItemID, nil
}
