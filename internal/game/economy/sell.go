package economy

import (
	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
)

// SaleLine is one species or item in a sale
type SaleLine struct {
	ID        string
	Quantity  int
	UnitValue int64
}

// Total returns the coins this line pays
func (l SaleLine) Total() int64 {
	return int64(l.Quantity) * l.UnitValue
}

// SaleResult reports a completed sale
type SaleResult struct {
	Lines []SaleLine
	Coins int64
}

// salePlan is computed in full before any of it is applied
type salePlan struct {
	lines []SaleLine
	items bool
}

func (sp *salePlan) apply(p *entities.Profile) *SaleResult {
	result := &SaleResult{Lines: sp.lines}
	for _, line := range sp.lines {
		if sp.items {
			p.AddItems(line.ID, -line.Quantity)
		} else {
			p.AddCreatures(line.ID, -line.Quantity)
		}
		result.Coins += line.Total()
	}
	p.Coins += result.Coins
	return result
}

// SellCreatures sells unreserved copies of one species
func SellCreatures(p *entities.Profile, cat *catalog.Catalog, query string, q Quantity) (*SaleResult, error) {
	species, err := cat.ResolveSpecies(query)
	if err != nil {
		return nil, err
	}

	n, err := q.resolve(p.Sellable(species.ID), species.ID)
	if err != nil {
		return nil, err
	}

	plan := &salePlan{lines: []SaleLine{{
		ID:        species.ID,
		Quantity:  n,
		UnitValue: species.Rarity.SaleValue(),
	}}}
	return plan.apply(p), nil
}

// SellRarity sells creatures of one tier. All sells every unreserved
// creature of the tier; an exact count takes from species in catalog order.
func SellRarity(p *entities.Profile, cat *catalog.Catalog, tier entities.Rarity, q Quantity) (*SaleResult, error) {
	if !tier.Valid() {
		return nil, errors.InvalidArgumentf("unknown rarity %d", tier)
	}

	available := 0
	species := cat.SpeciesByTier(tier)
	for _, s := range species {
		available += p.Sellable(s.ID)
	}

	remaining, err := q.resolve(available, tier.String()+" creatures")
	if err != nil {
		return nil, err
	}

	plan := &salePlan{}
	for _, s := range species {
		if remaining == 0 {
			break
		}
		n := min(p.Sellable(s.ID), remaining)
		if n == 0 {
			continue
		}
		plan.lines = append(plan.lines, SaleLine{
			ID:        s.ID,
			Quantity:  n,
			UnitValue: tier.SaleValue(),
		})
		remaining -= n
	}
	return plan.apply(p), nil
}

// SellItems sells unequipped copies of an item. Asking for more than the
// unequipped copies fails with ItemEquipped when the rest are equipped.
func SellItems(p *entities.Profile, cat *catalog.Catalog, query string, q Quantity) (*SaleResult, error) {
	item, err := cat.ResolveItem(query)
	if err != nil {
		return nil, err
	}

	free := p.FreeItems(item.ID)
	equipped := p.Equipped.Count(item.ID)
	wantsEquipped := (q.All && free == 0) || (!q.All && q.N > free)
	if equipped > 0 && wantsEquipped {
		return nil, errors.ItemEquipped(item.ID)
	}

	n, err := q.resolve(free, item.ID)
	if err != nil {
		return nil, err
	}

	plan := &salePlan{
		items: true,
		lines: []SaleLine{{
			ID:        item.ID,
			Quantity:  n,
			UnitValue: item.SaleValue(),
		}},
	}
	return plan.apply(p), nil
}
