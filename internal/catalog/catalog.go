// Package catalog provides the immutable registry of species and items.
//
// A Catalog is built once at startup and shared by every component. Nothing
// mutates it after New returns, so concurrent reads need no locking.
package catalog

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
)

// Catalog is the read-only species and item registry
type Catalog struct {
	species     []*entities.Species
	items       []*entities.Item
	speciesByID map[string]*entities.Species
	itemsByID   map[string]*entities.Item
	index       map[string]core.Entity
	byTier      [entities.RarityCount][]*entities.Species
}

// New validates the definitions and builds a catalog from copies of them
func New(species []entities.Species, items []entities.Item) (*Catalog, error) {
	c := &Catalog{
		speciesByID: make(map[string]*entities.Species, len(species)),
		itemsByID:   make(map[string]*entities.Item, len(items)),
		index:       make(map[string]core.Entity),
	}

	for i := range species {
		s := species[i]
		s.Aliases = append([]string(nil), s.Aliases...)
		if err := validateSpecies(&s); err != nil {
			return nil, err
		}
		if err := c.register(&s, s.Emoji, s.Aliases); err != nil {
			return nil, err
		}
		c.species = append(c.species, &s)
		c.speciesByID[s.ID] = &s
		c.byTier[s.Rarity] = append(c.byTier[s.Rarity], &s)
	}

	for i := range items {
		it := items[i]
		it.Aliases = append([]string(nil), it.Aliases...)
		if it.ID == "" {
			return nil, errors.InvalidArgument("item ID cannot be empty")
		}
		if !it.Rarity.Valid() {
			return nil, errors.InvalidArgumentf("item %s has invalid rarity %d", it.ID, it.Rarity)
		}
		if it.Cost <= 0 {
			return nil, errors.InvalidArgumentf("item %s must cost at least 1 coin", it.ID)
		}
		if err := c.register(&it, it.Emoji, it.Aliases); err != nil {
			return nil, err
		}
		c.items = append(c.items, &it)
		c.itemsByID[it.ID] = &it
	}

	for _, r := range entities.Rarities() {
		if len(c.byTier[r]) == 0 {
			return nil, errors.InvalidArgumentf("rarity %s has no species", r)
		}
	}

	return c, nil
}

func validateSpecies(s *entities.Species) error {
	if s.ID == "" {
		return errors.InvalidArgument("species ID cannot be empty")
	}
	if !s.Rarity.Valid() {
		return errors.InvalidArgumentf("species %s has invalid rarity %d", s.ID, s.Rarity)
	}
	if entities.SlotForRole(s.Role) == 0 {
		return errors.InvalidArgumentf("species %s has invalid role %q", s.ID, s.Role)
	}
	if s.Base.HP <= 0 {
		return errors.InvalidArgumentf("species %s must have positive HP", s.ID)
	}
	return nil
}

// register indexes the id, emoji and aliases of one entity. A key may only
// point at one entity.
func (c *Catalog) register(entity core.Entity, emoji string, aliases []string) error {
	keys := make([]string, 0, len(aliases)+2)
	keys = append(keys, normalize(entity.GetID()))
	if emoji != "" {
		keys = append(keys, normalizeEmoji(emoji))
	}
	for _, alias := range aliases {
		keys = append(keys, normalize(alias))
	}

	for _, key := range keys {
		if key == "" {
			continue
		}
		if existing, ok := c.index[key]; ok && existing != entity {
			return errors.InvalidArgumentf("alias %q is used by both %s %s and %s %s",
				key, existing.GetType(), existing.GetID(), entity.GetType(), entity.GetID())
		}
		c.index[key] = entity
	}
	return nil
}

// Resolve maps an id, alias, or emoji to the species or item it names.
// The returned entity is a *entities.Species or *entities.Item, told apart
// by GetType.
func (c *Catalog) Resolve(query string) (core.Entity, error) {
	if entity, ok := c.index[normalize(query)]; ok {
		return entity, nil
	}
	if entity, ok := c.index[normalizeEmoji(query)]; ok {
		return entity, nil
	}
	return nil, errors.UnknownEntity(query)
}

// ResolveSpecies resolves a query that must name a species
func (c *Catalog) ResolveSpecies(query string) (*entities.Species, error) {
	entity, err := c.Resolve(query)
	if err != nil {
		return nil, err
	}
	s, ok := entity.(*entities.Species)
	if !ok {
		return nil, errors.UnknownEntity(query)
	}
	return s, nil
}

// ResolveItem resolves a query that must name an item
func (c *Catalog) ResolveItem(query string) (*entities.Item, error) {
	entity, err := c.Resolve(query)
	if err != nil {
		return nil, err
	}
	it, ok := entity.(*entities.Item)
	if !ok {
		return nil, errors.UnknownEntity(query)
	}
	return it, nil
}

// Species looks up a species by id
func (c *Catalog) Species(id string) (*entities.Species, bool) {
	s, ok := c.speciesByID[id]
	return s, ok
}

// Item looks up an item by id
func (c *Catalog) Item(id string) (*entities.Item, bool) {
	it, ok := c.itemsByID[id]
	return it, ok
}

// AllSpecies returns every species in definition order
func (c *Catalog) AllSpecies() []*entities.Species {
	return append([]*entities.Species(nil), c.species...)
}

// AllItems returns every item in definition order
func (c *Catalog) AllItems() []*entities.Item {
	return append([]*entities.Item(nil), c.items...)
}

// SpeciesByTier returns the species of one tier in definition order
func (c *Catalog) SpeciesByTier(r entities.Rarity) []*entities.Species {
	if !r.Valid() {
		return nil
	}
	return append([]*entities.Species(nil), c.byTier[r]...)
}

// SpeciesByRole returns the species of a role within the given tiers,
// ordered by tier then definition order
func (c *Catalog) SpeciesByRole(role entities.Role, tiers []entities.Rarity) []*entities.Species {
	var out []*entities.Species
	for _, r := range tiers {
		if !r.Valid() {
			continue
		}
		for _, s := range c.byTier[r] {
			if s.Role == role {
				out = append(out, s)
			}
		}
	}
	return out
}

// normalize lowercases and collapses separators so "Red Panda", "red_panda"
// and " red-panda " share a key
func normalize(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})
	return strings.Join(fields, " ")
}

// normalizeEmoji drops the variation selector chat clients append to some emoji
func normalizeEmoji(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\uFE0F", "")
}
