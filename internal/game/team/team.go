// Package team manages the three role-bound team slots of a profile
package team

import (
	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
)

// AssignResult reports what an assignment changed
type AssignResult struct {
	Slot     entities.Slot
	Species  *entities.Species
	Replaced string
}

// ValidateSlot checks that a raw slot number is 1, 2 or 3
func ValidateSlot(slot int) (entities.Slot, error) {
	s := entities.Slot(slot)
	if !s.Valid() {
		return 0, errors.InvalidSlot(slot)
	}
	return s, nil
}

// Assign puts a species into a slot. The role check runs before the
// ownership check, so a wrong-role creature is rejected even when owned.
func Assign(p *entities.Profile, cat *catalog.Catalog, speciesQuery string, slot int) (*AssignResult, error) {
	s, err := ValidateSlot(slot)
	if err != nil {
		return nil, err
	}

	species, err := cat.ResolveSpecies(speciesQuery)
	if err != nil {
		return nil, err
	}

	if species.Role != s.Role() {
		return nil, errors.RoleMismatch(slot, string(s.Role()), string(species.Role))
	}

	// A species has one role, so it can only ever sit in one slot and one
	// owned copy is always enough.
	if p.Owned(species.ID) == 0 && p.Team.Reserved(species.ID) == 0 {
		return nil, errors.NotOwned(species.ID)
	}

	replaced := p.Team[s.Index()]
	p.Team[s.Index()] = species.ID

	return &AssignResult{
		Slot:     s,
		Species:  species,
		Replaced: replaced,
	}, nil
}

// Clear empties a slot and returns the species id that was there
func Clear(p *entities.Profile, slot int) (string, error) {
	s, err := ValidateSlot(slot)
	if err != nil {
		return "", err
	}
	previous := p.Team[s.Index()]
	p.Team[s.Index()] = ""
	return previous, nil
}

// Lineup builds the combat-ready team: species stats plus equipped item
// bonuses per slot. Any empty slot fails with TeamIncomplete.
func Lineup(p *entities.Profile, cat *catalog.Catalog) (entities.Lineup, error) {
	var lineup entities.Lineup
	for _, s := range entities.Slots() {
		speciesID := p.Team.Get(s)
		if speciesID == "" {
			return lineup, errors.TeamIncomplete(int(s))
		}
		species, ok := cat.Species(speciesID)
		if !ok {
			return lineup, errors.Internalf("team slot %d holds unknown species %s", s, speciesID)
		}

		fighter := entities.Fighter{
			SpeciesID: species.ID,
			Stats:     species.Base,
		}
		if eq := p.Equipped[s.Index()]; !eq.Empty() {
			item, ok := cat.Item(eq.ItemID)
			if !ok {
				return lineup, errors.Internalf("slot %d has unknown item %s equipped", s, eq.ItemID)
			}
			fighter.ItemID = item.ID
			fighter.Stats = fighter.Stats.Add(item.Bonus)
		}
		lineup[s.Index()] = fighter
	}
	return lineup, nil
}

// Rarities returns the tier of each team member, in slot order. Used for
// the matchmaking band.
func Rarities(l entities.Lineup, cat *catalog.Catalog) ([]entities.Rarity, error) {
	out := make([]entities.Rarity, 0, len(l))
	for _, f := range l {
		species, ok := cat.Species(f.SpeciesID)
		if !ok {
			return nil, errors.Internalf("unknown species %s in lineup", f.SpeciesID)
		}
		out = append(out, species.Rarity)
	}
	return out, nil
}
