// Package audit finds and repairs stored profiles that break the roster
// invariants, such as data written by an older catalog.
package audit

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
)

// Issue is one broken invariant and the fix applied for it
type Issue struct {
	Field  string
	Detail string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Detail
}

// Check reports every broken invariant without changing p
func Check(p *entities.Profile, cat *catalog.Catalog) []Issue {
	return inspect(p.Clone(), cat)
}

// Repair fixes p in place and returns what it changed. Repairs only ever
// remove state: unknown entries are dropped and slots that cannot be backed
// by the inventory are cleared, highest slot first.
func Repair(p *entities.Profile, cat *catalog.Catalog) []Issue {
	return inspect(p, cat)
}

func inspect(p *entities.Profile, cat *catalog.Catalog) []Issue {
	p.Normalize()
	var issues []Issue

	if p.Coins < 0 {
		issues = append(issues, Issue{"coins", fmt.Sprintf("negative balance %d reset to 0", p.Coins)})
		p.Coins = 0
	}
	if p.Energy < 0 {
		issues = append(issues, Issue{"energy", fmt.Sprintf("negative balance %d reset to 0", p.Energy)})
		p.Energy = 0
	}

	for _, id := range sortedKeys(p.Creatures) {
		if _, ok := cat.Species(id); !ok {
			issues = append(issues, Issue{"creatures", fmt.Sprintf("unknown species %q dropped", id)})
			delete(p.Creatures, id)
		} else if p.Creatures[id] <= 0 {
			issues = append(issues, Issue{"creatures", fmt.Sprintf("non-positive count for %q dropped", id)})
			delete(p.Creatures, id)
		}
	}
	for _, id := range sortedKeys(p.Items) {
		if _, ok := cat.Item(id); !ok {
			issues = append(issues, Issue{"items", fmt.Sprintf("unknown item %q dropped", id)})
			delete(p.Items, id)
		} else if p.Items[id] <= 0 {
			issues = append(issues, Issue{"items", fmt.Sprintf("non-positive count for %q dropped", id)})
			delete(p.Items, id)
		}
	}

	for _, slot := range entities.Slots() {
		id := p.Team.Get(slot)
		if id == "" {
			continue
		}
		species, ok := cat.Species(id)
		switch {
		case !ok:
			issues = append(issues, teamIssue(slot, "unknown species %q", id))
			p.Team[slot.Index()] = ""
		case species.Role != slot.Role():
			issues = append(issues, teamIssue(slot, "%s is a %s", id, species.Role))
			p.Team[slot.Index()] = ""
		}
	}
	for i := entities.SlotCount - 1; i >= 0; i-- {
		id := p.Team[i]
		if id != "" && p.Team.Reserved(id) > p.Creatures[id] {
			issues = append(issues, teamIssue(entities.Slot(i+1), "%s is not owned", id))
			p.Team[i] = ""
		}
	}

	for i := entities.SlotCount - 1; i >= 0; i-- {
		eq := p.Equipped[i]
		if eq.Empty() {
			if eq.Wins != 0 {
				p.Equipped[i].Wins = 0
			}
			continue
		}
		_, known := cat.Item(eq.ItemID)
		if !known || p.Equipped.Count(eq.ItemID) > p.Items[eq.ItemID] {
			issues = append(issues, Issue{
				Field:  fmt.Sprintf("equipped[%d]", i+1),
				Detail: fmt.Sprintf("%s is not owned, slot cleared", eq.ItemID),
			})
			p.Equipped[i] = entities.EquippedItem{}
		}
	}

	return issues
}

func teamIssue(slot entities.Slot, format string, args ...interface{}) Issue {
	return Issue{
		Field:  fmt.Sprintf("team[%d]", slot),
		Detail: fmt.Sprintf(format, args...) + ", slot cleared",
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
