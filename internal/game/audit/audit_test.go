package audit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/game/audit"
)

func healthy() *entities.Profile {
	p := entities.NewProfile("user-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	p.Coins = 30
	p.Energy = 4
	p.Creatures = map[string]int{"turtle": 1, "fox": 2, "rabbit": 1}
	p.Team = entities.Team{"turtle", "fox", "rabbit"}
	p.Items = map[string]int{"apple": 2}
	p.Equipped[0] = entities.EquippedItem{ItemID: "apple", Wins: 3}
	p.Equipped[1] = entities.EquippedItem{ItemID: "apple"}
	return p
}

func TestHealthyProfileHasNoIssues(t *testing.T) {
	p := healthy()
	assert.Empty(t, audit.Check(p, catalog.Default()))
	assert.Empty(t, audit.Repair(p, catalog.Default()))
	assert.Equal(t, healthy(), p)
}

func TestCheckDoesNotModify(t *testing.T) {
	p := healthy()
	p.Coins = -5
	p.Creatures["griffin"] = 1

	issues := audit.Check(p, catalog.Default())
	assert.Len(t, issues, 2)
	assert.Equal(t, int64(-5), p.Coins)
	assert.Contains(t, p.Creatures, "griffin")
}

func TestRepair(t *testing.T) {
	cat := catalog.Default()
	p := healthy()
	p.Coins = -5
	p.Energy = -1
	p.Creatures["griffin"] = 1
	p.Creatures["wolf"] = 0
	p.Creatures["rabbit"] = 0
	p.Items["relic"] = 1
	p.Items["apple"] = 1
	p.Team[0] = "fox"
	p.Equipped[2] = entities.EquippedItem{ItemID: "relic", Wins: 1}

	issues := audit.Repair(p, cat)

	fields := make([]string, len(issues))
	for i, issue := range issues {
		fields[i] = issue.Field
	}
	assert.Equal(t, []string{
		"coins",
		"energy",
		"creatures", // griffin
		"creatures", // rabbit
		"creatures", // wolf
		"items",     // relic
		"team[1]",   // fox in the tank slot
		"team[3]",   // rabbit no longer owned
		"equipped[3]",
		"equipped[2]", // second apple copy
	}, fields)

	assert.Equal(t, int64(0), p.Coins)
	assert.Equal(t, int64(0), p.Energy)
	assert.Equal(t, map[string]int{"turtle": 1, "fox": 2}, p.Creatures)
	assert.Equal(t, map[string]int{"apple": 1}, p.Items)
	assert.Equal(t, entities.Team{"", "fox", ""}, p.Team)
	assert.Equal(t, entities.EquippedItem{ItemID: "apple", Wins: 3}, p.Equipped[0])
	assert.True(t, p.Equipped[1].Empty())
	assert.True(t, p.Equipped[2].Empty())

	assert.Empty(t, audit.Check(p, cat), "repair must leave a consistent profile")
}

func TestRepairClearsHighestDuplicateSlot(t *testing.T) {
	cat := catalog.Default()
	p := healthy()
	p.Items["apple"] = 1

	issues := audit.Repair(p, cat)
	require.Len(t, issues, 1)
	assert.Equal(t, "equipped[2]", issues[0].Field)
	assert.Equal(t, "apple", p.Equipped[0].ItemID)
	assert.Contains(t, issues[0].String(), "apple is not owned")
}

func TestRepairFillsNilMaps(t *testing.T) {
	p := &entities.Profile{UserID: "user-1"}
	assert.Empty(t, audit.Repair(p, catalog.Default()))
	assert.NotNil(t, p.Creatures)
	assert.NotNil(t, p.Items)
}
