package economy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/game/economy"
	"github.com/KirkDiggler/critter-arena/internal/pkg/rng"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type EconomyTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	profile *entities.Profile
}

func TestEconomySuite(t *testing.T) {
	suite.Run(t, new(EconomyTestSuite))
}

func (s *EconomyTestSuite) SetupTest() {
	s.catalog = catalog.Default()
	s.profile = entities.NewProfile("user-1", testNow)
}

// requireUnchanged runs fn on the suite profile and checks that the error
// left the profile exactly as it was
func (s *EconomyTestSuite) requireUnchanged(reason errors.Reason, fn func() error) {
	before := s.profile.Clone()
	err := fn()
	s.Require().Error(err)
	s.Assert().True(errors.HasReason(err, reason), "got %v", err)
	s.Assert().Equal(before, s.profile)
}

func (s *EconomyTestSuite) TestClaimDaily() {
	result, err := economy.ClaimDaily(s.profile, testNow)
	s.Require().NoError(err)
	s.Assert().Equal(int64(economy.DailyCoins), s.profile.Coins)
	s.Assert().Equal(int64(economy.DailyEnergy), s.profile.Energy)
	s.Assert().Equal(testNow.Add(24*time.Hour), result.ReadyAt)

	later := testNow.Add(23 * time.Hour)
	before := s.profile.Clone()
	_, err = economy.ClaimDaily(s.profile, later)
	s.Require().Error(err)
	s.Assert().True(errors.HasReason(err, errors.ReasonCooldownActive))
	remaining, ok := errors.Remaining(err)
	s.Require().True(ok)
	s.Assert().Equal(time.Hour, remaining)
	s.Assert().Equal(before, s.profile)

	_, err = economy.ClaimDaily(s.profile, testNow.Add(24*time.Hour))
	s.Require().NoError(err)
	s.Assert().Equal(int64(2*economy.DailyCoins), s.profile.Coins)
}

func (s *EconomyTestSuite) TestHuntSpendsExactly() {
	s.profile.Coins = 25
	s.profile.Energy = 5

	result, err := economy.Hunt(s.profile, s.catalog, rng.NewSeeded(1), 25, testNow)
	s.Require().NoError(err)

	s.Assert().Equal(5, result.Rolls)
	s.Assert().Len(result.Drops, 5)
	s.Assert().Equal(int64(0), s.profile.Coins)
	s.Assert().Equal(int64(0), s.profile.Energy)
	s.Assert().Equal(testNow.Add(economy.HuntCooldown), s.profile.Cooldowns.Hunt)

	total := 0
	for id, n := range result.Counts() {
		s.Assert().Equal(n, s.profile.Owned(id))
		total += n
	}
	s.Assert().Equal(5, total)
}

func (s *EconomyTestSuite) TestHuntIsReproducible() {
	other := entities.NewProfile("user-2", testNow)
	for _, p := range []*entities.Profile{s.profile, other} {
		p.Coins = 500
		p.Energy = 100
	}

	a, err := economy.Hunt(s.profile, s.catalog, rng.NewSeeded(99), 500, testNow)
	s.Require().NoError(err)
	b, err := economy.Hunt(other, s.catalog, rng.NewSeeded(99), 500, testNow)
	s.Require().NoError(err)

	s.Assert().Equal(a.Drops, b.Drops)
	s.Assert().Equal(s.profile.Creatures, other.Creatures)
}

func (s *EconomyTestSuite) TestHuntValidation() {
	s.profile.Coins = 20
	s.profile.Energy = 2

	for _, amount := range []int64{0, -5, 7} {
		s.requireUnchanged(errors.ReasonInvalidAmount, func() error {
			_, err := economy.Hunt(s.profile, s.catalog, rng.NewSeeded(1), amount, testNow)
			return err
		})
	}

	s.requireUnchanged(errors.ReasonInsufficientFunds, func() error {
		_, err := economy.Hunt(s.profile, s.catalog, rng.NewSeeded(1), 25, testNow)
		return err
	})

	s.requireUnchanged(errors.ReasonInsufficientFunds, func() error {
		_, err := economy.Hunt(s.profile, s.catalog, rng.NewSeeded(1), 15, testNow)
		s.Assert().Equal("energy", errors.GetMeta(err)[errors.MetaResource])
		return err
	})

	s.profile.Cooldowns.Hunt = testNow.Add(time.Second)
	s.requireUnchanged(errors.ReasonCooldownActive, func() error {
		_, err := economy.Hunt(s.profile, s.catalog, rng.NewSeeded(1), 5, testNow)
		return err
	})
}

func (s *EconomyTestSuite) TestSellCreaturesRespectsReservations() {
	s.profile.Creatures["fox"] = 3
	s.profile.Team[entities.SlotAttack.Index()] = "fox"

	s.requireUnchanged(errors.ReasonInvalidAmount, func() error {
		_, err := economy.SellCreatures(s.profile, s.catalog, "fox", economy.Exactly(3))
		return err
	})

	result, err := economy.SellCreatures(s.profile, s.catalog, "fox", economy.Exactly(2))
	s.Require().NoError(err)
	s.Assert().Equal(int64(2)*entities.RarityCommon.SaleValue(), result.Coins)
	s.Assert().Equal(0, s.profile.Sellable("fox"))
	s.Assert().Equal(1, s.profile.Owned("fox"))

	s.requireUnchanged(errors.ReasonInvalidAmount, func() error {
		_, err := economy.SellCreatures(s.profile, s.catalog, "fox", economy.All())
		return err
	})
}

func (s *EconomyTestSuite) TestSellCreaturesAll() {
	s.profile.Creatures["tiger"] = 4

	result, err := economy.SellCreatures(s.profile, s.catalog, "🐅", economy.All())
	s.Require().NoError(err)
	s.Assert().Equal(int64(40), result.Coins)
	s.Assert().Equal(int64(40), s.profile.Coins)
	s.Assert().NotContains(s.profile.Creatures, "tiger")
}

func (s *EconomyTestSuite) TestSellRarity() {
	s.profile.Creatures["turtle"] = 2
	s.profile.Creatures["fox"] = 3
	s.profile.Creatures["rabbit"] = 1
	s.profile.Creatures["wolf"] = 5
	s.profile.Team = entities.Team{"turtle", "", "rabbit"}

	result, err := economy.SellRarity(s.profile, s.catalog, entities.RarityCommon, economy.All())
	s.Require().NoError(err)
	s.Assert().Equal([]economy.SaleLine{
		{ID: "turtle", Quantity: 1, UnitValue: 1},
		{ID: "fox", Quantity: 3, UnitValue: 1},
	}, result.Lines)
	s.Assert().Equal(int64(4), s.profile.Coins)
	s.Assert().Equal(1, s.profile.Owned("turtle"))
	s.Assert().Equal(1, s.profile.Owned("rabbit"))
	s.Assert().Equal(5, s.profile.Owned("wolf"))
}

func (s *EconomyTestSuite) TestSellRarityExactIsAtomic() {
	s.profile.Creatures["boar"] = 1
	s.profile.Creatures["wolf"] = 1

	s.requireUnchanged(errors.ReasonInvalidAmount, func() error {
		_, err := economy.SellRarity(s.profile, s.catalog, entities.RarityUncommon, economy.Exactly(3))
		return err
	})

	result, err := economy.SellRarity(s.profile, s.catalog, entities.RarityUncommon, economy.Exactly(2))
	s.Require().NoError(err)
	s.Assert().Len(result.Lines, 2)
	s.Assert().Equal(int64(6), s.profile.Coins)
}

func (s *EconomyTestSuite) TestBuyAndSellItems() {
	s.profile.Coins = 30

	purchase, err := economy.BuyItem(s.profile, s.catalog, "apple", 3)
	s.Require().NoError(err)
	s.Assert().Equal(int64(30), purchase.Cost)
	s.Assert().Equal(int64(0), s.profile.Coins)
	s.Assert().Equal(3, s.profile.Items["apple"])

	s.requireUnchanged(errors.ReasonInsufficientFunds, func() error {
		_, err := economy.BuyItem(s.profile, s.catalog, "apple", 1)
		return err
	})

	_, err = economy.EquipItem(s.profile, s.catalog, "apple", 1)
	s.Require().NoError(err)

	s.requireUnchanged(errors.ReasonItemEquipped, func() error {
		_, err := economy.SellItems(s.profile, s.catalog, "apple", economy.Exactly(3))
		return err
	})

	sale, err := economy.SellItems(s.profile, s.catalog, "apple", economy.All())
	s.Require().NoError(err)
	s.Assert().Equal(int64(10), sale.Coins)
	s.Assert().Equal(1, s.profile.Items["apple"])

	s.requireUnchanged(errors.ReasonItemEquipped, func() error {
		_, err := economy.SellItems(s.profile, s.catalog, "apple", economy.All())
		return err
	})
}

func (s *EconomyTestSuite) TestEquipReplacesAndDestroys() {
	s.profile.Items["apple"] = 1
	s.profile.Items["meat"] = 1

	_, err := economy.EquipItem(s.profile, s.catalog, "apple", 2)
	s.Require().NoError(err)
	s.profile.Equipped[1].Wins = 4

	result, err := economy.EquipItem(s.profile, s.catalog, "🍖", 2)
	s.Require().NoError(err)
	s.Assert().Equal("apple", result.Destroyed)
	s.Assert().Equal(entities.EquippedItem{ItemID: "meat", Wins: 0}, s.profile.Equipped[1])
	s.Assert().NotContains(s.profile.Items, "apple")

	s.requireUnchanged(errors.ReasonInvalidAmount, func() error {
		_, err := economy.SellItems(s.profile, s.catalog, "apple", economy.Exactly(1))
		return err
	})
}

func (s *EconomyTestSuite) TestEquipValidation() {
	s.requireUnchanged(errors.ReasonNotOwned, func() error {
		_, err := economy.EquipItem(s.profile, s.catalog, "cake", 1)
		return err
	})

	s.profile.Items["cake"] = 1
	s.requireUnchanged(errors.ReasonInvalidSlot, func() error {
		_, err := economy.EquipItem(s.profile, s.catalog, "cake", 4)
		return err
	})
	s.requireUnchanged(errors.ReasonUnknownEntity, func() error {
		_, err := economy.EquipItem(s.profile, s.catalog, "fox", 1)
		return err
	})

	_, err := economy.EquipItem(s.profile, s.catalog, "cake", 3)
	s.Require().NoError(err)
	s.requireUnchanged(errors.ReasonNotOwned, func() error {
		_, err := economy.EquipItem(s.profile, s.catalog, "cake", 1)
		return err
	})
}

func (s *EconomyTestSuite) TestUnequip() {
	s.profile.Items["honey"] = 1
	_, err := economy.EquipItem(s.profile, s.catalog, "honey", 1)
	s.Require().NoError(err)

	id, err := economy.UnequipItem(s.profile, 1)
	s.Require().NoError(err)
	s.Assert().Equal("honey", id)
	s.Assert().Equal(1, s.profile.FreeItems("honey"))

	_, err = economy.UnequipItem(s.profile, 1)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *EconomyTestSuite) TestApplyBattleResult() {
	s.profile.Equipped[0] = entities.EquippedItem{ItemID: "apple", Wins: 2}

	rewards := economy.ApplyBattleResult(s.profile, false, 1.2)
	s.Assert().Equal(entities.Rewards{}, rewards)
	s.Assert().Equal(2, s.profile.Equipped[0].Wins)

	rewards = economy.ApplyBattleResult(s.profile, true, 1.2)
	s.Assert().Equal(entities.Rewards{Coins: 12, Energy: 1}, rewards)
	s.Assert().Equal(int64(12), s.profile.Coins)
	s.Assert().Equal(int64(1), s.profile.Energy)
	s.Assert().Equal(3, s.profile.Equipped[0].Wins)
	s.Assert().Equal(0, s.profile.Equipped[1].Wins)
}

func TestBattleCoins(t *testing.T) {
	assert.Equal(t, int64(9), economy.BattleCoins(0.85))
	assert.Equal(t, int64(13), economy.BattleCoins(1.30))
	assert.Equal(t, int64(5), economy.BattleCoins(0.2))
}

func TestRarityWeightsSumToHundred(t *testing.T) {
	total := 0
	for _, r := range entities.Rarities() {
		total += r.Weight()
	}
	assert.Equal(t, 100, total)
}

func TestRarityFor(t *testing.T) {
	testCases := []struct {
		draw     float64
		expected entities.Rarity
	}{
		{0, entities.RarityCommon},
		{45, entities.RarityCommon},
		{45.001, entities.RarityUncommon},
		{70, entities.RarityUncommon},
		{85, entities.RarityRare},
		{93, entities.RarityEpic},
		{97, entities.RarityMythic},
		{99, entities.RarityLegendary},
		{99.5, entities.RarityHidden},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, economy.RarityFor(tc.draw), "draw %v", tc.draw)
	}
}

func TestDrawRarityConvergesToWeights(t *testing.T) {
	const samples = 200000
	roller := rng.NewSeeded(2024)

	counts := make(map[entities.Rarity]int)
	for i := 0; i < samples; i++ {
		r, err := economy.DrawRarity(roller)
		require.NoError(t, err)
		counts[r]++
	}

	for _, r := range entities.Rarities() {
		observed := 100 * float64(counts[r]) / samples
		assert.InDelta(t, float64(r.Weight()), observed, 0.5, "tier %s", r)
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := economy.ParseQuantity(" ALL ")
	require.NoError(t, err)
	assert.True(t, q.All)

	q, err = economy.ParseQuantity("3")
	require.NoError(t, err)
	assert.Equal(t, economy.Exactly(3), q)
	assert.Equal(t, "3", q.String())

	for _, bad := range []string{"0", "-2", "lots", ""} {
		_, err := economy.ParseQuantity(bad)
		assert.True(t, errors.HasReason(err, errors.ReasonInvalidAmount), bad)
	}
}
