package catalog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = catalog.Default()
}

func (s *CatalogTestSuite) TestResolve() {
	testCases := []struct {
		name  string
		query string
		kind  string
		id    string
	}{
		{"id", "fox", entities.EntityTypeSpecies, "fox"},
		{"upper case id", "FOX", entities.EntityTypeSpecies, "fox"},
		{"alias", "bunny", entities.EntityTypeSpecies, "rabbit"},
		{"alias with separators", "  T_Rex ", entities.EntityTypeSpecies, "trex"},
		{"emoji", "🐢", entities.EntityTypeSpecies, "turtle"},
		{"emoji with variation selector", "🐢️", entities.EntityTypeSpecies, "turtle"},
		{"zwj emoji", "🐦‍🔥", entities.EntityTypeSpecies, "phoenix"},
		{"item", "apple", entities.EntityTypeItem, "apple"},
		{"item alias", "Honey-Pot", entities.EntityTypeItem, "honey"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			entity, err := s.catalog.Resolve(tc.query)
			s.Require().NoError(err)
			s.Assert().Equal(tc.kind, entity.GetType())
			s.Assert().Equal(tc.id, entity.GetID())
		})
	}
}

func (s *CatalogTestSuite) TestResolveReturnsCatalogEntities() {
	entity, err := s.catalog.Resolve("🦊")
	s.Require().NoError(err)
	species, ok := entity.(*entities.Species)
	s.Require().True(ok)
	fox, _ := s.catalog.Species("fox")
	s.Assert().Same(fox, species)

	entity, err = s.catalog.Resolve("apple")
	s.Require().NoError(err)
	item, ok := entity.(*entities.Item)
	s.Require().True(ok)
	apple, _ := s.catalog.Item("apple")
	s.Assert().Same(apple, item)
}

func (s *CatalogTestSuite) TestResolveUnknown() {
	_, err := s.catalog.Resolve("griffin")
	s.Require().Error(err)
	s.Assert().True(errors.HasReason(err, errors.ReasonUnknownEntity))
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestResolveWrongKind() {
	_, err := s.catalog.ResolveSpecies("apple")
	s.Assert().True(errors.HasReason(err, errors.ReasonUnknownEntity))

	_, err = s.catalog.ResolveItem("fox")
	s.Assert().True(errors.HasReason(err, errors.ReasonUnknownEntity))

	item, err := s.catalog.ResolveItem("🍖")
	s.Require().NoError(err)
	s.Assert().Equal("meat", item.ID)
}

func (s *CatalogTestSuite) TestEveryTierHasEveryRole() {
	for _, r := range entities.Rarities() {
		for _, role := range []entities.Role{entities.RoleTank, entities.RoleAttack, entities.RoleSupport} {
			got := s.catalog.SpeciesByRole(role, []entities.Rarity{r})
			s.Assert().NotEmpty(got, "tier %s role %s", r, role)
		}
	}
}

func (s *CatalogTestSuite) TestSpeciesByRoleOrdersByTier() {
	got := s.catalog.SpeciesByRole(entities.RoleTank, []entities.Rarity{entities.RarityRare, entities.RarityCommon})
	s.Require().Len(got, 2)
	s.Assert().Equal("rhino", got[0].ID)
	s.Assert().Equal("turtle", got[1].ID)
}

func (s *CatalogTestSuite) TestReturnedSlicesAreCopies() {
	tier := s.catalog.SpeciesByTier(entities.RarityCommon)
	tier[0] = nil
	s.Assert().NotNil(s.catalog.SpeciesByTier(entities.RarityCommon)[0])
}

func (s *CatalogTestSuite) TestConcurrentReads() {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = s.catalog.Resolve("wolf")
				_ = s.catalog.SpeciesByTier(entities.RarityEpic)
			}
		}()
	}
	wg.Wait()
}

func TestNewRejectsBadDefinitions(t *testing.T) {
	valid := func() []entities.Species {
		return append([]entities.Species(nil), catalog.DefaultSpecies...)
	}

	t.Run("duplicate alias across entries", func(t *testing.T) {
		species := valid()
		species[0].Aliases = []string{"wolf"}
		_, err := catalog.New(species, nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "wolf")
	})

	t.Run("empty tier", func(t *testing.T) {
		var species []entities.Species
		for _, sp := range catalog.DefaultSpecies {
			if sp.Rarity != entities.RarityHidden {
				species = append(species, sp)
			}
		}
		_, err := catalog.New(species, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rarity hidden has no species")
	})

	t.Run("invalid role", func(t *testing.T) {
		species := valid()
		species[0].Role = "healer"
		_, err := catalog.New(species, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid role")
	})

	t.Run("free item", func(t *testing.T) {
		_, err := catalog.New(valid(), []entities.Item{{ID: "air", Rarity: entities.RarityCommon}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must cost at least 1 coin")
	})

	t.Run("input is copied", func(t *testing.T) {
		species := valid()
		c, err := catalog.New(species, nil)
		require.NoError(t, err)
		species[0].Base.HP = 999
		got, ok := c.Species(catalog.DefaultSpecies[0].ID)
		require.True(t, ok)
		assert.NotEqual(t, 999, got.Base.HP)
	})
}
