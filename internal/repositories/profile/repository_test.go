package profile_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/pkg/clock"
	"github.com/KirkDiggler/critter-arena/internal/repositories/profile"
	"github.com/KirkDiggler/critter-arena/internal/testutils"
)

var testStart = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// RepositoryTestSuite runs the same contract against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T, c clock.Clock) (profile.Repository, func())

	clock   *clock.Manual
	repo    profile.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, c clock.Clock) (profile.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := profile.NewRedis(&profile.RedisConfig{Client: client, Clock: c})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, c clock.Clock) (profile.Repository, func()) {
			repo, err := profile.NewSQLite(&profile.SQLiteConfig{
				Path:  filepath.Join(t.TempDir(), "profiles.db"),
				Clock: c,
			})
			if err != nil {
				t.Fatal(err)
			}
			return repo, func() { _ = repo.Close() }
		},
	})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(_ *testing.T, c clock.Clock) (profile.Repository, func()) {
			return profile.NewInMemory(c), func() {}
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.clock = clock.NewManual(testStart)
	s.repo, s.cleanup = s.newRepo(s.T(), s.clock)
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestGetCreatesDefaultProfile() {
	out, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "user-1"})
	s.Require().NoError(err)

	s.Assert().True(out.Created)
	s.Assert().Equal("user-1", out.Profile.UserID)
	s.Assert().Equal(int64(0), out.Profile.Coins)
	s.Assert().Equal(int64(0), out.Profile.Version)
	s.Assert().NotNil(out.Profile.Creatures)
	s.Assert().True(testStart.Equal(out.Profile.CreatedAt))

	again, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Assert().False(again.Created)
	s.Assert().Equal(out.Profile.UserID, again.Profile.UserID)
}

func (s *RepositoryTestSuite) TestSaveRoundTrip() {
	out, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "user-1"})
	s.Require().NoError(err)

	p := out.Profile
	p.Coins = 120
	p.Energy = 7
	p.Creatures["fox"] = 3
	p.Items["apple"] = 2
	p.Team[entities.SlotAttack.Index()] = "fox"
	p.Equipped[0] = entities.EquippedItem{ItemID: "apple", Wins: 4}
	p.Cooldowns.Hunt = testStart.Add(10 * time.Second)
	p.LastEnemy = entities.Signature{"turtle", "fox", "rabbit"}

	s.clock.Advance(time.Minute)
	saved, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), saved.Profile.Version)
	s.Assert().True(testStart.Add(time.Minute).Equal(saved.Profile.UpdatedAt))
	s.Assert().Equal(int64(0), p.Version, "input profile is not modified")

	loaded, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "user-1"})
	s.Require().NoError(err)
	got := loaded.Profile

	s.Assert().Equal(int64(1), got.Version)
	s.Assert().Equal(int64(120), got.Coins)
	s.Assert().Equal(int64(7), got.Energy)
	s.Assert().Equal(map[string]int{"fox": 3}, got.Creatures)
	s.Assert().Equal(map[string]int{"apple": 2}, got.Items)
	s.Assert().Equal(p.Team, got.Team)
	s.Assert().Equal(p.Equipped, got.Equipped)
	s.Assert().Equal(p.LastEnemy, got.LastEnemy)
	s.Assert().True(p.Cooldowns.Hunt.Equal(got.Cooldowns.Hunt))
}

func (s *RepositoryTestSuite) TestSaveRejectsStaleVersion() {
	out, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "user-1"})
	s.Require().NoError(err)

	first := out.Profile.Clone()
	second := out.Profile.Clone()

	first.Coins = 10
	_, err = s.repo.Save(s.ctx, profile.SaveInput{Profile: first})
	s.Require().NoError(err)

	second.Coins = 99
	_, err = s.repo.Save(s.ctx, profile.SaveInput{Profile: second})
	s.Require().Error(err)
	s.Assert().True(errors.IsAborted(err), "got %v", err)

	loaded, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Assert().Equal(int64(10), loaded.Profile.Coins)
}

func (s *RepositoryTestSuite) TestSaveUnknownProfile() {
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: entities.NewProfile("ghost", testStart)})
	s.Assert().True(errors.IsNotFound(err), "got %v", err)
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, profile.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, profile.SaveInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, profile.SaveInput{Profile: &entities.Profile{}})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestConcurrentFirstGet() {
	var wg sync.WaitGroup
	created := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "user-1"})
			if s.Assert().NoError(err) {
				created <- out.Created
			}
		}()
	}
	wg.Wait()
	close(created)

	n := 0
	for c := range created {
		if c {
			n++
		}
	}
	s.Assert().Equal(1, n)
}

func TestConfigValidation(t *testing.T) {
	_, err := profile.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = profile.NewRedis(&profile.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = profile.NewSQLite(&profile.SQLiteConfig{Path: "  "})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
