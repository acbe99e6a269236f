// Package arena implements the caller-facing game operations.
//
// Every mutating operation follows the same shape: take the per-user lock,
// load the profile, apply the game rules to a copy, and save the copy only
// when the whole operation succeeded. A failed operation never writes.
package arena

//go:generate mockgen -destination=mock/mock_service.go -package=arenamock github.com/KirkDiggler/critter-arena/internal/orchestrators/arena Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/game/combat"
	"github.com/KirkDiggler/critter-arena/internal/game/economy"
	"github.com/KirkDiggler/critter-arena/internal/game/matchmaker"
	"github.com/KirkDiggler/critter-arena/internal/game/team"
	"github.com/KirkDiggler/critter-arena/internal/pkg/clock"
	"github.com/KirkDiggler/critter-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/critter-arena/internal/pkg/keylock"
	"github.com/KirkDiggler/critter-arena/internal/pkg/rng"
	battlelog "github.com/KirkDiggler/critter-arena/internal/repositories/battle_log"
	"github.com/KirkDiggler/critter-arena/internal/repositories/profile"
)

// Service defines the game operations available to callers
type Service interface {
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)
	ResolveEntity(ctx context.Context, input *ResolveEntityInput) (*ResolveEntityOutput, error)

	// Economy
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)
	Hunt(ctx context.Context, input *HuntInput) (*HuntOutput, error)
	SellCreature(ctx context.Context, input *SellCreatureInput) (*SellOutput, error)
	SellRarity(ctx context.Context, input *SellRarityInput) (*SellOutput, error)
	SellItem(ctx context.Context, input *SellItemInput) (*SellOutput, error)
	BuyItem(ctx context.Context, input *BuyItemInput) (*BuyItemOutput, error)

	// Team
	AssignSlot(ctx context.Context, input *AssignSlotInput) (*AssignSlotOutput, error)
	ClearSlot(ctx context.Context, input *ClearSlotInput) (*ClearSlotOutput, error)
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)

	// Battles
	Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error)
	ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error)
}

// Resolver runs a battle between two lineups
type Resolver func(player, enemy entities.Lineup) *combat.Result

// Config holds the dependencies for the arena orchestrator
type Config struct {
	ProfileRepo profile.Repository
	Catalog     *catalog.Catalog
	IDGenerator idgen.Generator

	// Optional; nil disables battle history
	BattleLog battlelog.Repository
	// Optional; defaults to the real clock
	Clock clock.Clock
	// Optional; defaults to rng.Default
	Rolls rng.Factory
	// Optional; defaults to a fresh keylock.Locker
	Locker *keylock.Locker
	// Optional; defaults to combat.Resolve
	Resolver Resolver
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	profileRepo profile.Repository
	battleLog   battlelog.Repository
	catalog     *catalog.Catalog
	matchmaker  *matchmaker.Matchmaker
	idGen       idgen.Generator
	clock       clock.Clock
	rolls       rng.Factory
	locker      *keylock.Locker
	resolver    Resolver
}

// NewOrchestrator creates a new arena orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		profileRepo: cfg.ProfileRepo,
		battleLog:   cfg.BattleLog,
		catalog:     cfg.Catalog,
		matchmaker:  matchmaker.New(cfg.Catalog),
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		rolls:       cfg.Rolls,
		locker:      cfg.Locker,
		resolver:    cfg.Resolver,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.rolls == nil {
		o.rolls = rng.Default()
	}
	if o.locker == nil {
		o.locker = keylock.New()
	}
	if o.resolver == nil {
		o.resolver = combat.Resolve
	}
	return o, nil
}

// mutate applies fn to a copy of the user's profile while holding the
// user's lock, and saves the copy only if fn succeeds
func (o *orchestrator) mutate(
	ctx context.Context,
	userID string,
	fn func(p *entities.Profile, now time.Time) error,
) (*entities.Profile, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	unlock, err := o.locker.Lock(ctx, userID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "gave up waiting for profile")
	}
	defer unlock()

	out, err := o.profileRepo.Get(ctx, profile.GetInput{UserID: userID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load profile %s", userID)
	}

	p := out.Profile.Clone()
	if err := fn(p, o.clock.Now()); err != nil {
		return nil, err
	}

	saved, err := o.profileRepo.Save(ctx, profile.SaveInput{Profile: p})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save profile %s", userID)
	}
	return saved.Profile, nil
}

func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	out, err := o.profileRepo.Get(ctx, profile.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load profile %s", input.UserID)
	}
	return &GetProfileOutput{Profile: out.Profile}, nil
}

func (o *orchestrator) ResolveEntity(_ context.Context, input *ResolveEntityInput) (*ResolveEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entity, err := o.catalog.Resolve(input.Query)
	if err != nil {
		return nil, err
	}

	return &ResolveEntityOutput{Entity: entity}, nil
}

func (o *orchestrator) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *economy.DailyResult
	p, err := o.mutate(ctx, input.UserID, func(p *entities.Profile, now time.Time) error {
		var err error
		result, err = economy.ClaimDaily(p, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "daily claimed",
		"user_id", input.UserID,
		"coins", result.Coins,
		"energy", result.Energy,
	)

	return &ClaimDailyOutput{
		Coins:   result.Coins,
		Energy:  result.Energy,
		ReadyAt: result.ReadyAt,
		Profile: p,
	}, nil
}

func (o *orchestrator) Hunt(ctx context.Context, input *HuntInput) (*HuntOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *economy.HuntResult
	p, err := o.mutate(ctx, input.UserID, func(p *entities.Profile, now time.Time) error {
		var err error
		result, err = economy.Hunt(p, o.catalog, o.rolls(), input.Amount, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "hunt completed",
		"user_id", input.UserID,
		"rolls", result.Rolls,
		"coins_spent", result.CoinsSpent,
	)

	return &HuntOutput{Result: result, Profile: p}, nil
}

func (o *orchestrator) SellCreature(ctx context.Context, input *SellCreatureInput) (*SellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.sell(ctx, input.UserID, func(p *entities.Profile) (*economy.SaleResult, error) {
		return economy.SellCreatures(p, o.catalog, input.Query, input.Quantity)
	})
}

func (o *orchestrator) SellRarity(ctx context.Context, input *SellRarityInput) (*SellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Rarity.Valid() {
		return nil, errors.InvalidArgumentf("unknown rarity %d", input.Rarity)
	}
	return o.sell(ctx, input.UserID, func(p *entities.Profile) (*economy.SaleResult, error) {
		return economy.SellRarity(p, o.catalog, input.Rarity, input.Quantity)
	})
}

func (o *orchestrator) SellItem(ctx context.Context, input *SellItemInput) (*SellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.sell(ctx, input.UserID, func(p *entities.Profile) (*economy.SaleResult, error) {
		return economy.SellItems(p, o.catalog, input.Query, input.Quantity)
	})
}

func (o *orchestrator) sell(
	ctx context.Context,
	userID string,
	fn func(p *entities.Profile) (*economy.SaleResult, error),
) (*SellOutput, error) {
	var sale *economy.SaleResult
	p, err := o.mutate(ctx, userID, func(p *entities.Profile, _ time.Time) error {
		var err error
		sale, err = fn(p)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "sold",
		"user_id", userID,
		"lines", len(sale.Lines),
		"coins", sale.Coins,
	)

	return &SellOutput{Sale: sale, Profile: p}, nil
}

func (o *orchestrator) BuyItem(ctx context.Context, input *BuyItemInput) (*BuyItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var purchase *economy.PurchaseResult
	p, err := o.mutate(ctx, input.UserID, func(p *entities.Profile, _ time.Time) error {
		var err error
		purchase, err = economy.BuyItem(p, o.catalog, input.Query, input.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &BuyItemOutput{Purchase: purchase, Profile: p}, nil
}

func (o *orchestrator) AssignSlot(ctx context.Context, input *AssignSlotInput) (*AssignSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *team.AssignResult
	p, err := o.mutate(ctx, input.UserID, func(p *entities.Profile, _ time.Time) error {
		var err error
		result, err = team.Assign(p, o.catalog, input.Query, input.Slot)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &AssignSlotOutput{Result: result, Profile: p}, nil
}

func (o *orchestrator) ClearSlot(ctx context.Context, input *ClearSlotInput) (*ClearSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var cleared string
	p, err := o.mutate(ctx, input.UserID, func(p *entities.Profile, _ time.Time) error {
		var err error
		cleared, err = team.Clear(p, input.Slot)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ClearSlotOutput{Cleared: cleared, Profile: p}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *economy.EquipResult
	p, err := o.mutate(ctx, input.UserID, func(p *entities.Profile, _ time.Time) error {
		var err error
		result, err = economy.EquipItem(p, o.catalog, input.Query, input.Slot)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Destroyed != "" {
		slog.InfoContext(ctx, "equipped item replaced",
			"user_id", input.UserID,
			"slot", int(result.Slot),
			"destroyed", result.Destroyed,
		)
	}

	return &EquipItemOutput{Result: result, Profile: p}, nil
}

func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var itemID string
	p, err := o.mutate(ctx, input.UserID, func(p *entities.Profile, _ time.Time) error {
		var err error
		itemID, err = economy.UnequipItem(p, input.Slot)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &UnequipItemOutput{ItemID: itemID, Profile: p}, nil
}
