// Package v1alpha1 handles the arena grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/orchestrators/arena"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ArenaService arena.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.ArenaService == nil {
		return errors.InvalidArgument("arena service is required")
	}
	return nil
}

// Handler implements the arena gRPC service
type Handler struct {
	arenaService arena.Service
}

var _ ArenaServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		arenaService: cfg.ArenaService,
	}, nil
}

// GetProfile returns the caller's profile, creating it on first use
func (h *Handler) GetProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := newRequest(req).requiredStr("user_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.GetProfile(ctx, &arena.GetProfileInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"profile": profileValue(out.Profile),
	})
}

// ResolveEntity maps a name, alias or emoji to a species or item
func (h *Handler) ResolveEntity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	query, err := newRequest(req).requiredStr("query")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.ResolveEntity(ctx, &arena.ResolveEntityInput{Query: query})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := map[string]interface{}{"kind": out.Entity.GetType()}
	switch out.Entity.GetType() {
	case entities.EntityTypeSpecies:
		s, ok := out.Entity.(*entities.Species)
		if !ok {
			return nil, errors.ToGRPCError(errors.Internalf("species %s has unexpected type %T", out.Entity.GetID(), out.Entity))
		}
		resp["species"] = speciesValue(s)
	case entities.EntityTypeItem:
		it, ok := out.Entity.(*entities.Item)
		if !ok {
			return nil, errors.ToGRPCError(errors.Internalf("item %s has unexpected type %T", out.Entity.GetID(), out.Entity))
		}
		resp["item"] = itemValue(it)
	default:
		return nil, errors.ToGRPCError(errors.Internalf("unsupported entity type %q", out.Entity.GetType()))
	}
	return respond(resp)
}

// ClaimDaily grants the daily coins and energy
func (h *Handler) ClaimDaily(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := newRequest(req).requiredStr("user_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.ClaimDaily(ctx, &arena.ClaimDailyInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"coins":    out.Coins,
		"energy":   out.Energy,
		"ready_at": timestamp(out.ReadyAt),
		"profile":  profileValue(out.Profile),
	})
}

// Hunt spends coins for creature drops
func (h *Handler) Hunt(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, err := r.requiredStr("user_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	amount, err := r.int("amount", 0)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.Hunt(ctx, &arena.HuntInput{UserID: userID, Amount: amount})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	drops := make([]interface{}, len(out.Result.Drops))
	for i, s := range out.Result.Drops {
		drops[i] = speciesValue(s)
	}
	return respond(map[string]interface{}{
		"rolls":        out.Result.Rolls,
		"coins_spent":  out.Result.CoinsSpent,
		"energy_spent": out.Result.EnergySpent,
		"drops":        drops,
		"ready_at":     timestamp(out.Result.ReadyAt),
		"profile":      profileValue(out.Profile),
	})
}

// SellCreature sells copies of one species
func (h *Handler) SellCreature(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, query, err := userAndQuery(r)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	quantity, err := r.quantity("quantity")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.SellCreature(ctx, &arena.SellCreatureInput{
		UserID:   userID,
		Query:    query,
		Quantity: quantity,
	})
	return sellResponse(out, err)
}

// SellRarity sells the unreserved creatures of a whole tier
func (h *Handler) SellRarity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, err := r.requiredStr("user_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	name, err := r.requiredStr("rarity")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	rarity, ok := entities.ParseRarity(name)
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown rarity %q", name))
	}
	quantity, err := r.quantity("quantity")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.SellRarity(ctx, &arena.SellRarityInput{
		UserID:   userID,
		Rarity:   rarity,
		Quantity: quantity,
	})
	return sellResponse(out, err)
}

// SellItem sells unequipped copies of an item
func (h *Handler) SellItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, query, err := userAndQuery(r)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	quantity, err := r.quantity("quantity")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.SellItem(ctx, &arena.SellItemInput{
		UserID:   userID,
		Query:    query,
		Quantity: quantity,
	})
	return sellResponse(out, err)
}

func sellResponse(out *arena.SellOutput, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"sale":    saleValue(out.Sale),
		"profile": profileValue(out.Profile),
	})
}

// BuyItem buys items with coins
func (h *Handler) BuyItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, query, err := userAndQuery(r)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	quantity, err := r.int("quantity", 1)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.BuyItem(ctx, &arena.BuyItemInput{
		UserID:   userID,
		Query:    query,
		Quantity: int(quantity),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"item":     itemValue(out.Purchase.Item),
		"quantity": out.Purchase.Quantity,
		"cost":     out.Purchase.Cost,
		"profile":  profileValue(out.Profile),
	})
}

// AssignSlot puts an owned creature on the team
func (h *Handler) AssignSlot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, query, err := userAndQuery(r)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	slot, err := r.int("slot", 0)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.AssignSlot(ctx, &arena.AssignSlotInput{
		UserID: userID,
		Query:  query,
		Slot:   int(slot),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"slot":     int(out.Result.Slot),
		"species":  speciesValue(out.Result.Species),
		"replaced": out.Result.Replaced,
		"profile":  profileValue(out.Profile),
	})
}

// ClearSlot empties a team slot
func (h *Handler) ClearSlot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, err := r.requiredStr("user_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	slot, err := r.int("slot", 0)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.ClearSlot(ctx, &arena.ClearSlotInput{UserID: userID, Slot: int(slot)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"cleared": out.Cleared,
		"profile": profileValue(out.Profile),
	})
}

// EquipItem equips an owned item on a slot
func (h *Handler) EquipItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, query, err := userAndQuery(r)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	slot, err := r.int("slot", 0)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.EquipItem(ctx, &arena.EquipItemInput{
		UserID: userID,
		Query:  query,
		Slot:   int(slot),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"slot":      int(out.Result.Slot),
		"item":      itemValue(out.Result.Item),
		"destroyed": out.Result.Destroyed,
		"profile":   profileValue(out.Profile),
	})
}

// UnequipItem returns an equipped item to the inventory
func (h *Handler) UnequipItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, err := r.requiredStr("user_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	slot, err := r.int("slot", 0)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.UnequipItem(ctx, &arena.UnequipItemInput{UserID: userID, Slot: int(slot)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"item_id": out.ItemID,
		"profile": profileValue(out.Profile),
	})
}

// Battle fights a matchmade opponent
func (h *Handler) Battle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := newRequest(req).requiredStr("user_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.Battle(ctx, &arena.BattleInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]interface{}{
		"outcome":        outcomeValue(out.Outcome),
		"match_accepted": out.MatchAccepted,
		"match_attempts": out.MatchAttempts,
		"profile":        profileValue(out.Profile),
	})
}

// ListBattles returns recent battles, newest first
func (h *Handler) ListBattles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	userID, err := r.requiredStr("user_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	limit, err := r.int("limit", 0)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.ListBattles(ctx, &arena.ListBattlesInput{UserID: userID, Limit: int(limit)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	battles := make([]interface{}, len(out.Outcomes))
	for i, o := range out.Outcomes {
		battles[i] = outcomeValue(o)
	}
	return respond(map[string]interface{}{
		"battles": battles,
	})
}

func userAndQuery(r request) (string, string, error) {
	userID, err := r.requiredStr("user_id")
	if err != nil {
		return "", "", err
	}
	query, err := r.requiredStr("query")
	if err != nil {
		return "", "", err
	}
	return userID, query, nil
}
