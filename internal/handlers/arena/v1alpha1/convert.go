package v1alpha1

import (
	"math"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/game/economy"
)

// request reads typed fields out of a Struct request
type request struct {
	fields map[string]*structpb.Value
}

func newRequest(req *structpb.Struct) request {
	return request{fields: req.GetFields()}
}

func (r request) str(key string) string {
	return strings.TrimSpace(r.fields[key].GetStringValue())
}

func (r request) requiredStr(key string) (string, error) {
	v := r.str(key)
	if v == "" {
		return "", errors.InvalidArgumentf("%s is required", key)
	}
	return v, nil
}

// int reads a whole number; missing fields return def
func (r request) int(key string, def int64) (int64, error) {
	v, ok := r.fields[key]
	if !ok {
		return def, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a number", key)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > 1<<53 {
		return 0, errors.InvalidArgumentf("%s must be a whole number", key)
	}
	return int64(n.NumberValue), nil
}

// quantity accepts a positive number or the string "all"
func (r request) quantity(key string) (economy.Quantity, error) {
	v, ok := r.fields[key]
	if !ok {
		return economy.Quantity{}, errors.InvalidAmountf("%s is required", key)
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return economy.ParseQuantity(kind.StringValue)
	case *structpb.Value_NumberValue:
		n, err := r.int(key, 0)
		if err != nil {
			return economy.Quantity{}, err
		}
		if n <= 0 {
			return economy.Quantity{}, errors.InvalidAmountf("%s must be positive, got %d", key, n)
		}
		return economy.Exactly(int(n)), nil
	default:
		return economy.Quantity{}, errors.InvalidAmountf("%s must be a number or \"all\"", key)
	}
}

func timestamp(t time.Time) interface{} {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func counts(m map[string]int) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func triple(v [entities.SlotCount]string) []interface{} {
	out := make([]interface{}, len(v))
	for i, s := range v {
		out[i] = s
	}
	return out
}

func profileValue(p *entities.Profile) map[string]interface{} {
	equipped := make([]interface{}, len(p.Equipped))
	for i, e := range p.Equipped {
		equipped[i] = map[string]interface{}{
			"item_id": e.ItemID,
			"wins":    e.Wins,
		}
	}

	return map[string]interface{}{
		"user_id":   p.UserID,
		"coins":     p.Coins,
		"energy":    p.Energy,
		"creatures": counts(p.Creatures),
		"team":      triple(p.Team),
		"items":     counts(p.Items),
		"equipped":  equipped,
		"cooldowns": map[string]interface{}{
			"hunt":   timestamp(p.Cooldowns.Hunt),
			"battle": timestamp(p.Cooldowns.Battle),
			"daily":  timestamp(p.Cooldowns.Daily),
		},
		"last_enemy": triple(p.LastEnemy),
		"version":    p.Version,
	}
}

func statsValue(s entities.Stats) map[string]interface{} {
	return map[string]interface{}{
		"hp":  s.HP,
		"atk": s.ATK,
		"def": s.DEF,
	}
}

func speciesValue(s *entities.Species) map[string]interface{} {
	return map[string]interface{}{
		"id":     s.ID,
		"emoji":  s.Emoji,
		"rarity": s.Rarity.String(),
		"role":   string(s.Role),
		"stats":  statsValue(s.Base),
	}
}

func itemValue(i *entities.Item) map[string]interface{} {
	return map[string]interface{}{
		"id":          i.ID,
		"emoji":       i.Emoji,
		"rarity":      i.Rarity.String(),
		"cost":        i.Cost,
		"sale_value":  i.SaleValue(),
		"bonus":       statsValue(i.Bonus),
		"description": i.Description,
	}
}

func saleValue(sale *economy.SaleResult) map[string]interface{} {
	lines := make([]interface{}, len(sale.Lines))
	for i, l := range sale.Lines {
		lines[i] = map[string]interface{}{
			"id":         l.ID,
			"quantity":   l.Quantity,
			"unit_value": l.UnitValue,
			"total":      l.Total(),
		}
	}
	return map[string]interface{}{
		"lines": lines,
		"coins": sale.Coins,
	}
}

func lineupValue(l entities.Lineup, hp [entities.SlotCount]int) []interface{} {
	out := make([]interface{}, len(l))
	for i, f := range l {
		out[i] = map[string]interface{}{
			"species_id": f.SpeciesID,
			"item_id":    f.ItemID,
			"stats":      statsValue(f.Stats),
			"final_hp":   hp[i],
		}
	}
	return out
}

func outcomeValue(o *entities.BattleOutcome) map[string]interface{} {
	strikes := make([]interface{}, len(o.Strikes))
	for i, s := range o.Strikes {
		strikes[i] = map[string]interface{}{
			"round":       s.Round,
			"attacker":    string(s.Attacker),
			"from_slot":   int(s.FromSlot),
			"target_slot": int(s.TargetSlot),
			"aura_def":    s.AuraDEF,
			"damage":      s.Damage,
			"target_hp":   s.TargetHP,
		}
	}

	return map[string]interface{}{
		"id":               o.ID,
		"player":           lineupValue(o.Player, o.PlayerHP),
		"enemy":            lineupValue(o.Enemy, o.EnemyHP),
		"player_won":       o.PlayerWon,
		"rounds":           o.Rounds,
		"strikes":          strikes,
		"enemy_multiplier": o.EnemyMultiplier,
		"target_power":     o.TargetPower,
		"enemy_power":      o.EnemyPower,
		"rewards": map[string]interface{}{
			"coins":  o.Rewards.Coins,
			"energy": o.Rewards.Energy,
		},
		"fought_at": timestamp(o.FoughtAt),
	}
}

// respond builds the Struct response. Conversion failures are programming
// errors in the value builders above.
func respond(fields map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}
