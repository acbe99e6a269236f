package arena

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/game/combat"
	"github.com/KirkDiggler/critter-arena/internal/game/economy"
	"github.com/KirkDiggler/critter-arena/internal/game/matchmaker"
	"github.com/KirkDiggler/critter-arena/internal/game/team"
	battlelog "github.com/KirkDiggler/critter-arena/internal/repositories/battle_log"
)

func (o *orchestrator) Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		outcome *entities.BattleOutcome
		match   *matchmaker.Result
	)
	p, err := o.mutate(ctx, input.UserID, func(p *entities.Profile, now time.Time) error {
		if err := economy.CheckCooldown(economy.ActionBattle, p.Cooldowns.Battle, now); err != nil {
			return err
		}

		player, err := team.Lineup(p, o.catalog)
		if err != nil {
			return err
		}

		match, err = o.matchmaker.Find(o.rolls(), &matchmaker.Input{
			Player:    player,
			LastEnemy: p.LastEnemy,
		})
		if err != nil {
			return errors.Wrap(err, "failed to find an opponent")
		}

		result, err := o.resolve(ctx, player, match.Enemy)
		if err != nil {
			return err
		}

		rewards := economy.ApplyBattleResult(p, result.PlayerWon, match.Multiplier)
		p.LastEnemy = match.Signature
		p.Cooldowns.Battle = now.Add(economy.BattleCooldown)

		outcome = &entities.BattleOutcome{
			ID:              o.idGen.Generate(),
			UserID:          p.UserID,
			Player:          player,
			Enemy:           match.Enemy,
			PlayerHP:        result.PlayerHP,
			EnemyHP:         result.EnemyHP,
			PlayerWon:       result.PlayerWon,
			Rounds:          result.Rounds,
			Strikes:         result.Strikes,
			EnemyMultiplier: match.Multiplier,
			TargetPower:     match.TargetPower,
			EnemyPower:      match.EnemyPower,
			Rewards:         rewards,
			FoughtAt:        now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "battle resolved",
		"user_id", input.UserID,
		"battle_id", outcome.ID,
		"won", outcome.PlayerWon,
		"rounds", outcome.Rounds,
		"multiplier", outcome.EnemyMultiplier,
		"match_accepted", match.Accepted,
	)

	if o.battleLog != nil {
		if _, err := o.battleLog.Append(ctx, battlelog.AppendInput{Outcome: outcome}); err != nil {
			// history is best effort; the profile is already saved
			slog.WarnContext(ctx, "failed to record battle",
				"user_id", input.UserID,
				"battle_id", outcome.ID,
				"error", err,
			)
		}
	}

	return &BattleOutput{
		Outcome:       outcome,
		MatchAccepted: match.Accepted,
		MatchAttempts: match.Attempts,
		Profile:       p,
	}, nil
}

// resolve runs the resolver and turns a panic into a retryable error
func (o *orchestrator) resolve(ctx context.Context, player, enemy entities.Lineup) (result *combat.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "battle simulation panicked",
				"panic", fmt.Sprint(r),
				"player", player.Signature(),
				"enemy", enemy.Signature(),
			)
			result = nil
			err = errors.Unavailable("battle simulation failed, please try again")
		}
	}()

	result = o.resolver(player, enemy)
	if result == nil {
		return nil, errors.Unavailable("battle simulation returned no result")
	}
	return result, nil
}

func (o *orchestrator) ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	if o.battleLog == nil {
		return nil, errors.FailedPrecondition("battle history is not enabled")
	}

	out, err := o.battleLog.List(ctx, battlelog.ListInput{
		UserID: input.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}
	return &ListBattlesOutput{Outcomes: out.Outcomes}, nil
}
