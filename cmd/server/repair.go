package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/config"
	"github.com/KirkDiggler/critter-arena/internal/game/audit"
	redisclient "github.com/KirkDiggler/critter-arena/internal/redis"
	"github.com/KirkDiggler/critter-arena/internal/repositories/profile"
)

var (
	repairFix           bool
	repairDeleteCorrupt bool
)

var repairCmd = &cobra.Command{
	Use:   "repair-profiles",
	Short: "Scan stored profiles for broken invariants",
	Long: `Scan every profile in Redis and report unknown creatures or items, slots
that do not match their role, and team or equipment entries the inventory
cannot back. Nothing is written unless --fix is given.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairFix, "fix", false, "save repaired profiles")
	repairCmd.Flags().BoolVar(&repairDeleteCorrupt, "delete-corrupt", false, "delete profiles that cannot be decoded")
	rootCmd.AddCommand(repairCmd)
}

type repairOptions struct {
	Fix           bool
	DeleteCorrupt bool
}

type repairedProfile struct {
	UserID string
	Issues []audit.Issue
}

type repairReport struct {
	Checked  int
	Corrupt  []string
	Repaired []repairedProfile
}

func runRepair(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Store != config.StoreRedis {
		return fmt.Errorf("repair-profiles needs the redis store, configured store is %q", cfg.Store)
	}
	if cfg.RedisMode == config.RedisModeCluster {
		return fmt.Errorf("repair-profiles does not support cluster mode")
	}

	client, err := newRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	ctx := cmd.Context()
	if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	repo, err := profile.NewRedis(&profile.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	report, err := repairProfiles(ctx, client, repo, catalog.Default(), repairOptions{
		Fix:           repairFix,
		DeleteCorrupt: repairDeleteCorrupt,
	})
	if err != nil {
		return err
	}
	printRepairReport(cmd.OutOrStdout(), report, repairFix)
	return nil
}

func repairProfiles(
	ctx context.Context,
	client redisclient.Client,
	repo profile.Repository,
	cat *catalog.Catalog,
	opts repairOptions,
) (*repairReport, error) {
	report := &repairReport{}

	iter := client.Scan(ctx, 0, profile.RedisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		userID := strings.TrimPrefix(key, profile.RedisKeyPrefix)
		report.Checked++

		out, err := repo.Get(ctx, profile.GetInput{UserID: userID})
		if err != nil {
			report.Corrupt = append(report.Corrupt, key)
			if opts.DeleteCorrupt {
				if err := client.Del(ctx, key).Err(); err != nil {
					return nil, fmt.Errorf("failed to delete %s: %w", key, err)
				}
			}
			continue
		}

		if !opts.Fix {
			if issues := audit.Check(out.Profile, cat); len(issues) > 0 {
				report.Repaired = append(report.Repaired, repairedProfile{UserID: userID, Issues: issues})
			}
			continue
		}

		issues := audit.Repair(out.Profile, cat)
		if len(issues) == 0 {
			continue
		}
		if _, err := repo.Save(ctx, profile.SaveInput{Profile: out.Profile}); err != nil {
			return nil, fmt.Errorf("failed to save repaired profile %s: %w", userID, err)
		}
		report.Repaired = append(report.Repaired, repairedProfile{UserID: userID, Issues: issues})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}

	return report, nil
}

func printRepairReport(w io.Writer, report *repairReport, fixed bool) {
	verb := "need repair"
	if fixed {
		verb = "repaired"
	}
	_, _ = fmt.Fprintf(w, "Checked %d profiles: %d corrupt, %d %s\n",
		report.Checked, len(report.Corrupt), len(report.Repaired), verb)

	for _, key := range report.Corrupt {
		_, _ = fmt.Fprintf(w, "  ✗ %s cannot be decoded\n", key)
	}
	for _, r := range report.Repaired {
		_, _ = fmt.Fprintf(w, "  %s\n", r.UserID)
		for _, issue := range r.Issues {
			_, _ = fmt.Fprintf(w, "    - %s\n", issue)
		}
	}
}
