package client

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/critter-arena/internal/handlers/arena/v1alpha1"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show coins, energy, creatures, team and items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := userRequest()
		if err != nil {
			return err
		}
		resp, err := call(v1alpha1.MethodGetProfile, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}
		printProfile(cmd.OutOrStdout(), sub(resp, "profile"))
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [name-or-emoji]",
	Short: "Look up a creature or item by name, alias or emoji",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodResolveEntity, map[string]interface{}{"query": args[0]})
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}

		w := cmd.OutOrStdout()
		switch str(resp, "kind") {
		case "species":
			s := sub(resp, "species")
			stats := sub(s, "stats")
			_, _ = fmt.Fprintf(w, "%s %s: %s %s, HP %d ATK %d DEF %d\n",
				str(s, "emoji"), str(s, "id"), str(s, "rarity"), str(s, "role"),
				num(stats, "hp"), num(stats, "atk"), num(stats, "def"))
		case "item":
			i := sub(resp, "item")
			bonus := sub(i, "bonus")
			_, _ = fmt.Fprintf(w, "%s %s: %s, costs %d, +%d HP +%d ATK +%d DEF\n",
				str(i, "emoji"), str(i, "id"), str(i, "rarity"), num(i, "cost"),
				num(bonus, "hp"), num(bonus, "atk"), num(bonus, "def"))
		}
		return nil
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Claim the daily coins and energy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := userRequest()
		if err != nil {
			return err
		}
		resp, err := call(v1alpha1.MethodClaimDaily, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Claimed %d coins and %d energy, next claim at %s\n",
			num(resp, "coins"), num(resp, "energy"), str(resp, "ready_at"))
		return nil
	},
}

func printProfile(w io.Writer, p *structpb.Struct) {
	_, _ = fmt.Fprintf(w, "Player %s\n", str(p, "user_id"))
	_, _ = fmt.Fprintf(w, "  Coins: %d  Energy: %d\n", num(p, "coins"), num(p, "energy"))

	team := list(p, "team")
	equipped := list(p, "equipped")
	for i, slot := range team {
		name := slot.GetStringValue()
		if name == "" {
			name = "(empty)"
		}
		item := ""
		if i < len(equipped) {
			if id := str(equipped[i].GetStructValue(), "item_id"); id != "" {
				item = fmt.Sprintf(" holding %s", id)
			}
		}
		_, _ = fmt.Fprintf(w, "  Slot %d: %s%s\n", i+1, name, item)
	}

	_, _ = fmt.Fprintf(w, "  Creatures: %s\n", countsLine(sub(p, "creatures")))
	_, _ = fmt.Fprintf(w, "  Items: %s\n", countsLine(sub(p, "items")))
}

func countsLine(counts *structpb.Struct) string {
	keys := make([]string, 0, len(counts.GetFields()))
	for k := range counts.GetFields() {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "none"
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s x%d", k, num(counts, k))
	}
	return strings.Join(parts, ", ")
}
