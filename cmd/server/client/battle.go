package client

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/critter-arena/internal/handlers/arena/v1alpha1"
)

var showStrikes bool

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Fight a matchmade opponent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := userRequest()
		if err != nil {
			return err
		}
		resp, err := call(v1alpha1.MethodBattle, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}

		w := cmd.OutOrStdout()
		printOutcome(w, sub(resp, "outcome"))
		if !field(resp, "match_accepted").GetBoolValue() {
			_, _ = fmt.Fprintf(w, "  (closest opponent after %d draws)\n", num(resp, "match_attempts"))
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [limit]",
	Short: "List recent battles, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := userRequest()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			limit, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("limit must be a number: %w", err)
			}
			req["limit"] = limit
		}

		resp, err := call(v1alpha1.MethodListBattles, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}

		battles := list(resp, "battles")
		if len(battles) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No battles yet")
			return nil
		}
		for _, b := range battles {
			printOutcome(cmd.OutOrStdout(), b.GetStructValue())
		}
		return nil
	},
}

func init() {
	battleCmd.Flags().BoolVar(&showStrikes, "strikes", false, "print every strike")
}

func printOutcome(w io.Writer, o *structpb.Struct) {
	result := "Defeat"
	if field(o, "player_won").GetBoolValue() {
		result = "Victory"
	}
	_, _ = fmt.Fprintf(w, "%s in %d rounds at %s (enemy x%.2f)\n",
		result, num(o, "rounds"), str(o, "fought_at"), field(o, "enemy_multiplier").GetNumberValue())
	_, _ = fmt.Fprintf(w, "  You:   %s\n", lineupLine(list(o, "player")))
	_, _ = fmt.Fprintf(w, "  Enemy: %s\n", lineupLine(list(o, "enemy")))

	rewards := sub(o, "rewards")
	if coins := num(rewards, "coins"); coins > 0 {
		_, _ = fmt.Fprintf(w, "  Earned %d coins and %d energy\n", coins, num(rewards, "energy"))
	}

	if !showStrikes {
		return
	}
	for _, v := range list(o, "strikes") {
		s := v.GetStructValue()
		_, _ = fmt.Fprintf(w, "    r%d %s slot %d hits slot %d for %d (aura %d), %d HP left\n",
			num(s, "round"), str(s, "attacker"), num(s, "from_slot"), num(s, "target_slot"),
			num(s, "damage"), num(s, "aura_def"), num(s, "target_hp"))
	}
}

func lineupLine(fighters []*structpb.Value) string {
	line := ""
	for i, v := range fighters {
		f := v.GetStructValue()
		if i > 0 {
			line += ", "
		}
		line += fmt.Sprintf("%s %d HP", str(f, "species_id"), num(f, "final_hp"))
	}
	return line
}
