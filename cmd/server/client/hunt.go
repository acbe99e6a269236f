package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/critter-arena/internal/handlers/arena/v1alpha1"
)

var huntCmd = &cobra.Command{
	Use:   "hunt [coins]",
	Short: "Spend coins on creature drops",
	Long: `Spend coins in multiples of 5. Each 5 coins is one roll and costs one energy.

  hunt 5
  hunt 25`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}
		req, err := userRequest()
		if err != nil {
			return err
		}
		req["amount"] = amount

		resp, err := call(v1alpha1.MethodHunt, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}

		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(w, "Hunted %d times for %d coins and %d energy:\n",
			num(resp, "rolls"), num(resp, "coins_spent"), num(resp, "energy_spent"))
		for _, d := range list(resp, "drops") {
			s := d.GetStructValue()
			_, _ = fmt.Fprintf(w, "  %s %s (%s)\n", str(s, "emoji"), str(s, "id"), str(s, "rarity"))
		}
		return nil
	},
}
