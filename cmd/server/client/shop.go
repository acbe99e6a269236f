package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/critter-arena/internal/handlers/arena/v1alpha1"
)

var sellCmd = &cobra.Command{
	Use:   "sell [creature] [quantity|all]",
	Short: "Sell creatures not on the team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sell(cmd, v1alpha1.MethodSellCreature, "query", args)
	},
}

var sellRarityCmd = &cobra.Command{
	Use:   "sell-rarity [rarity] [quantity|all]",
	Short: "Sell creatures of one rarity, cheapest ids first",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sell(cmd, v1alpha1.MethodSellRarity, "rarity", args)
	},
}

var sellItemCmd = &cobra.Command{
	Use:   "sell-item [item] [quantity|all]",
	Short: "Sell unequipped items for half their cost",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sell(cmd, v1alpha1.MethodSellItem, "query", args)
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy [item] [quantity]",
	Short: "Buy items with coins",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := userRequest()
		if err != nil {
			return err
		}
		req["query"] = args[0]
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a number: %w", err)
			}
			req["quantity"] = n
		}

		resp, err := call(v1alpha1.MethodBuyItem, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bought %d %s for %d coins, %d left\n",
			num(resp, "quantity"), str(sub(resp, "item"), "id"), num(resp, "cost"),
			num(sub(resp, "profile"), "coins"))
		return nil
	},
}

// sell sends the quantity as a string so "all" and numbers share one path
func sell(cmd *cobra.Command, method, key string, args []string) error {
	req, err := userRequest()
	if err != nil {
		return err
	}
	req[key] = args[0]
	req["quantity"] = args[1]

	resp, err := call(method, req)
	if err != nil {
		return err
	}
	if done, err := printJSON(cmd.OutOrStdout(), resp); done {
		return err
	}
	printSale(cmd, sub(resp, "sale"))
	return nil
}

func printSale(cmd *cobra.Command, sale *structpb.Struct) {
	w := cmd.OutOrStdout()
	for _, l := range list(sale, "lines") {
		line := l.GetStructValue()
		_, _ = fmt.Fprintf(w, "  %s x%d at %d = %d\n",
			str(line, "id"), num(line, "quantity"), num(line, "unit_value"), num(line, "total"))
	}
	_, _ = fmt.Fprintf(w, "Sold for %d coins\n", num(sale, "coins"))
}
