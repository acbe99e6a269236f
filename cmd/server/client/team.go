package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/critter-arena/internal/handlers/arena/v1alpha1"
)

var assignCmd = &cobra.Command{
	Use:   "assign [slot] [creature]",
	Short: "Put a creature on the team",
	Long: `Slots are 1 (tank), 2 (attack) and 3 (support).

  assign 1 turtle
  assign 2 🦊`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := slotRequest(args[0])
		if err != nil {
			return err
		}
		req["query"] = args[1]

		resp, err := call(v1alpha1.MethodAssignSlot, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}

		msg := fmt.Sprintf("Slot %d is now %s", num(resp, "slot"), str(sub(resp, "species"), "id"))
		if replaced := str(resp, "replaced"); replaced != "" {
			msg += fmt.Sprintf(", replacing %s", replaced)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear [slot]",
	Short: "Empty a team slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := slotRequest(args[0])
		if err != nil {
			return err
		}

		resp, err := call(v1alpha1.MethodClearSlot, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}

		if cleared := str(resp, "cleared"); cleared != "" {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from slot %s\n", cleared, args[0])
		} else {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Slot %s was already empty\n", args[0])
		}
		return nil
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip [slot] [item]",
	Short: "Equip an item; the item it replaces is destroyed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := slotRequest(args[0])
		if err != nil {
			return err
		}
		req["query"] = args[1]

		resp, err := call(v1alpha1.MethodEquipItem, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}

		msg := fmt.Sprintf("Slot %d now holds %s", num(resp, "slot"), str(sub(resp, "item"), "id"))
		if destroyed := str(resp, "destroyed"); destroyed != "" {
			msg += fmt.Sprintf(", %s was destroyed", destroyed)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var unequipCmd = &cobra.Command{
	Use:   "unequip [slot]",
	Short: "Return an equipped item to the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := slotRequest(args[0])
		if err != nil {
			return err
		}

		resp, err := call(v1alpha1.MethodUnequipItem, req)
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd.OutOrStdout(), resp); done {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unequipped %s\n", str(resp, "item_id"))
		return nil
	},
}

func slotRequest(raw string) (map[string]interface{}, error) {
	slot, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("slot must be 1, 2 or 3: %w", err)
	}
	req, err := userRequest()
	if err != nil {
		return nil, err
	}
	req["slot"] = slot
	return req, nil
}
