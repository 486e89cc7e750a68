package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/taskmeister/internal/wire"
)

var houseCmd = &cobra.Command{
	Use:   "house",
	Short: "Manage houses",
	Long:  "Add, list, rename, and remove houses from the TaskMeister registry",
}

var houseAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new house",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		house, err := wire.HouseService().CreateHouse(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to add house: %w", err)
		}

		fmt.Printf("✓ Added house %d: %s\n", house.ID, house.Name)
		return nil
	},
}

var houseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List houses",
	RunE: func(cmd *cobra.Command, args []string) error {
		houses, err := wire.HouseService().ListHouses(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list houses: %w", err)
		}

		if len(houses) == 0 {
			fmt.Println("No houses found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		fmt.Fprintln(w, "--\t----")
		for _, house := range houses {
			fmt.Fprintf(w, "%d\t%s\n", house.ID, house.Name)
		}
		w.Flush()
		return nil
	},
}

var houseRenameCmd = &cobra.Command{
	Use:   "rename [house-id] [name]",
	Short: "Rename a house",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("house", args[0])
		if err != nil {
			return err
		}

		if err := wire.HouseService().UpdateHouse(context.Background(), id, args[1]); err != nil {
			return fmt.Errorf("failed to rename house: %w", err)
		}

		fmt.Printf("✓ House %d renamed to %s\n", id, args[1])
		return nil
	},
}

var houseRemoveCmd = &cobra.Command{
	Use:   "remove [house-id]",
	Short: "Remove a house (history keeps the name)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("house", args[0])
		if err != nil {
			return err
		}

		if err := wire.HouseService().DeleteHouse(context.Background(), id); err != nil {
			return fmt.Errorf("failed to remove house: %w", err)
		}

		fmt.Printf("✓ House %d removed\n", id)
		return nil
	},
}

func init() {
	houseCmd.AddCommand(houseAddCmd)
	houseCmd.AddCommand(houseListCmd)
	houseCmd.AddCommand(houseRenameCmd)
	houseCmd.AddCommand(houseRemoveCmd)
}

// HouseCmd returns the house command
func HouseCmd() *cobra.Command {
	return houseCmd
}
