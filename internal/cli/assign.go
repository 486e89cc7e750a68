package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/taskmeister/internal/ports/primary"
	"github.com/example/taskmeister/internal/wire"
)

// AssignCmd returns the assign command. One invocation commits one batch:
// one worker, one date, one or more houses.
func AssignCmd() *cobra.Command {
	var (
		workerID int64
		date     string
		houses   []string
		noEmail  bool
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign houses to a worker for a date",
		Long: `Assign one or more houses to a worker for a date and notify the
worker by email. Each --house takes house-id[:quantity[:note]].

Examples:
  taskmeister assign --worker 1 --date 2024-05-01 --house 3
  taskmeister assign --worker 1 --date 2024-05-01 --house 3:2 --house 5:1:"spare keys"
  taskmeister assign --worker 1 --date 2024-05-01 --house 3 --no-email`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selections := make([]primary.Selection, 0, len(houses))
			for _, raw := range houses {
				sel, err := parseSelection(raw)
				if err != nil {
					return err
				}
				selections = append(selections, sel)
			}

			service := wire.AssignmentService()
			if noEmail {
				service = wire.AssignmentServiceDryRun()
			}

			receipt, err := service.Commit(context.Background(), primary.CommitRequest{
				WorkerID:   workerID,
				Date:       date,
				Selections: selections,
			})

			var notifErr *primary.NotificationError
			if errors.As(err, &notifErr) && receipt != nil {
				printReceipt(receipt)
				fmt.Printf("%s Email delivery failed, batch saved as pending.\n", color.New(color.FgYellow).Sprint("⚠"))
				fmt.Printf("  Retry with: taskmeister resend %s\n", receipt.BatchID)
				return err
			}
			if err != nil {
				return fmt.Errorf("failed to assign: %w", err)
			}

			printReceipt(receipt)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&workerID, "worker", "w", 0, "Worker ID (required)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Assignment date, YYYY-MM-DD (required)")
	cmd.Flags().StringArrayVar(&houses, "house", nil, "House selection as house-id[:quantity[:note]] (repeatable)")
	cmd.Flags().BoolVar(&noEmail, "no-email", false, "Skip the email notification")

	return cmd
}

// AvailableCmd returns the available command.
func AvailableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "available [date]",
		Short: "List houses still available for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			houses, err := wire.AssignmentService().AvailableHouses(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list available houses: %w", err)
			}

			if len(houses) == 0 {
				fmt.Printf("No houses available for %s\n", args[0])
				return nil
			}

			fmt.Printf("Available houses for %s:\n", args[0])
			for _, h := range houses {
				fmt.Printf("  %d  %s\n", h.ID, h.Name)
			}
			return nil
		},
	}
}

// ResendCmd returns the resend command for pending batches.
func ResendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resend [batch-id]",
		Short: "Re-send the notification for a pending batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := wire.AssignmentService().Resend(context.Background(), args[0])

			var notifErr *primary.NotificationError
			if errors.As(err, &notifErr) && receipt != nil {
				fmt.Printf("%s Email delivery failed again, batch stays pending.\n", color.New(color.FgYellow).Sprint("⚠"))
				return err
			}
			if err != nil {
				return fmt.Errorf("failed to resend: %w", err)
			}

			printReceipt(receipt)
			return nil
		},
	}
}

// parseSelection parses a --house value of the form id[:quantity[:note]].
func parseSelection(raw string) (primary.Selection, error) {
	parts := strings.SplitN(raw, ":", 3)

	houseID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || houseID <= 0 {
		return primary.Selection{}, fmt.Errorf("invalid house selection %q: bad house id", raw)
	}

	sel := primary.Selection{HouseID: houseID, Quantity: 1}

	if len(parts) > 1 && parts[1] != "" {
		qty, err := strconv.Atoi(parts[1])
		if err != nil {
			return primary.Selection{}, fmt.Errorf("invalid house selection %q: bad quantity", raw)
		}
		sel.Quantity = qty
	}
	if len(parts) > 2 {
		sel.Note = strings.Trim(parts[2], `"`)
	}

	return sel, nil
}

// printReceipt renders a commit or resend outcome.
func printReceipt(r *primary.Receipt) {
	status := color.New(color.FgYellow).Sprint("Pending")
	if r.Delivered {
		status = color.New(color.FgGreen).Sprint("Delivered")
	}

	fmt.Printf("✓ Assigned %d house(s) to %s for %s [%s]\n", len(r.Lines), r.WorkerName, r.DateFormatted, status)
	for _, line := range r.Lines {
		note := ""
		if line.Note != "" {
			note = fmt.Sprintf(" | Note: %s", line.Note)
		}
		fmt.Printf("  - %s → %d bedding sets%s\n", line.HouseName, line.Quantity, note)
	}
	fmt.Printf("  Batch: %s\n", r.BatchID)
}
