package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/taskmeister/internal/ports/primary"
	"github.com/example/taskmeister/internal/wire"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Manage workers",
	Long:  "Add, list, update, and remove workers from the TaskMeister registry",
}

var workerAddCmd = &cobra.Command{
	Use:   "add [name] [email]",
	Short: "Add a new worker",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		worker, err := wire.WorkerService().CreateWorker(context.Background(), primary.CreateWorkerRequest{
			Name:  args[0],
			Email: args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to add worker: %w", err)
		}

		fmt.Printf("✓ Added worker %d: %s <%s>\n", worker.ID, worker.Name, worker.Email)
		return nil
	},
}

var workerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		workers, err := wire.WorkerService().ListWorkers(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list workers: %w", err)
		}

		if len(workers) == 0 {
			fmt.Println("No workers found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL")
		fmt.Fprintln(w, "--\t----\t-----")
		for _, worker := range workers {
			fmt.Fprintf(w, "%d\t%s\t%s\n", worker.ID, worker.Name, worker.Email)
		}
		w.Flush()
		return nil
	},
}

var workerUpdateCmd = &cobra.Command{
	Use:   "update [worker-id]",
	Short: "Update a worker's name and/or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("worker", args[0])
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")

		if name == "" && email == "" {
			return fmt.Errorf("must specify --name and/or --email")
		}

		// Unchanged fields keep their current value.
		current, err := wire.WorkerService().GetWorker(context.Background(), id)
		if err != nil {
			return fmt.Errorf("worker not found: %w", err)
		}
		if name == "" {
			name = current.Name
		}
		if email == "" {
			email = current.Email
		}

		err = wire.WorkerService().UpdateWorker(context.Background(), primary.UpdateWorkerRequest{
			WorkerID: id,
			Name:     name,
			Email:    email,
		})
		if err != nil {
			return fmt.Errorf("failed to update worker: %w", err)
		}

		fmt.Printf("✓ Worker %d updated\n", id)
		return nil
	},
}

var workerRemoveCmd = &cobra.Command{
	Use:   "remove [worker-id]",
	Short: "Remove a worker (history keeps the name)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("worker", args[0])
		if err != nil {
			return err
		}

		if err := wire.WorkerService().DeleteWorker(context.Background(), id); err != nil {
			return fmt.Errorf("failed to remove worker: %w", err)
		}

		fmt.Printf("✓ Worker %d removed\n", id)
		return nil
	},
}

// parseID parses a numeric command-line id.
func parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	return id, nil
}

func init() {
	workerUpdateCmd.Flags().String("name", "", "New name")
	workerUpdateCmd.Flags().String("email", "", "New email address")

	workerCmd.AddCommand(workerAddCmd)
	workerCmd.AddCommand(workerListCmd)
	workerCmd.AddCommand(workerUpdateCmd)
	workerCmd.AddCommand(workerRemoveCmd)
}

// WorkerCmd returns the worker command
func WorkerCmd() *cobra.Command {
	return workerCmd
}
