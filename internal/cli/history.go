package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/taskmeister/internal/ports/primary"
	"github.com/example/taskmeister/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and export the assignment history",
	Long:  "List the append-only assignment audit trail or export it as CSV",
}

var historyListCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List history records, most recent first",
	Long: `List the assignment history, most recent first. The optional filter
is a case-insensitive match on worker name, house name or note.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) > 0 {
			filter = args[0]
		}

		rows, err := wire.HistoryService().List(context.Background(), filter)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No history records found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WORKER\tHOUSE\tQTY\tNOTE\tDATE\tRECORDED\tSTATUS")
		fmt.Fprintln(w, "------\t-----\t---\t----\t----\t--------\t------")
		for _, row := range rows {
			note := row.Note
			if note == "" {
				note = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				row.WorkerName, row.HouseName, row.Quantity, note,
				row.AssignmentDate, row.RecordDate, colorizeStatus(row.Status))
		}
		w.Flush()
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export [filter]",
	Short: "Export history records as CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) > 0 {
			filter = args[0]
		}
		out, _ := cmd.Flags().GetString("out")

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}

		count, err := exportHistory(wire.HistoryService(), f, filter)
		if err != nil {
			return fmt.Errorf("failed to export history: %w", err)
		}

		fmt.Printf("✓ Exported %d records to %s\n", count, out)
		return nil
	},
}

// exportHistory writes the filtered history to w and closes it. A failed
// close is a failed export: the rows may never have reached disk.
func exportHistory(svc primary.HistoryService, w io.WriteCloser, filter string) (int, error) {
	count, err := svc.Export(context.Background(), w, filter)
	if err != nil {
		w.Close()
		return 0, err
	}

	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize export file: %w", err)
	}

	return count, nil
}

func colorizeStatus(status string) string {
	if status == primary.StatusDelivered {
		return color.New(color.FgGreen).Sprint(status)
	}
	return color.New(color.FgYellow).Sprint(status)
}

func init() {
	historyExportCmd.Flags().StringP("out", "o", "history_export.csv", "Output file path")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return historyCmd
}
