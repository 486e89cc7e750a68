package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/taskmeister/internal/cli"
	"github.com/example/taskmeister/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "taskmeister",
		Short:   "TaskMeister - worker and house assignment ledger",
		Version: version.String(),
		Long: `TaskMeister is a CLI tool for assigning houses to workers by date.
It keeps an append-only audit history and notifies workers by email.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.WorkerCmd())
	rootCmd.AddCommand(cli.HouseCmd())
	rootCmd.AddCommand(cli.AvailableCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.ResendCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
