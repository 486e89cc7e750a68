package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/taskmeister/internal/config"
	"github.com/example/taskmeister/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the TaskMeister environment",
		Long: `Environment health check for TaskMeister.

Validates:
- Config directory and config.json
- Database file and schema version
- SMTP configuration

Examples:
  taskmeister doctor          # Run full health check
  taskmeister doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkConfig(),
				checkDatabase(),
				checkSMTP(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check         Status")
				fmt.Println("────────────────────")
				for _, r := range results {
					fmt.Printf("%-13s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'taskmeister init' to repair the environment.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkConfig validates the config directory and file
func checkConfig() CheckResult {
	dir, err := config.DefaultDir()
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  Cannot get home directory"}
	}

	path := filepath.Join(dir, "config.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "Config", Status: "⚠", Details: fmt.Sprintf("  %s missing, defaults in effect", path)}
	}

	if _, err := config.Load(dir); err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	return CheckResult{Name: "Config", Status: "✓"}
}

// checkDatabase validates that the database exists and carries the
// expected tables and schema version
func checkDatabase() CheckResult {
	path, err := dbPathFromConfig()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "Database", Status: "⚠", Details: fmt.Sprintf("  %s missing, run 'taskmeister init'", path)}
	}

	database, err := db.Open(path)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}
	defer database.Close()

	for _, table := range []string{"workers", "houses", "assignment_history"} {
		var name string
		err := database.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  table %s missing, run 'taskmeister init'", table)}
		}
	}

	return CheckResult{Name: "Database", Status: "✓"}
}

// checkSMTP reports whether notifications will actually be sent
func checkSMTP() CheckResult {
	dir, err := config.DefaultDir()
	if err != nil {
		return CheckResult{Name: "SMTP", Status: "✗", Details: "  Cannot get home directory"}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		cfg = config.Default()
	}

	if !cfg.SMTPConfigured() {
		return CheckResult{Name: "SMTP", Status: "⚠", Details: "  Not configured, notifications will be logged only"}
	}

	return CheckResult{Name: "SMTP", Status: "✓"}
}

func dbPathFromConfig() (string, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return "", err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		cfg = config.Default()
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}

	return db.DefaultPath()
}
