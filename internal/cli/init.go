package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/taskmeister/internal/config"
	"github.com/example/taskmeister/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the TaskMeister database and configuration",
		Long: `Initialize the TaskMeister database at ~/.taskmeister/taskmeister.db
with the required schema, migrating an existing database in place when
its schema predates this release. Creates a default config.json when
none exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.DefaultDir()
			if err != nil {
				return fmt.Errorf("failed to locate config directory: %w", err)
			}

			cfg, err := config.Load(dir)
			if err != nil {
				cfg = config.Default()
				if err := config.Save(dir, cfg); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Printf("✓ Config file created at %s\n", filepath.Join(dir, "config.json"))
			}

			dbPath := cfg.DBPath
			if dbPath == "" {
				dbPath, err = db.DefaultPath()
				if err != nil {
					return fmt.Errorf("failed to locate database: %w", err)
				}
			}

			fmt.Printf("Initializing TaskMeister database at %s\n", dbPath)

			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close()

			if err := db.Init(database); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  taskmeister worker add \"Ana\" ana@example.com")
			fmt.Println("  taskmeister house add \"Northgate\"")
			fmt.Println("  taskmeister assign --worker 1 --date 2024-05-01 --house 1")

			if !cfg.SMTPConfigured() {
				fmt.Println()
				fmt.Printf("Note: SMTP is not configured, notifications will be logged only.\n")
				fmt.Printf("Edit %s to enable email.\n", filepath.Join(dir, "config.json"))
			}

			return nil
		},
	}
}
