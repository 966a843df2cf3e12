package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campus-ads/db/migrations"
	"campus-ads/internal/config"
	"campus-ads/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  "Moves the PostgreSQL schema to the version this build expects. The bolt driver needs no migrations.",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Storage.Driver != "postgres" {
		fmt.Fprintf(os.Stderr, "storage driver %q has no migrations\n", cfg.Storage.Driver)
		return nil
	}

	from, err := db.Migrate(cfg.Psql.Addr.String())
	if err != nil {
		return err
	}
	fmt.Printf("Migrations completed successfully (version %d -> %d)\n", from, migrations.Version)
	return nil
}
