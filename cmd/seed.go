package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"campus-ads/internal/config"
	"campus-ads/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo catalog",
	Long:  "Writes demo advertisers, campaigns and creatives with fixed ids. Running it again resets their balances and settings.",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stderr, cfg.Env)

	repo, closeRepo, err := openRepository(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	if err := db.Seed(cmd.Context(), repo, time.Now().UTC()); err != nil {
		return err
	}
	fmt.Println("Demo catalog loaded")
	return nil
}
