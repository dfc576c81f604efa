package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/healarr/internal/plex"
	"github.com/vmunix/healarr/internal/runner"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the identifier cache",
}

var cacheRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the title -> TMDB id cache from Plex metadata",
	Long: `Enumerate every configured library (and the primary library's
collections) and rewrite the persisted identifier cache. Items whose Plex
metadata carries no TMDB linkage are skipped.`,
	RunE: runCacheRebuild,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheRebuildCmd)
}

func runCacheRebuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	plexClient := plex.NewClient(cfg.Plex.URL, cfg.Plex.Token, logger)
	if _, err := plexClient.GetIdentity(ctx); err != nil {
		return fmt.Errorf("connecting to plex: %w", err)
	}

	ids, err := runner.BuildCache(ctx, plexClient, cfg.Plex.Libraries, cfg.Plex.PrimaryLibrary, cfg.Cache.Path, logger)
	if err != nil {
		return fmt.Errorf("persisting cache: %w", err)
	}

	fmt.Printf("Cached %d identifiers to %s\n", ids.Len(), cfg.Cache.Path)
	return nil
}
