package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/vmunix/healarr/internal/artwork"
	"github.com/vmunix/healarr/internal/backup"
	"github.com/vmunix/healarr/internal/plex"
	"github.com/vmunix/healarr/internal/report"
	"github.com/vmunix/healarr/internal/runner"
	"github.com/vmunix/healarr/internal/tmdb"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Reconcile artwork for all configured libraries",
	Long: `Run a full reconciliation pass.

Every item in every configured library (and every collection) is checked
per artwork slot. Broken artwork is restored from the local backup store,
or re-downloaded from TMDB when no backup exists, and uploaded back to
Plex unless uploads are disabled or --dry-run is set.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("dry-run", false, "Report what would be done without mutating Plex")
	runCmd.Flags().Bool("force", false, "Treat all artwork as broken and re-upload")
	runCmd.Flags().Bool("rebuild-cache", false, "Rebuild the identifier cache before processing")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")
	rebuild, _ := cmd.Flags().GetBool("rebuild-cache")

	logger, closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// One run at a time: concurrent runs would race on the backup store
	// and the cache file.
	lock := flock.New(lockPath(cfg.Report.Path))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return errors.New("another healarr run is already in progress")
	}
	defer func() { _ = lock.Unlock() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	plexClient := plex.NewClient(cfg.Plex.URL, cfg.Plex.Token, logger)

	// The initial connection check is the only fatal failure: everything
	// past this point degrades per item.
	identity, err := plexClient.GetIdentity(ctx)
	if err != nil {
		return fmt.Errorf("connecting to plex: %w", err)
	}
	logger.Info("connected to plex", "server", identity.Name, "version", identity.Version)

	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, tmdb.WithLanguage(cfg.TMDB.Language))
	resolver := artwork.NewTMDBResolver(tmdbClient, logger)
	checker := artwork.NewChecker(nil)
	backups := backup.NewStore(cfg.Backup.Dir)

	reportStore, err := report.Open(cfg.Report.Path)
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		reportStore = nil
	} else {
		defer func() { _ = reportStore.Close() }()
	}

	rcfg := runner.Config{
		Libraries:      cfg.Plex.Libraries,
		PrimaryLibrary: cfg.Plex.PrimaryLibrary,
		CachePath:      cfg.Cache.Path,
		RebuildCache:   rebuild,
		Delay:          cfg.Run.Delay.Duration,
		Options: artwork.Options{
			Upload:       cfg.Run.Upload,
			DryRun:       dryRun || cfg.Run.DryRun,
			ForceRefresh: force || cfg.Run.ForceRefresh,
		},
	}

	r := runner.New(plexClient, checker, backups, resolver, reportStore, rcfg, logger)
	if err := r.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("run interrupted")
			return nil
		}
		return err
	}

	logger.Info("run complete")
	return nil
}

// lockPath places the run lock next to the run history database.
func lockPath(reportPath string) string {
	return filepath.Join(filepath.Dir(reportPath), "healarr.lock")
}
