// Package runner orchestrates a full reconciliation pass over the
// configured Plex libraries.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/healarr/internal/artwork"
	"github.com/vmunix/healarr/internal/idcache"
	"github.com/vmunix/healarr/internal/plex"
	"github.com/vmunix/healarr/internal/report"
)

// Config holds the orchestration settings threaded down from the CLI.
// It is immutable for the duration of a run.
type Config struct {
	Libraries      []string
	PrimaryLibrary string
	CachePath      string
	RebuildCache   bool
	Delay          time.Duration
	Options        artwork.Options
}

// Runner iterates libraries and items, applying the reconciliation engine
// per (item, slot) with a fixed inter-item delay.
type Runner struct {
	plex     *plex.Client
	prober   artwork.Prober
	backups  artwork.Backups
	resolver artwork.Resolver
	report   *report.Store
	cfg      Config
	log      *slog.Logger
}

// New creates a runner. The report store may be nil; outcomes are then
// only logged.
func New(client *plex.Client, prober artwork.Prober, backups artwork.Backups, resolver artwork.Resolver, reportStore *report.Store, cfg Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		plex:     client,
		prober:   prober,
		backups:  backups,
		resolver: resolver,
		report:   reportStore,
		cfg:      cfg,
		log:      log.With("component", "runner"),
	}
}

// Run executes the full reconciliation pass. It blocks until the pass
// completes or the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.process(ctx)
	})
	return g.Wait()
}

func (r *Runner) process(ctx context.Context) error {
	ids := r.prepareCache(ctx)
	healer := artwork.NewHealer(r.plex, r.prober, r.backups, r.resolver, ids, r.cfg.Options, r.log)

	var runID string
	if r.report != nil {
		id, err := r.report.StartRun(ctx)
		if err != nil {
			r.log.Warn("run history unavailable", "error", err)
		} else {
			runID = id
		}
	}

	// Pass 1: library items.
	for _, lib := range r.cfg.Libraries {
		items, err := r.listLibrary(ctx, lib, false)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.log.Error("library enumeration failed", "library", lib, "error", err)
			continue
		}
		r.log.Info("processing library", "library", lib, "items", len(items))
		if err := r.processItems(ctx, healer, runID, lib, items); err != nil {
			return err
		}
	}

	// Pass 2: each library's named collections, with the same two slots.
	for _, lib := range r.cfg.Libraries {
		items, err := r.listLibrary(ctx, lib, true)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.log.Error("collection enumeration failed", "library", lib, "error", err)
			continue
		}
		r.log.Info("processing collections", "library", lib, "items", len(items))
		if err := r.processItems(ctx, healer, runID, lib, items); err != nil {
			return err
		}
	}

	if r.report != nil && runID != "" {
		if err := r.report.FinishRun(ctx, runID); err != nil {
			r.log.Warn("finishing run history failed", "error", err)
		}
	}
	return nil
}

// prepareCache loads the persisted identifier cache when present, building
// (and persisting) a fresh one otherwise or when a rebuild is requested.
func (r *Runner) prepareCache(ctx context.Context) *idcache.Cache {
	if !r.cfg.RebuildCache {
		ids, err := idcache.Load(r.cfg.CachePath)
		if err != nil {
			r.log.Warn("identifier cache unreadable, rebuilding", "path", r.cfg.CachePath, "error", err)
		} else if ids.Len() > 0 {
			r.log.Info("loaded identifier cache", "entries", ids.Len(), "path", r.cfg.CachePath)
			return ids
		}
	}

	ids, err := idcache.Build(ctx, plexSource{r.plex}, r.cfg.Libraries, r.cfg.PrimaryLibrary, r.cfg.CachePath, r.log)
	if err != nil {
		r.log.Warn("persisting identifier cache failed", "path", r.cfg.CachePath, "error", err)
	}
	return ids
}

func (r *Runner) listLibrary(ctx context.Context, library string, collections bool) ([]plex.Item, error) {
	sec, err := r.plex.FindSectionByName(ctx, library)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, fmt.Errorf("library %q not found", library)
	}
	if collections {
		return r.plex.ListCollections(ctx, sec.Key)
	}
	return r.plex.ListItems(ctx, sec.Key)
}

func (r *Runner) processItems(ctx context.Context, healer *artwork.Healer, runID, library string, items []plex.Item) error {
	for _, it := range items {
		item := artwork.Item{
			Key:        it.RatingKey,
			Title:      it.Title,
			Poster:     it.Thumb,
			Background: it.Art,
		}
		for _, slot := range artwork.Slots {
			out := healer.FixArtwork(ctx, library, item, slot)
			r.logOutcome(library, item.Title, slot, out)
			r.record(ctx, runID, library, item.Title, slot, out)
		}
		if err := r.pause(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) logOutcome(library, title string, slot artwork.Slot, out artwork.Outcome) {
	attrs := []any{
		"tag", out.Tag(r.cfg.Options.ForceRefresh),
		"library", library,
		"title", title,
		"slot", slot.String(),
	}
	switch out.Status {
	case artwork.StatusErrored:
		r.log.Error("reconciliation failed", append(attrs, "error", out.Err)...)
	case artwork.StatusMissing:
		r.log.Warn("no artwork found", attrs...)
	default:
		r.log.Info("artwork reconciled", attrs...)
	}
}

func (r *Runner) record(ctx context.Context, runID, library, title string, slot artwork.Slot, out artwork.Outcome) {
	if r.report == nil || runID == "" {
		return
	}
	detail := ""
	if out.Err != nil {
		detail = out.Err.Error()
	}
	res := report.Result{
		Library: library,
		Title:   title,
		Slot:    slot.String(),
		Outcome: out.Status.String(),
		Detail:  detail,
	}
	if err := r.report.Record(ctx, runID, res); err != nil {
		r.log.Warn("recording outcome failed", "title", title, "error", err)
	}
}

// pause applies the fixed inter-item delay, the only intentional yield
// point between external calls.
func (r *Runner) pause(ctx context.Context) error {
	if r.cfg.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.cfg.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// BuildCache rebuilds and persists the identifier cache outside a full
// run. The returned cache is valid even when persisting failed.
func BuildCache(ctx context.Context, client *plex.Client, libraries []string, primary, path string, log *slog.Logger) (*idcache.Cache, error) {
	return idcache.Build(ctx, plexSource{client}, libraries, primary, path, log)
}

// plexSource adapts the Plex client to the cache builder's enumerator.
type plexSource struct {
	client *plex.Client
}

func (s plexSource) LibraryEntries(ctx context.Context, library string) ([]idcache.Entry, error) {
	return s.entries(ctx, library, false)
}

func (s plexSource) CollectionEntries(ctx context.Context, library string) ([]idcache.Entry, error) {
	return s.entries(ctx, library, true)
}

func (s plexSource) entries(ctx context.Context, library string, collections bool) ([]idcache.Entry, error) {
	sec, err := s.client.FindSectionByName(ctx, library)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, fmt.Errorf("library %q not found", library)
	}

	var items []plex.Item
	if collections {
		items, err = s.client.ListCollections(ctx, sec.Key)
	} else {
		items, err = s.client.ListItems(ctx, sec.Key)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]idcache.Entry, len(items))
	for i, it := range items {
		entries[i] = idcache.Entry{Title: it.Title, GUID: it.GUID}
	}
	return entries, nil
}
