package artwork

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate mockgen -source=healer.go -destination=mocks/healer.go -package=mocks

// MediaServer is the slice of the media-server client the engine needs:
// resolving relative references, taking live copies, and writing repaired
// artwork back. The media server stays the only writer of an item's live
// artwork reference.
type MediaServer interface {
	ArtworkURL(ref string) string
	DownloadArtwork(ctx context.Context, ref string) ([]byte, error)
	UploadArtwork(ctx context.Context, ratingKey string, slot Slot, data []byte) error
}

// Prober checks whether an artwork URL is reachable.
type Prober interface {
	Valid(ctx context.Context, url string) bool
}

// Backups is the local archive of previously obtained artwork, keyed by
// (library, title, slot).
type Backups interface {
	Exists(library, title string, slot Slot) bool
	Save(library, title string, slot Slot, data []byte) error
	Load(library, title string, slot Slot) ([]byte, error)
}

// Resolver supplies provider metadata and candidate images.
type Resolver interface {
	Resolve(ctx context.Context, title string, cachedID int64) (*Metadata, bool)
	DownloadImage(ctx context.Context, meta *Metadata, slot Slot) ([]byte, bool)
}

// IDLookup maps titles to cached provider identifiers.
type IDLookup interface {
	Get(title string) (int64, bool)
}

// Item is the narrow view of a media item the engine operates on.
type Item struct {
	Key        string // media-server identifier used for upload
	Title      string
	Poster     string // relative poster reference, may be empty
	Background string // relative background reference, may be empty
}

// Ref returns the item's relative artwork reference for the slot.
func (i Item) Ref(slot Slot) string {
	if slot == SlotPoster {
		return i.Poster
	}
	return i.Background
}

// Options are the run modes threaded down from configuration.
type Options struct {
	Upload       bool // write repaired artwork back to the media server
	DryRun       bool // suppress all mutating media-server calls
	ForceRefresh bool // treat every reference as broken
}

// Healer decides, per (item, slot), whether artwork needs repair and which
// fallback source supplies the replacement.
type Healer struct {
	server   MediaServer
	prober   Prober
	backups  Backups
	resolver Resolver
	ids      IDLookup
	opts     Options
	log      *slog.Logger
}

// NewHealer wires the reconciliation engine.
func NewHealer(server MediaServer, prober Prober, backups Backups, resolver Resolver, ids IDLookup, opts Options, log *slog.Logger) *Healer {
	if log == nil {
		log = slog.Default()
	}
	return &Healer{
		server:   server,
		prober:   prober,
		backups:  backups,
		resolver: resolver,
		ids:      ids,
		opts:     opts,
		log:      log.With("component", "healer"),
	}
}

// FixArtwork reconciles one (item, slot) pair. The first applicable
// terminal state wins:
//
//  1. Probe the current reference (forced broken under force-refresh).
//  2. Take a best-effort live backup if none exists yet.
//  3. Healthy reference: stop.
//  4. Broken with a backup on disk: restore it.
//  5. Broken with no backup: resolve via the provider, download, save the
//     bytes for future runs, and upload.
//
// Every failure is absorbed here; callers never see an error, only an
// Outcome.
func (h *Healer) FixArtwork(ctx context.Context, library string, item Item, slot Slot) Outcome {
	title := item.Title
	ref := item.Ref(slot)

	// Step 1: liveness.
	broken := h.opts.ForceRefresh || ref == ""
	if !broken {
		broken = !h.prober.Valid(ctx, h.server.ArtworkURL(ref))
	}

	// Step 2: opportunistic live backup. Failure here never changes the
	// outcome of the remaining steps.
	if ref != "" && !h.backups.Exists(library, title, slot) {
		if data, err := h.server.DownloadArtwork(ctx, ref); err != nil {
			h.log.Warn("live backup fetch failed", "title", title, "slot", slot.String(), "error", err)
		} else if err := h.backups.Save(library, title, slot, data); err != nil {
			h.log.Warn("backup write failed", "title", title, "slot", slot.String(), "error", err)
		} else {
			h.log.Info("backed up current artwork", "library", library, "title", title, "slot", slot.String())
		}
	}

	// Step 3: nothing to repair.
	if !broken {
		return Outcome{Status: StatusHealthy}
	}

	// Step 4: restore from the backup store. Preferred over a provider
	// round trip even under force-refresh.
	if h.backups.Exists(library, title, slot) {
		data, err := h.backups.Load(library, title, slot)
		if err != nil {
			return Outcome{Status: StatusErrored, Err: fmt.Errorf("load backup: %w", err)}
		}
		if err := h.upload(ctx, item, slot, data); err != nil {
			return Outcome{Status: StatusErrored, Err: fmt.Errorf("upload backup: %w", err)}
		}
		return Outcome{Status: StatusRestored}
	}

	// Step 5: provider fallback.
	var cachedID int64
	if h.ids != nil {
		cachedID, _ = h.ids.Get(title)
	}
	meta, ok := h.resolver.Resolve(ctx, title, cachedID)
	if !ok {
		return Outcome{Status: StatusMissing}
	}
	data, ok := h.resolver.DownloadImage(ctx, meta, slot)
	if !ok {
		return Outcome{Status: StatusMissing}
	}

	// Persist so future runs short-circuit at step 4. A storage failure
	// degrades to uploading the bytes still held in memory.
	if err := h.backups.Save(library, title, slot, data); err != nil {
		h.log.Warn("backup write failed", "title", title, "slot", slot.String(), "error", err)
	}
	if err := h.upload(ctx, item, slot, data); err != nil {
		return Outcome{Status: StatusErrored, Err: fmt.Errorf("upload artwork: %w", err)}
	}
	return Outcome{Status: StatusRedownloaded}
}

func (h *Healer) upload(ctx context.Context, item Item, slot Slot, data []byte) error {
	if !h.opts.Upload || h.opts.DryRun {
		return nil
	}
	return h.server.UploadArtwork(ctx, item.Key, slot, data)
}
