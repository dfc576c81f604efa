package artwork

import (
	"context"
	"log/slog"

	"github.com/hbollon/go-edlib"
	"github.com/vmunix/healarr/internal/tmdb"
)

// Metadata is the narrow view of provider metadata the engine needs.
type Metadata struct {
	ID           int64
	Title        string
	PosterPath   string
	BackdropPath string
}

// ImagePath maps a slot to the provider's image path field.
// Empty when the provider has no image for the slot.
func (m *Metadata) ImagePath(slot Slot) string {
	if slot == SlotPoster {
		return m.PosterPath
	}
	return m.BackdropPath
}

// TMDBResolver looks up metadata and downloads candidate images from TMDB.
// All failures degrade to "nothing found": they are logged, never fatal.
type TMDBResolver struct {
	client *tmdb.Client
	log    *slog.Logger
}

// NewTMDBResolver creates a resolver backed by the given TMDB client.
func NewTMDBResolver(client *tmdb.Client, log *slog.Logger) *TMDBResolver {
	if log == nil {
		log = slog.Default()
	}
	return &TMDBResolver{
		client: client,
		log:    log.With("component", "resolver"),
	}
}

// Resolve fetches metadata for a title. A cached provider ID is strictly
// preferred over title search: search results are only heuristically
// correct for titles shared across remakes.
func (r *TMDBResolver) Resolve(ctx context.Context, title string, cachedID int64) (*Metadata, bool) {
	if cachedID != 0 {
		movie, err := r.client.GetMovie(ctx, cachedID)
		if err != nil {
			r.log.Warn("lookup by id failed", "title", title, "tmdb_id", cachedID, "error", err)
			return nil, false
		}
		return metadataFromMovie(movie), true
	}

	results, err := r.client.SearchMovies(ctx, title)
	if err != nil {
		r.log.Warn("title search failed", "title", title, "error", err)
		return nil, false
	}
	if len(results) == 0 {
		return nil, false
	}

	best := pickBestMatch(title, results)
	return metadataFromMovie(&best), true
}

// DownloadImage fetches the provider image for the slot.
// Absent path, transport error, or non-success status all yield absent.
func (r *TMDBResolver) DownloadImage(ctx context.Context, meta *Metadata, slot Slot) ([]byte, bool) {
	imagePath := meta.ImagePath(slot)
	if imagePath == "" {
		return nil, false
	}

	data, err := r.client.DownloadImage(ctx, imagePath)
	if err != nil {
		r.log.Warn("image download failed", "title", meta.Title, "slot", slot.String(), "error", err)
		return nil, false
	}
	return data, true
}

func metadataFromMovie(m *tmdb.Movie) *Metadata {
	return &Metadata{
		ID:           m.ID,
		Title:        m.Title,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
	}
}

// pickBestMatch selects the search result whose title is closest to the
// query. Ties keep the provider's own ranking, so a single result or an
// all-equal list degrades to the first entry.
func pickBestMatch(title string, results []tmdb.Movie) tmdb.Movie {
	best := results[0]
	bestScore := float64(edlib.JaroWinklerSimilarity(title, best.Title))
	for _, candidate := range results[1:] {
		score := float64(edlib.JaroWinklerSimilarity(title, candidate.Title))
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}
