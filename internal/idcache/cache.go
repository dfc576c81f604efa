// Package idcache builds and persists the title -> TMDB id mapping that
// lets reconciliation prefer direct id lookups over fuzzy title search.
package idcache

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strconv"
)

// guidPattern matches the provider linkage embedded in a media item's
// cross-reference string, e.g. "themoviedb://603?lang=en".
var guidPattern = regexp.MustCompile(`themoviedb://(\d+)`)

// ExtractID pulls the TMDB id out of a cross-reference string.
func ExtractID(guid string) (int64, bool) {
	m := guidPattern.FindStringSubmatch(guid)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Entry is one enumerated item or collection during a cache build.
type Entry struct {
	Title string
	GUID  string
}

// Source enumerates libraries for a cache build.
type Source interface {
	LibraryEntries(ctx context.Context, library string) ([]Entry, error)
	CollectionEntries(ctx context.Context, library string) ([]Entry, error)
}

// Cache is the in-memory title -> TMDB id mapping. It is read-only during
// the reconciliation pass.
type Cache struct {
	ids map[string]int64
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{ids: make(map[string]int64)}
}

// Get returns the cached identifier for a title.
func (c *Cache) Get(title string) (int64, bool) {
	id, ok := c.ids[title]
	return id, ok
}

// Set records an identifier. Duplicate titles keep the last writer.
func (c *Cache) Set(title string, id int64) {
	c.ids[title] = id
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.ids)
}

// Build enumerates every configured library, plus the primary library's
// collections, collecting identifiers from the items' provider linkage.
// Entries without a parseable linkage are skipped; a library that fails to
// enumerate is logged and skipped. The full mapping is persisted to path
// before returning; when persisting fails the in-memory cache is still
// returned alongside the error.
func Build(ctx context.Context, src Source, libraries []string, primary, path string, log *slog.Logger) (*Cache, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "idcache")

	cache := New()
	for _, lib := range libraries {
		entries, err := src.LibraryEntries(ctx, lib)
		if err != nil {
			log.Warn("library enumeration failed", "library", lib, "error", err)
			continue
		}
		cache.addEntries(entries)
	}

	collections, err := src.CollectionEntries(ctx, primary)
	if err != nil {
		log.Warn("collection enumeration failed", "library", primary, "error", err)
	} else {
		cache.addEntries(collections)
	}

	if err := cache.Save(path); err != nil {
		return cache, err
	}
	log.Info("identifier cache built", "entries", cache.Len(), "path", path)
	return cache, nil
}

func (c *Cache) addEntries(entries []Entry) {
	for _, e := range entries {
		if id, ok := ExtractID(e.GUID); ok {
			c.Set(e.Title, id)
		}
	}
}

// Save rewrites the cache wholesale as CSV with a "title,tmdb_id" header.
func (c *Cache) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"title", "tmdb_id"}); err != nil {
		return fmt.Errorf("write cache header: %w", err)
	}

	titles := make([]string, 0, len(c.ids))
	for title := range c.ids {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	for _, title := range titles {
		if err := w.Write([]string{title, strconv.FormatInt(c.ids[title], 10)}); err != nil {
			return fmt.Errorf("write cache row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	return nil
}

// Load reads a previously persisted cache. A missing file yields an empty
// cache, never an error: the run proceeds with search-based resolution.
func Load(path string) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("open cache file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	cache := New()
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue // header or malformed row
		}
		id, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil || row[0] == "" {
			continue
		}
		cache.Set(row[0], id)
	}
	return cache, nil
}
