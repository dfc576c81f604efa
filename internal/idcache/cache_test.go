package idcache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		guid string
		want int64
		ok   bool
	}{
		{"themoviedb://603?lang=en", 603, true},
		{"themoviedb://1234", 1234, true},
		{"com.plexapp.agents.themoviedb://550?lang=en", 550, true},
		{"local://102", 0, false},
		{"imdb://tt0133093", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		id, ok := ExtractID(tt.guid)
		assert.Equal(t, tt.ok, ok, tt.guid)
		assert.Equal(t, tt.want, id, tt.guid)
	}
}

func TestCache_GetSet(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Len())

	_, ok := c.Get("The Matrix")
	assert.False(t, ok)

	c.Set("The Matrix", 603)
	id, ok := c.Get("The Matrix")
	assert.True(t, ok)
	assert.Equal(t, int64(603), id)

	// Duplicate titles keep the last writer.
	c.Set("The Matrix", 604)
	id, _ = c.Get("The Matrix")
	assert.Equal(t, int64(604), id)
	assert.Equal(t, 1, c.Len())
}

func TestCache_SaveLoad(t *testing.T) {
	c := New()
	c.Set("The Matrix", 603)
	c.Set("Alien", 348)

	path := filepath.Join(t.TempDir(), "cache.csv")
	require.NoError(t, c.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	id, ok := loaded.Get("Alien")
	require.True(t, ok)
	assert.Equal(t, int64(348), id)
}

func TestLoad_MissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.csv")
	content := "title,tmdb_id\nThe Matrix,603\nNot A Number,abc\nAlien,348\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get("Not A Number")
	assert.False(t, ok)
}

type fakeSource struct {
	libraries   map[string][]Entry
	collections map[string][]Entry
	libErr      map[string]error
}

func (f *fakeSource) LibraryEntries(_ context.Context, library string) ([]Entry, error) {
	if err := f.libErr[library]; err != nil {
		return nil, err
	}
	return f.libraries[library], nil
}

func (f *fakeSource) CollectionEntries(_ context.Context, library string) ([]Entry, error) {
	return f.collections[library], nil
}

func TestBuild(t *testing.T) {
	src := &fakeSource{
		libraries: map[string][]Entry{
			"Movies": {
				{Title: "The Matrix", GUID: "themoviedb://603?lang=en"},
				{Title: "Home Video", GUID: "local://99"},
			},
			"4K": {
				{Title: "Alien", GUID: "themoviedb://348"},
			},
		},
		collections: map[string][]Entry{
			"Movies": {
				{Title: "Matrix Collection", GUID: "themoviedb://2344"},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "cache.csv")
	cache, err := Build(context.Background(), src, []string{"Movies", "4K"}, "Movies", path, nil)
	require.NoError(t, err)

	// Items without a provider linkage are skipped.
	assert.Equal(t, 3, cache.Len())

	id, ok := cache.Get("Matrix Collection")
	require.True(t, ok)
	assert.Equal(t, int64(2344), id)

	// The mapping is persisted.
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())
}

func TestBuild_FailedLibrarySkipped(t *testing.T) {
	src := &fakeSource{
		libraries: map[string][]Entry{
			"Movies": {{Title: "The Matrix", GUID: "themoviedb://603"}},
		},
		libErr: map[string]error{"4K": errors.New("section gone")},
	}

	path := filepath.Join(t.TempDir(), "cache.csv")
	cache, err := Build(context.Background(), src, []string{"Movies", "4K"}, "Movies", path, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
}

func TestBuild_SaveFailureReturnsCache(t *testing.T) {
	src := &fakeSource{
		libraries: map[string][]Entry{
			"Movies": {{Title: "The Matrix", GUID: "themoviedb://603"}},
		},
	}

	// Persisting into a missing directory fails; the in-memory cache
	// must still come back.
	path := filepath.Join(t.TempDir(), "no-such-dir", "cache.csv")
	cache, err := Build(context.Background(), src, []string{"Movies"}, "Movies", path, nil)
	assert.Error(t, err)
	require.NotNil(t, cache)
	assert.Equal(t, 1, cache.Len())
}
