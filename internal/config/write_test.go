package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	t.Setenv("PLEX_TOKEN", "plex-token")
	t.Setenv("TMDB_API_KEY", "tmdb-key")

	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	require.NoError(t, WriteDefault(path))

	// The written default must load and validate cleanly.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Validate())
	assert.Equal(t, "plex-token", cfg.Plex.Token)
	assert.Equal(t, "tmdb-key", cfg.TMDB.APIKey)
	assert.Equal(t, []string{"Movies", "TV Shows"}, cfg.Plex.Libraries)
}

func TestWrite_RoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.Plex.Libraries = []string{"Anime"}
	cfg.Run.ForceRefresh = true

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, cfg.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Plex.Libraries, loaded.Plex.Libraries)
	assert.True(t, loaded.Run.ForceRefresh)
}
