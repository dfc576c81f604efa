package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Empty(t *testing.T) {
	err := &ConfigError{Path: "config.toml"}
	assert.False(t, err.HasErrors())
	assert.Empty(t, err.Error())
}

func TestConfigError_Missing(t *testing.T) {
	err := &ConfigError{Path: "config.toml", Missing: []string{"PLEX_TOKEN", "TMDB_API_KEY"}}
	assert.True(t, err.HasErrors())
	assert.Contains(t, err.Error(), "missing environment variables: PLEX_TOKEN, TMDB_API_KEY")
}

func TestConfigError_Validation(t *testing.T) {
	err := &ConfigError{Path: "config.toml", Errors: []string{"plex.url: required"}}
	assert.True(t, err.HasErrors())
	assert.Contains(t, err.Error(), "validation failed:")
	assert.Contains(t, err.Error(), "plex.url: required")
}
