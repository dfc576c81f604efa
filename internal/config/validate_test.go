package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Plex.URL = "http://plex.local:32400"
	cfg.Plex.Token = "token"
	cfg.Plex.Libraries = []string{"Movies"}
	cfg.TMDB.APIKey = "key"
	cfg.applyDefaults()
	return cfg
}

func TestValidate_OK(t *testing.T) {
	assert.Empty(t, validConfig().Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	errs := cfg.Validate()
	assert.Contains(t, errs, "plex.url: required")
	assert.Contains(t, errs, "plex.token: required")
	assert.Contains(t, errs, "plex.libraries: at least one library must be configured")
	assert.Contains(t, errs, "tmdb.api_key: required")
}

func TestValidate_BadURLScheme(t *testing.T) {
	cfg := validConfig()
	cfg.Plex.URL = "plex.local:32400"

	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "plex.url")
}

func TestValidate_EmptyLibraryName(t *testing.T) {
	cfg := validConfig()
	cfg.Plex.Libraries = []string{"Movies", "  "}

	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "plex.libraries[1]")
}

func TestValidate_BadLanguage(t *testing.T) {
	cfg := validConfig()
	cfg.TMDB.Language = "not a language"

	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "tmdb.language")
}

func TestValidate_LanguageTags(t *testing.T) {
	for _, lang := range []string{"en", "de", "pt-BR", "zh-Hant"} {
		cfg := validConfig()
		cfg.TMDB.Language = lang
		assert.Empty(t, cfg.Validate(), "language %q should be accepted", lang)
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "verbose"

	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "log.level")
}

func TestValidate_NegativeDelay(t *testing.T) {
	cfg := validConfig()
	cfg.Run.Delay.Duration = -time.Second

	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "run.delay")
}
