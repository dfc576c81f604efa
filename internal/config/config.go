// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Plex   PlexConfig   `toml:"plex"`
	TMDB   TMDBConfig   `toml:"tmdb"`
	Backup BackupConfig `toml:"backup"`
	Cache  CacheConfig  `toml:"cache"`
	Report ReportConfig `toml:"report"`
	Log    LogConfig    `toml:"log"`
	Run    RunConfig    `toml:"run"`
}

type PlexConfig struct {
	URL            string   `toml:"url"`
	Token          string   `toml:"token"`
	Libraries      []string `toml:"libraries"`
	PrimaryLibrary string   `toml:"primary_library"`
}

type TMDBConfig struct {
	APIKey   string `toml:"api_key"`
	Language string `toml:"language"`
}

type BackupConfig struct {
	Dir string `toml:"dir"`
}

type CacheConfig struct {
	Path string `toml:"path"`
}

type ReportConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
	Level   string `toml:"level"`
}

type RunConfig struct {
	Upload       bool     `toml:"upload"`
	ForceRefresh bool     `toml:"force_refresh"`
	DryRun       bool     `toml:"dry_run"`
	Delay        Duration `toml:"delay"`
}

// Duration wraps time.Duration so TOML values can be written as "1s" or "500ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads and parses the configuration file.
// Unresolved ${VAR} references are reported through a ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TMDB.Language == "" {
		c.TMDB.Language = "en"
	}
	if c.Plex.PrimaryLibrary == "" {
		c.Plex.PrimaryLibrary = "Movies"
	}
	if c.Backup.Dir == "" {
		c.Backup.Dir = "./posters"
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "./tmdb_cache.csv"
	}
	if c.Report.Path == "" {
		c.Report.Path = "./healarr.db"
	}
	if c.Log.Path == "" {
		c.Log.Path = "./healarr.log"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Run.Delay.Duration == 0 {
		c.Run.Delay.Duration = time.Second
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Returns the substituted content and the names of any unresolved variables.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return result, missing
}
