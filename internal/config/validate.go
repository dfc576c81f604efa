package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Plex.URL == "" {
		errs = append(errs, "plex.url: required")
	} else if !strings.HasPrefix(c.Plex.URL, "http://") && !strings.HasPrefix(c.Plex.URL, "https://") {
		errs = append(errs, fmt.Sprintf("plex.url: must start with http:// or https://, got %q", c.Plex.URL))
	}
	if c.Plex.Token == "" {
		errs = append(errs, "plex.token: required")
	}
	if len(c.Plex.Libraries) == 0 {
		errs = append(errs, "plex.libraries: at least one library must be configured")
	}
	for i, lib := range c.Plex.Libraries {
		if strings.TrimSpace(lib) == "" {
			errs = append(errs, fmt.Sprintf("plex.libraries[%d]: name must not be empty", i))
		}
	}

	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	if c.TMDB.Language != "" {
		if _, err := language.Parse(c.TMDB.Language); err != nil {
			errs = append(errs, fmt.Sprintf("tmdb.language: invalid language tag %q", c.TMDB.Language))
		}
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Run.Delay.Duration < 0 {
		errs = append(errs, fmt.Sprintf("run.delay: must not be negative, got %s", c.Run.Delay.Duration))
	}

	return errs
}
