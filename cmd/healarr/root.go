package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/healarr/internal/config"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "healarr",
	Short: "Artwork healer for Plex libraries",
	Long: `healarr - artwork healer for Plex libraries

Reconciles poster and background artwork for every item in the configured
Plex libraries: artwork that is missing or unreachable is restored from the
local backup store, or re-downloaded from TMDB when no backup exists.

Run 'healarr init' to write a starter config, then 'healarr run'.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discovered)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("healarr {{.Version}}\n")
}

// loadConfig resolves, loads, and validates the configuration.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}
