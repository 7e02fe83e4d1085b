package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Preview defaults, matching what fits in a typical preview column.
const (
	DefaultPreviewEntries = 15
	DefaultPreviewBytes   = 2000
	maxPreviewBytes       = 1 << 20
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"`
	Icons         string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Listing behavior
	ShowHidden    *bool `koanf:"show_hidden"`    // list dot entries (default: true)
	ConfirmDelete *bool `koanf:"confirm_delete"` // ask before deleting (default: true)

	// Session
	RestoreLocation *bool `koanf:"restore_location"` // reopen the last directory (default: true)

	Preview PreviewConfig `koanf:"preview"`

	// Logging
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error" (default: "info")
	LogFile  string `koanf:"log_file"`  // empty means $XDG_STATE_HOME/burrow/burrow.log
}

// PreviewConfig holds preview pane settings.
type PreviewConfig struct {
	MaxEntries int `koanf:"max_entries"` // directory entries listed (default: 15)
	MaxBytes   int `koanf:"max_bytes"`   // bytes read from text files (default: 2000)
}

// Load reads the configuration from the standard locations.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order (last wins). Missing files
// are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/burrow/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "burrow", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ShowHiddenFiles returns whether dot entries are listed.
func (c *Config) ShowHiddenFiles() bool {
	return c.ShowHidden == nil || *c.ShowHidden
}

// ShouldRestoreLocation returns whether a session starts where the last one
// ended when no path is given.
func (c *Config) ShouldRestoreLocation() bool {
	return c.RestoreLocation == nil || *c.RestoreLocation
}

// ShouldConfirmDelete returns whether deletions ask for confirmation.
func (c *Config) ShouldConfirmDelete() bool {
	return c.ConfirmDelete == nil || *c.ConfirmDelete
}

// GetPreviewConfig returns the preview configuration with defaults applied.
func (c *Config) GetPreviewConfig() PreviewConfig {
	cfg := c.Preview

	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultPreviewEntries
	}
	if cfg.MaxBytes <= 0 || cfg.MaxBytes > maxPreviewBytes {
		cfg.MaxBytes = DefaultPreviewBytes
	}

	return cfg
}
