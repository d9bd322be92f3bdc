// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; session state goes to the storage
// backend the config selects.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"shelterapp/cli/internal/xdg"
)

// Storage backend names accepted in the config file.
const (
	BackendAuto     = "auto"
	BackendKeychain = "keychain"
	BackendSQLite   = "sqlite"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// LogLevel set to "debug" enables verbose output, same as the -v flags.
	LogLevel string        `json:"log_level"`
	Storage  StorageConfig `json:"storage"`
}

// StorageConfig selects where session state is persisted.
type StorageConfig struct {
	// Backend is one of auto, keychain, sqlite, file or memory.
	// auto prefers the OS keychain and falls back to sqlite.
	Backend string `json:"backend"`
	// Path overrides the state location for the sqlite and file backends.
	Path string `json:"path,omitempty"`
}

// path returns the config file location.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file; a missing file yields Default().
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendAuto
	}
	return c, nil
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		LogLevel: "info",
		Storage:  StorageConfig{Backend: BackendAuto},
	}
}

// Save writes the config file with owner-only permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
