// Package xdg resolves XDG Base Directory paths for shelterapp. Config and
// state locations honor the XDG environment variables and fall back to the
// conventional dot directories under the user's home when unset. Directories
// are created on first use with owner-only permissions since they hold
// session state.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "shelterapp"

// ConfigDir returns the shelterapp config directory, creating it if missing.
// Resolution order: $XDG_CONFIG_HOME/shelterapp, then ~/.config/shelterapp.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the shelterapp state directory, creating it if missing.
// Resolution order: $XDG_STATE_HOME/shelterapp, then
// ~/.local/state/shelterapp.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", ".local", "state")
}

func ensure(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
