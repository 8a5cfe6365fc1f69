package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir resolves the data directory in priority order:
// 1. $XDG_DATA_HOME/ascend
// 2. ~/.local/share/ascend
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ascend"), nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/ascend/config.yaml or the
// ~/.config equivalent.
func DefaultConfigPath() (string, error) {
	cfgHome := os.Getenv("XDG_CONFIG_HOME")
	if cfgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		cfgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(cfgHome, "ascend", "config.yaml"), nil
}

// ResolveDBPath returns the configured database path, falling back to
// <data dir>/ascend.db. The parent directory is created.
func (c Config) ResolveDBPath() (string, error) {
	p := c.DBPath
	if p == "" {
		dir, err := DataDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, "ascend.db")
	}
	return p, EnsureDir(p)
}

// ResolveLogPath returns the configured log file, falling back to
// <data dir>/ascend.log.
func (c Config) ResolveLogPath() (string, error) {
	p := c.Log.File
	if p == "" {
		dir, err := DataDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, "ascend.log")
	}
	return p, EnsureDir(p)
}

// SessionTokenPath is where the signed-in session token is kept.
func SessionTokenPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "session")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
