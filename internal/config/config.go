package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	DBPath       string             `yaml:"db_path"`
	Log          LogConfig          `yaml:"log"`
	Gamification GamificationConfig `yaml:"gamification"`
	Auth         AuthConfig         `yaml:"auth"`
	Recommend    RecommendConfig    `yaml:"recommend"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty = <data dir>/ascend.log
}

// GamificationConfig holds the XP and streak settings.
type GamificationConfig struct {
	XPPerArticle int    `yaml:"xp_per_article"`
	Timezone     string `yaml:"timezone"`      // IANA name; streak days use this calendar
	LaunchCutoff string `yaml:"launch_cutoff"` // YYYY-MM-DD; sign-ups on or before earn early_adopter
}

// AuthConfig holds session settings.
type AuthConfig struct {
	SessionMaxAge time.Duration `yaml:"session_max_age"`
}

// RecommendConfig points at an optional replacement rule table.
type RecommendConfig struct {
	RulesFile string `yaml:"rules_file"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Gamification: GamificationConfig{
			XPPerArticle: 25,
			Timezone:     "Local",
			LaunchCutoff: "2025-12-31",
		},
		Auth: AuthConfig{
			SessionMaxAge: 30 * 24 * time.Hour,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (if it
// exists), and ASCEND_* environment variables, in that order. An empty
// path means DefaultConfigPath.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No config file is fine.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ASCEND_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ASCEND_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ASCEND_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("ASCEND_TZ"); v != "" {
		cfg.Gamification.Timezone = v
	}
	if v := os.Getenv("ASCEND_XP_PER_ARTICLE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ASCEND_XP_PER_ARTICLE: %w", err)
		}
		cfg.Gamification.XPPerArticle = n
	}
	return nil
}

// Validate checks the settings that would otherwise fail later.
func (c Config) Validate() error {
	if c.Gamification.XPPerArticle <= 0 {
		return fmt.Errorf("gamification.xp_per_article must be > 0, got %d", c.Gamification.XPPerArticle)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Gamification.LaunchCutoff != "" {
		if _, err := time.Parse(time.DateOnly, c.Gamification.LaunchCutoff); err != nil {
			return fmt.Errorf("gamification.launch_cutoff: %w", err)
		}
	}
	if c.Auth.SessionMaxAge <= 0 {
		return fmt.Errorf("auth.session_max_age must be > 0")
	}
	return nil
}

// Location resolves the streak time zone.
func (c Config) Location() (*time.Location, error) {
	tz := c.Gamification.Timezone
	if tz == "" || tz == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("gamification.timezone: %w", err)
	}
	return loc, nil
}

// LaunchCutoffDate returns the early-adopter cutoff, or the zero time if unset.
func (c Config) LaunchCutoffDate() time.Time {
	if c.Gamification.LaunchCutoff == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.DateOnly, c.Gamification.LaunchCutoff)
	return t
}
