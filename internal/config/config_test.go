package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Gamification.XPPerArticle)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.SessionMaxAge)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/custom.db
log:
  level: debug
gamification:
  xp_per_article: 40
  timezone: UTC
  launch_cutoff: "2026-01-31"
recommend:
  rules_file: /etc/ascend/rules.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 40, cfg.Gamification.XPPerArticle)
	assert.Equal(t, "/etc/ascend/rules.yaml", cfg.Recommend.RulesFile)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), cfg.LaunchCutoffDate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp/file.db\n")
	t.Setenv("ASCEND_DB", "/tmp/env.db")
	t.Setenv("ASCEND_XP_PER_ARTICLE", "10")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.Gamification.XPPerArticle)
}

func TestLoad_NonNumericXPFromEnv(t *testing.T) {
	t.Setenv("ASCEND_XP_PER_ARTICLE", "twenty")

	_, err := Load(writeConfig(t, "db_path: /tmp/file.db\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "ASCEND_XP_PER_ARTICLE")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero xp", "gamification:\n  xp_per_article: 0\n"},
		{"bad tz", "gamification:\n  timezone: Mars/Olympus\n"},
		{"bad cutoff", "gamification:\n  launch_cutoff: soon\n"},
		{"bad yaml", "log: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestResolveDBPath_DefaultsUnderDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultConfig().ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ascend", "ascend.db"), p)

	info, err := os.Stat(filepath.Join(dir, "ascend"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
