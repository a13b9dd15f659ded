package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearFeedEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FEED_SHEET_ID", "FEED_SHEET_NAME", "FEED_URL", "FEED_REFRESH_CRON",
		"BOLT_PATH", "SQLITE_PATH", "LOG_LEVEL", "HTTPS_PROXY",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearFeedEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", cfg.Feed.SheetName)
	assert.Equal(t, "0 */30 * * * *", cfg.Feed.RefreshCron)
	assert.Equal(t, "data/fundlink.db", cfg.Store.BoltPath)
	assert.Equal(t, "data/fundlink_history.db", cfg.Database.SQLitePath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearFeedEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
feed:
  sheet_id: abc123
  sheet_name: Offerings
  refresh_cron: "0 0 * * * *"
store:
  bolt_path: /tmp/state.db
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Feed.SheetID)
	assert.Equal(t, "0 0 * * * *", cfg.Feed.RefreshCron)
	assert.Equal(t, "/tmp/state.db", cfg.Store.BoltPath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BuildsGvizURLFromSheetID(t *testing.T) {
	clearFeedEnv(t)
	t.Setenv("FEED_SHEET_ID", "abc123")
	t.Setenv("FEED_SHEET_NAME", "Fund List")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123/gviz/tq?tqx=out:json&sheet=Fund+List",
		cfg.Feed.URL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearFeedEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("FEED_URL", "https://example.com/feed")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "https://example.com/feed", cfg.Feed.URL)
}

func TestLoad_ExplicitURLWins(t *testing.T) {
	clearFeedEnv(t)
	t.Setenv("FEED_SHEET_ID", "abc123")
	t.Setenv("FEED_URL", "https://example.com/feed")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/feed", cfg.Feed.URL)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed: [not: closed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_RequiresFeedURL(t *testing.T) {
	clearFeedEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate(), "neither url nor sheet_id configured")
}
