package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.History.Max)
	require.Equal(t, "default", cfg.UI.Theme)
	require.Equal(t, path, cfg.Path())
}

func TestLoadClampsHistoryMax(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{body: "[history]\nmax = 0\n", want: 1},
		{body: "[history]\nmax = -3\n", want: 1},
		{body: "[history]\nmax = 55\n", want: 55},
		{body: "[history]\nmax = 1000\n", want: 100},
	}
	for _, tc := range tests {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, tc.want, cfg.History.Max, tc.body)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[history\nmax = "), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SELTRACK_HISTORY_MAX", "7")
	t.Setenv("SELTRACK_UI_THEME", "nord")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.Equal(t, 7, cfg.History.Max)
	require.Equal(t, "nord", cfg.UI.Theme)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.History.Max = 42
	cfg.UI.Theme = "gruvbox"
	cfg.UI.Icon = "/tmp/icon.txt"
	cfg.Database.Path = "/tmp/ws.db"
	require.NoError(t, Save(cfg))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 42, got.History.Max)
	require.Equal(t, "gruvbox", got.UI.Theme)
	require.Equal(t, "/tmp/icon.txt", got.UI.Icon)
	require.Equal(t, "/tmp/ws.db", got.Database.Path)
}

func TestWatchReportsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Save(cfg))

	var last atomic.Int64
	Watch(cfg, func(c Config) {
		last.Store(int64(c.History.Max))
	}, nil)

	cfg.History.Max = 33
	require.NoError(t, Save(cfg))

	require.Eventually(t, func() bool {
		return last.Load() == 33
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchMissingFileReportsError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	var got error
	Watch(cfg, func(Config) {}, func(err error) { got = err })
	require.Error(t, got)
}

func TestClampMax(t *testing.T) {
	require.Equal(t, 1, ClampMax(0))
	require.Equal(t, 20, ClampMax(20))
	require.Equal(t, 100, ClampMax(101))
}
