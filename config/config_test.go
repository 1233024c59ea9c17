package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"viewport-watch/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setHome points the config directory at a fresh temp dir.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return filepath.Join(home, configDirName)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, viewport.DefaultBreakpoint, cfg.Breakpoint)
	assert.Equal(t, 500, cfg.PollIntervalMs)
	assert.True(t, cfg.AltScreen)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval())
}

func TestPollIntervalFallsBackToDefault(t *testing.T) {
	cfg := &Config{PollIntervalMs: 0}
	assert.Equal(t, viewport.DefaultPollInterval, cfg.PollInterval())

	cfg.PollIntervalMs = 250
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := setHome(t)

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err, "default config should be written on first load")
	assert.Contains(t, string(data), `"breakpoint": 80`)
}

func TestLoadConfigReadsFile(t *testing.T) {
	dir := setHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte(`{"breakpoint": 120}`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, 120, cfg.Breakpoint)
	// Missing keys keep their defaults.
	assert.True(t, cfg.AltScreen)
	assert.Equal(t, 500, cfg.PollIntervalMs)
}

func TestLoadConfigCorruptFile(t *testing.T) {
	dir := setHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(`{"breakpoint":`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	backups, err := filepath.Glob(configPath + ".corrupt.*")
	require.NoError(t, err)
	assert.Len(t, backups, 1, "corrupt config should be backed up")
}

func TestSaveConfig(t *testing.T) {
	setHome(t)

	cfg := DefaultConfig()
	cfg.Breakpoint = 100
	cfg.AltScreen = false
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, cfg, loaded)
}

func TestFileLock(t *testing.T) {
	dir := setHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))

	lock, err := GetConfigLock()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, lockFileName), lock.path)

	require.NoError(t, lock.Lock())
	assert.True(t, lock.Held())
	assert.Error(t, lock.RLock(), "second acquire on the same FileLock should fail")

	require.NoError(t, lock.Unlock())
	assert.False(t, lock.Held())
	assert.NoError(t, lock.Unlock(), "unlock without a held lock is a no-op")

	require.NoError(t, lock.RLock())
	require.NoError(t, lock.Unlock())
}
