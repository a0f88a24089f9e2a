package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuning_Defaults(t *testing.T) {
	tun, err := LoadTuning("")
	require.NoError(t, err)

	assert.Equal(t, 0, tun.MinStatValue)
	assert.Equal(t, 3, tun.MaxStatValue)
	assert.Equal(t, 4, tun.MaxOnMapActors)
	assert.Equal(t, 3, tun.MaxGenericOptions)
	assert.Equal(t, DefaultTuning(), tun)
}

func TestLoadTuning_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	cfg := `{
		"breakdownChance": 40,
		"maxOnMapActors": 6
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	tun, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 40, tun.BreakdownChance)
	assert.Equal(t, 6, tun.MaxOnMapActors)
	assert.Equal(t, 10, tun.SecretChance, "unset keys keep defaults")
}

func TestLoadTuning_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unhappyTimerBase: 8\n"), 0644))

	tun, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 8, tun.UnhappyTimerBase)
}

func TestLoadTuning_MissingFile(t *testing.T) {
	_, err := LoadTuning("/nonexistent/tuning.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading tuning file")
}

func TestLoadTuning_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"maxStatValue": 0}`), 0644))

	_, err := LoadTuning(path)
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("TURNSIM_SEED", "77")
	t.Setenv("TURNSIM_TURNS", "5")
	t.Setenv("TURNSIM_HUMAN_SIDE", "authority")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(77), s.Seed)
	assert.Equal(t, 5, s.Turns)
	assert.Equal(t, "authority", s.HumanSide)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "data/turnsim.db", s.DBPath)
}

func TestLoadSettings_BadValue(t *testing.T) {
	t.Setenv("TURNSIM_TURNS", "many")
	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}
