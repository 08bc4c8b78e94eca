package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cellsnake.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeTOML(t, `
backend = "tcell"
tick = "50ms"
poll = "5ms"
glyph = 35
apples = 3
spawn_every = 7
seed = 99
sound = true
log_level = "debug"
`)
	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, BackendTcell, cfg.Backend)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick)
	assert.Equal(t, 5*time.Millisecond, cfg.Poll)
	assert.Equal(t, uint8('#'), cfg.Glyph)
	assert.Equal(t, uint8(' '), cfg.Blank, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Apples)
	assert.Equal(t, uint64(7), cfg.SpawnEvery)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.Sound)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeTOML(t, `apples = 3`)
	t.Setenv("CELLSNAKE_APPLES", "5")
	t.Setenv("CELLSNAKE_SPAWN_EVERY", "9")
	t.Setenv("CELLSNAKE_TICK", "200ms")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Apples)
	assert.Equal(t, uint64(9), cfg.SpawnEvery)
	assert.Equal(t, 200*time.Millisecond, cfg.Tick)
}

func TestFlagOverridesEnv(t *testing.T) {
	t.Setenv("CELLSNAKE_BACKEND", "tcell")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("backend", BackendANSI, "")
	require.NoError(t, fs.Parse([]string{"--backend=ansi"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag("backend", fs.Lookup("backend")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, BackendANSI, cfg.Backend)
}

func TestUnchangedFlagDoesNotMaskEnv(t *testing.T) {
	t.Setenv("CELLSNAKE_BACKEND", "tcell")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("backend", BackendANSI, "")
	require.NoError(t, fs.Parse(nil))

	v := viper.New()
	require.NoError(t, v.BindPFlag("backend", fs.Lookup("backend")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, BackendTcell, cfg.Backend)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeTOML(t, `colour = "red"`)
	_, err := Load(viper.New(), path)
	assert.ErrorContains(t, err, "unknown keys")
	assert.ErrorContains(t, err, "colour")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"unknown backend", func(c *Config) { c.Backend = "sdl" }, "backend"},
		{"zero tick", func(c *Config) { c.Tick = 0 }, "tick must be positive"},
		{"negative poll", func(c *Config) { c.Poll = -time.Millisecond }, "poll must be positive"},
		{"poll not shorter", func(c *Config) { c.Poll = c.Tick }, "must be shorter than tick"},
		{"no apples", func(c *Config) { c.Apples = 0 }, "apples"},
		{"no spawn period", func(c *Config) { c.SpawnEvery = 0 }, "spawn_every"},
		{"glyph equals blank", func(c *Config) { c.Glyph = c.Blank }, "glyph and blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 11)
	assert.Contains(t, keys, "spawn_every")
	assert.Contains(t, keys, "log_level")
}
