package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	restoreLogger(t)

	closer, err := setupLogging("", "info")
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.Equal(t, zerolog.Disabled, log.Logger.GetLevel())
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "logs", "cellsnake.log")

	closer, err := setupLogging(path, "debug")
	require.NoError(t, err)
	require.NotNil(t, closer)

	log.Debug().Msg("test log message")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "test log message"))
}

func TestSetupLogging_LevelFilters(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "cellsnake.log")

	closer, err := setupLogging(path, "warn")
	require.NoError(t, err)
	log.Info().Msg("filtered out")
	log.Warn().Msg("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "filtered out")
	assert.Contains(t, string(data), "kept")
}

func TestSetupLogging_Rotation(t *testing.T) {
	restoreLogger(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "cellsnake.log")
	limit := int64(maxLogSizeMB * 1024 * 1024)

	// Already at the limit, the first write must rotate
	require.NoError(t, os.WriteFile(path, make([]byte, limit), 0o644))

	closer, err := setupLogging(path, "info")
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups []string
	for _, e := range entries {
		if e.Name() != "cellsnake.log" {
			backups = append(backups, e.Name())
		}
	}
	require.Len(t, backups, 1, "expected one rotated backup")
	assert.True(t, strings.HasPrefix(backups[0], "cellsnake-"))

	rotated, err := os.Stat(filepath.Join(dir, backups[0]))
	require.NoError(t, err)
	assert.Equal(t, limit, rotated.Size())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), limit)
}

func TestSetupLogging_BadLevel(t *testing.T) {
	restoreLogger(t)
	_, err := setupLogging("", "loud")
	assert.Error(t, err)
}
