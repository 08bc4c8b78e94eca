package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation limits, size in megabytes
const (
	maxLogSizeMB  = 10
	maxLogBackups = 1
)

// setupLogging points the global logger at path, or discards output when path is empty
// The terminal is owned by the renderer, so logs never go to stdout/stderr
func setupLogging(path, level string) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	if path == "" {
		log.Logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
		return nil, nil
	}

	// Surface permission problems now rather than on the first write
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}

	log.Logger = zerolog.New(lj).With().Timestamp().Logger().Level(lvl)
	log.Info().Str("level", lvl.String()).Msg("logging started")
	return lj, nil
}
