// Package config loads cellsnake settings from defaults, an optional TOML
// file, CELLSNAKE_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. CELLSNAKE_TICK=50ms
const EnvPrefix = "CELLSNAKE"

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Backends lists the accepted display backends
var Backends = []string{BackendANSI, BackendTcell}

// Config is the full runtime configuration
type Config struct {
	Backend    string        `mapstructure:"backend"`
	Tick       time.Duration `mapstructure:"tick"`
	Poll       time.Duration `mapstructure:"poll"`
	Blank      uint8         `mapstructure:"blank"`
	Glyph      uint8         `mapstructure:"glyph"`
	Apples     int           `mapstructure:"apples"`
	SpawnEvery uint64        `mapstructure:"spawn_every"`
	Seed       uint64        `mapstructure:"seed"`
	Sound      bool          `mapstructure:"sound"`
	LogFile    string        `mapstructure:"log_file"`
	LogLevel   string        `mapstructure:"log_level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Backend:    BackendANSI,
		Tick:       100 * time.Millisecond,
		Poll:       10 * time.Millisecond,
		Blank:      ' ',
		Glyph:      178,
		Apples:     12,
		SpawnEvery: 20,
		Seed:       0,
		Sound:      false,
		LogFile:    "",
		LogLevel:   "info",
	}
}

// SetDefaults registers every key with its default so env lookup and flag
// binding see the full key set
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("backend", d.Backend)
	v.SetDefault("tick", d.Tick)
	v.SetDefault("poll", d.Poll)
	v.SetDefault("blank", d.Blank)
	v.SetDefault("glyph", d.Glyph)
	v.SetDefault("apples", d.Apples)
	v.SetDefault("spawn_every", d.SpawnEvery)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("sound", d.Sound)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
}

// Load resolves configuration from v; path names an optional TOML file
// Flags must already be bound to v by the caller
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	var (
		cfg      Config
		metadata mapstructure.Metadata
	)
	if err := v.Unmarshal(&cfg, func(c *mapstructure.DecoderConfig) { c.Metadata = &metadata }); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if len(metadata.Unused) > 0 {
		slices.Sort(metadata.Unused)
		return nil, fmt.Errorf("config: unknown keys in %q: %s", path, strings.Join(metadata.Unused, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and cross-field constraints
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Backends, c.Backend) {
		errs = append(errs, fmt.Errorf("backend %q not one of %s", c.Backend, strings.Join(Backends, ", ")))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %s", c.Tick))
	}
	if c.Poll <= 0 {
		errs = append(errs, fmt.Errorf("poll must be positive, got %s", c.Poll))
	}
	if c.Tick > 0 && c.Poll > 0 && c.Poll >= c.Tick {
		errs = append(errs, fmt.Errorf("poll %s must be shorter than tick %s", c.Poll, c.Tick))
	}
	if c.Apples <= 0 {
		errs = append(errs, errors.New("apples must be at least 1"))
	}
	if c.SpawnEvery == 0 {
		errs = append(errs, errors.New("spawn_every must be at least 1"))
	}
	if c.Glyph == c.Blank {
		errs = append(errs, fmt.Errorf("glyph and blank are both %d", c.Glyph))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Keys lists every configuration key
func Keys() []string {
	v := viper.New()
	SetDefaults(v)
	return v.AllKeys()
}
