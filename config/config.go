// Package config loads fxroute settings from an optional YAML file, a .env
// file and FXROUTE_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. FXROUTE_LOG_LEVEL.
const EnvPrefix = "FXROUTE"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log selects the logrus level and formatter ("text" or "json").
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Cache controls the route cache of a converter.
type Cache struct {
	Enabled  bool  `mapstructure:"enabled"`
	MaxItems int64 `mapstructure:"max_items"`
}

// Search bounds route searches; MaxHops 0 means unlimited.
type Search struct {
	MaxHops int `mapstructure:"max_hops"`
}

// Rates points at the YAML rate table.
type Rates struct {
	File string `mapstructure:"file"`
}

// Config is the full set of fxroute settings.
type Config struct {
	Log    Log    `mapstructure:"log"`
	Cache  Cache  `mapstructure:"cache"`
	Search Search `mapstructure:"search"`
	Rates  Rates  `mapstructure:"rates"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: "text"},
		Cache:  Cache{Enabled: false, MaxItems: 1024},
		Search: Search{MaxHops: 0},
	}
}

// Load reads path (if non-empty) and the environment into a Config.
//
// A .env file in the working directory is loaded first when present; its
// absence is not an error. Environment keys replace dots with underscores:
// cache.max_items ⇒ FXROUTE_CACHE_MAX_ITEMS.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Cache.Enabled && c.Cache.MaxItems <= 0 {
		return fmt.Errorf("%w: cache.max_items must be positive, got %d", ErrInvalidConfig, c.Cache.MaxItems)
	}
	if c.Search.MaxHops < 0 {
		return fmt.Errorf("%w: search.max_hops cannot be negative, got %d", ErrInvalidConfig, c.Search.MaxHops)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.max_items", d.Cache.MaxItems)
	v.SetDefault("search.max_hops", d.Search.MaxHops)
	v.SetDefault("rates.file", d.Rates.File)
}
