// Package config loads dotori settings from an optional YAML file and
// DOTORI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"

	"github.com/alexanderramin/dotori/internal/insight"
	"github.com/alexanderramin/dotori/internal/logger"
	"github.com/alexanderramin/dotori/internal/nba"
)

// EnvPrefix prefixes every environment override, e.g. DOTORI_LOG_LEVEL.
const EnvPrefix = "DOTORI"

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Clock    ClockConfig    `mapstructure:"clock"`
	Output   OutputConfig   `mapstructure:"output"`
	Context  ContextConfig  `mapstructure:"context"`
	NBA      NBAConfig      `mapstructure:"nba"`
	Insights InsightsConfig `mapstructure:"insights"`

	loc *time.Location
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ClockConfig sets the zone month-gated rules and ages are computed in.
type ClockConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  string `mapstructure:"color"`
}

type ContextConfig struct {
	MaxFacilityIDs int `mapstructure:"max_facility_ids"`
}

type NBAConfig struct {
	MaxActions int `mapstructure:"max_actions"`
}

type InsightsConfig struct {
	Max int `mapstructure:"max"`
}

var (
	outputFormats = []string{"text", "json"}
	colorModes    = []string{"auto", "always", "never"}
)

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Decoding defaults into a fresh struct cannot fail.
	_ = v.Unmarshal(&cfg)
	cfg.loc, _ = time.LoadLocation(cfg.Clock.Timezone)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetDefault("clock.timezone", "Asia/Seoul")

	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", "auto")

	v.SetDefault("context.max_facility_ids", 15)
	v.SetDefault("nba.max_actions", nba.DefaultMaxActions)
	v.SetDefault("insights.max", insight.DefaultMaxInsights)
}

// Load reads configPath, or dotori.yaml from the working directory and
// $HOME/.dotori when configPath is empty, then applies environment
// overrides. A missing default file is not an error; a missing explicit
// file is.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dotori")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".dotori"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings and limits and resolves the clock
// zone.
func (c *Config) Validate() error {
	var errs []error
	check := func(key, val string, allowed []string) {
		if !slices.Contains(allowed, val) {
			errs = append(errs, fmt.Errorf("%s: %q is not one of %s", key, val, strings.Join(allowed, ", ")))
		}
	}
	check("log.level", c.Log.Level, logger.Levels)
	check("log.format", c.Log.Format, logger.Formats)
	check("output.format", c.Output.Format, outputFormats)
	check("output.color", c.Output.Color, colorModes)

	positive := func(key string, n int) {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("%s: must be positive, got %d", key, n))
		}
	}
	atMost := func(key string, n, limit int) {
		if n > limit {
			errs = append(errs, fmt.Errorf("%s: must be at most %d, got %d", key, limit, n))
		}
	}
	positive("context.max_facility_ids", c.Context.MaxFacilityIDs)
	positive("nba.max_actions", c.NBA.MaxActions)
	atMost("nba.max_actions", c.NBA.MaxActions, nba.DefaultMaxActions)
	positive("insights.max", c.Insights.Max)
	atMost("insights.max", c.Insights.Max, insight.DefaultMaxInsights)

	loc, err := time.LoadLocation(c.Clock.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("clock.timezone: %w", err))
	} else {
		c.loc = loc
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Location returns the configured clock zone, falling back to UTC when
// the config has not been validated.
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Now returns the current time in the configured zone.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location())
}
