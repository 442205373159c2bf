// Package config loads the collector configuration from a YAML file with
// environment variable expansion.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jorik41/entsoe-collector/internal/area"
)

// Config holds all configuration for the collector.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Collector CollectorConfig `mapstructure:"collector"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// APIConfig configures access to the transparency platform.
type APIConfig struct {
	Key          string        `mapstructure:"key"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
	Endpoints    []string      `mapstructure:"endpoints"`
}

// CollectorConfig selects the area and the datasets collected for it. The
// *_europe switches add Total-Europe aggregate targets next to the primary
// area.
type CollectorConfig struct {
	Area string `mapstructure:"area"`

	Prices             bool `mapstructure:"prices"`
	Generation         bool `mapstructure:"generation"`
	Load               bool `mapstructure:"load"`
	GenerationForecast bool `mapstructure:"generation_forecast"`
	WindSolarForecast  bool `mapstructure:"wind_solar_forecast"`
	LoadWeekAhead      bool `mapstructure:"load_week_ahead"`
	LoadMonthAhead     bool `mapstructure:"load_month_ahead"`
	LoadYearAhead      bool `mapstructure:"load_year_ahead"`

	GenerationEurope         bool `mapstructure:"generation_europe"`
	LoadEurope               bool `mapstructure:"load_europe"`
	GenerationForecastEurope bool `mapstructure:"generation_forecast_europe"`
	WindSolarForecastEurope  bool `mapstructure:"wind_solar_forecast_europe"`
	LoadWeekAheadEurope      bool `mapstructure:"load_week_ahead_europe"`
	LoadMonthAheadEurope     bool `mapstructure:"load_month_ahead_europe"`
	LoadYearAheadEurope      bool `mapstructure:"load_year_ahead_europe"`
}

type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	RateLimit      float64       `mapstructure:"rate_limit"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
	CacheSize      int           `mapstructure:"cache_size"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. $VAR
// references anywhere in the file are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Round-trip through a plain map so expansion sees normalized YAML.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	normalized, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}

	expanded := os.ExpandEnv(string(normalized))

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	applyLegacyKeys(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.request_delay", time.Second)

	v.SetDefault("collector.prices", true)
	v.SetDefault("collector.generation", true)
	v.SetDefault("collector.load", true)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.rate_limit_burst", 10)
	v.SetDefault("server.cache_size", 1000)
	v.SetDefault("server.cache_ttl", time.Minute)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// applyLegacyKeys maps switches from older releases onto their current
// names. An explicitly set current name wins.
func applyLegacyKeys(v *viper.Viper) {
	legacy := map[string]string{
		"collector.enable_generation_total_europe": "collector.generation_europe",
		"collector.enable_load_total_europe":       "collector.load_europe",
	}
	for old, current := range legacy {
		if v.IsSet(old) && !v.IsSet(current) {
			v.Set(current, v.GetBool(old))
		}
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.Key) == "" {
		return errors.New("api.key is required")
	}
	if c.Collector.Area == "" {
		return errors.New("collector.area is required")
	}
	if !area.HasCode(c.Collector.Area) {
		return fmt.Errorf("unknown area %q", c.Collector.Area)
	}

	resolved, err := area.Resolve(c.Collector.Area)
	if err != nil {
		return err
	}
	if resolved.IsTotalEurope() {
		if c.Collector.Prices {
			return errors.New("prices cannot be collected for TOTAL_EUROPE; set collector.prices to false")
		}
		if c.Collector.anyEuropeFlag() {
			return errors.New("total-europe switches are redundant when collector.area is TOTAL_EUROPE")
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	return nil
}

func (c CollectorConfig) anyEuropeFlag() bool {
	return c.GenerationEurope ||
		c.LoadEurope ||
		c.GenerationForecastEurope ||
		c.WindSolarForecastEurope ||
		c.LoadWeekAheadEurope ||
		c.LoadMonthAheadEurope ||
		c.LoadYearAheadEurope
}
