package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string   `mapstructure:"PORT"`
	Env                string   `mapstructure:"ENV"`
	FixturesDir        string   `mapstructure:"FIXTURES_DIR"`
	SimulatedLatencyMS int      `mapstructure:"SIMULATED_LATENCY_MS"`
	RequestTimeoutMS   int      `mapstructure:"REQUEST_TIMEOUT_MS"`
	CORSOrigins        []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS       float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst     int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("FIXTURES_DIR", "./fixtures")
	v.SetDefault("SIMULATED_LATENCY_MS", 0)
	v.SetDefault("REQUEST_TIMEOUT_MS", 30000)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("FIXTURES_DIR")
	v.BindEnv("SIMULATED_LATENCY_MS")
	v.BindEnv("REQUEST_TIMEOUT_MS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SimulatedLatency returns the artificial per-operation delay applied by the
// in-memory repositories.
func (c *Config) SimulatedLatency() time.Duration {
	return time.Duration(c.SimulatedLatencyMS) * time.Millisecond
}

// RequestTimeout returns the per-request deadline enforced at the HTTP edge.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// Validate checks that the configuration is safe to run with.
func (c *Config) Validate() error {
	if c.SimulatedLatencyMS < 0 {
		return fmt.Errorf("SIMULATED_LATENCY_MS must not be negative, got %d", c.SimulatedLatencyMS)
	}
	if c.RequestTimeoutMS <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_MS must be positive, got %d", c.RequestTimeoutMS)
	}
	if c.FixturesDir == "" {
		return fmt.Errorf("FIXTURES_DIR must not be empty")
	}
	return nil
}
