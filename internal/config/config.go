package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Audit   AuditConfig   `mapstructure:"audit"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// EngineConfig contains the validation rule thresholds. Defaults encode the
// JTR-derived limits; they are configurable so policy updates do not require
// a rebuild.
type EngineConfig struct {
	TLENightsPerLegLimit   int     `mapstructure:"tle_nights_per_leg_limit"`
	TLENightsTotalLimit    int     `mapstructure:"tle_nights_total_limit"`
	StaleOrdersMonths      int     `mapstructure:"stale_orders_months"`
	MaxTravelDays          int     `mapstructure:"max_travel_days"`
	MaxOrdersToDepartDays  int     `mapstructure:"max_orders_to_depart_days"`
	PerDiemToleranceDays   int     `mapstructure:"per_diem_tolerance_days"`
	PerDiemBufferDays      int     `mapstructure:"per_diem_buffer_days"`
	DistanceTolerancePct   float64 `mapstructure:"distance_tolerance_pct"`
	MaxEnlistedDependents  int     `mapstructure:"max_enlisted_dependents"`
	DefaultWeightAllowance int     `mapstructure:"default_weight_allowance"`
}

// ScoringConfig contains confidence score weights and level cutoffs
type ScoringConfig struct {
	ErrorPenalty       int `mapstructure:"error_penalty"`
	WarningPenalty     int `mapstructure:"warning_penalty"`
	ExcellentThreshold int `mapstructure:"excellent_threshold"`
	GoodThreshold      int `mapstructure:"good_threshold"`
	FairThreshold      int `mapstructure:"fair_threshold"`
	DetailThreshold    int `mapstructure:"detail_threshold"`
}

// AuditConfig contains audit trail settings
type AuditConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Capacity int  `mapstructure:"capacity"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Default returns the built-in configuration. The engine and scoring numbers
// are the published JTR limits and must not drift without a policy review.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Engine: EngineConfig{
			TLENightsPerLegLimit:   10,
			TLENightsTotalLimit:    20,
			StaleOrdersMonths:      6,
			MaxTravelDays:          30,
			MaxOrdersToDepartDays:  90,
			PerDiemToleranceDays:   1,
			PerDiemBufferDays:      2,
			DistanceTolerancePct:   10,
			MaxEnlistedDependents:  6,
			DefaultWeightAllowance: 5000,
		},
		Scoring: ScoringConfig{
			ErrorPenalty:       20,
			WarningPenalty:     5,
			ExcellentThreshold: 90,
			GoodThreshold:      70,
			FairThreshold:      50,
			DetailThreshold:    70,
		},
		Audit: AuditConfig{
			Enabled:  true,
			Capacity: 1000,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Load reads configuration from config.yaml (optional) and CLAIM_ENGINE_*
// environment variables layered over the defaults.
func Load() (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("engine.tle_nights_per_leg_limit", defaults.Engine.TLENightsPerLegLimit)
	v.SetDefault("engine.tle_nights_total_limit", defaults.Engine.TLENightsTotalLimit)
	v.SetDefault("engine.stale_orders_months", defaults.Engine.StaleOrdersMonths)
	v.SetDefault("engine.max_travel_days", defaults.Engine.MaxTravelDays)
	v.SetDefault("engine.max_orders_to_depart_days", defaults.Engine.MaxOrdersToDepartDays)
	v.SetDefault("engine.per_diem_tolerance_days", defaults.Engine.PerDiemToleranceDays)
	v.SetDefault("engine.per_diem_buffer_days", defaults.Engine.PerDiemBufferDays)
	v.SetDefault("engine.distance_tolerance_pct", defaults.Engine.DistanceTolerancePct)
	v.SetDefault("engine.max_enlisted_dependents", defaults.Engine.MaxEnlistedDependents)
	v.SetDefault("engine.default_weight_allowance", defaults.Engine.DefaultWeightAllowance)
	v.SetDefault("scoring.error_penalty", defaults.Scoring.ErrorPenalty)
	v.SetDefault("scoring.warning_penalty", defaults.Scoring.WarningPenalty)
	v.SetDefault("scoring.excellent_threshold", defaults.Scoring.ExcellentThreshold)
	v.SetDefault("scoring.good_threshold", defaults.Scoring.GoodThreshold)
	v.SetDefault("scoring.fair_threshold", defaults.Scoring.FairThreshold)
	v.SetDefault("scoring.detail_threshold", defaults.Scoring.DetailThreshold)
	v.SetDefault("audit.enabled", defaults.Audit.Enabled)
	v.SetDefault("audit.capacity", defaults.Audit.Capacity)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.development", defaults.Logging.Development)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/claim-engine")

	v.SetEnvPrefix("CLAIM_ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Engine.TLENightsPerLegLimit <= 0 {
		return fmt.Errorf("tle_nights_per_leg_limit must be positive")
	}
	if c.Engine.TLENightsTotalLimit < c.Engine.TLENightsPerLegLimit {
		return fmt.Errorf("tle_nights_total_limit must be at least the per-leg limit")
	}
	if c.Scoring.ErrorPenalty < c.Scoring.WarningPenalty {
		return fmt.Errorf("error_penalty must be at least warning_penalty")
	}
	if c.Scoring.ExcellentThreshold <= c.Scoring.GoodThreshold ||
		c.Scoring.GoodThreshold <= c.Scoring.FairThreshold {
		return fmt.Errorf("score thresholds must be strictly decreasing")
	}
	if c.Audit.Capacity <= 0 {
		return fmt.Errorf("audit capacity must be positive")
	}
	return nil
}
