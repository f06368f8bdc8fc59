// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Hunter    HunterConfig    `koanf:"hunter"`
	Scoring   ScoringConfig   `koanf:"scoring"`
	Batch     BatchConfig     `koanf:"batch"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown. In-flight batch reports
	// still running when it expires are cut off.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings.
// A RequestsPerSecond of zero disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// HunterConfig holds domain-search API settings.
type HunterConfig struct {
	APIKey     string `koanf:"api_key"`
	EmailLimit int    `koanf:"email_limit"`
}

// ScoringConfig holds the weights, tier thresholds, and target industries
// used by the scorer.
type ScoringConfig struct {
	Weights    WeightsConfig    `koanf:"weights"`
	Thresholds ThresholdsConfig `koanf:"thresholds"`
	Industries []string         `koanf:"industries"`
}

// WeightsConfig holds the maximum points per scoring signal.
type WeightsConfig struct {
	Employees       float64 `koanf:"employees"`
	EmailConfidence float64 `koanf:"email_confidence"`
	Industry        float64 `koanf:"industry"`
	EmailsFound     float64 `koanf:"emails_found"`
	KeyContacts     float64 `koanf:"key_contacts"`
}

// ThresholdsConfig holds the tier cut points.
type ThresholdsConfig struct {
	Medium float64 `koanf:"medium"`
	High   float64 `koanf:"high"`
}

// BatchConfig holds batch scoring limits.
type BatchConfig struct {
	MaxDomains int `koanf:"max_domains"`
	TopN       int `koanf:"top_n"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
