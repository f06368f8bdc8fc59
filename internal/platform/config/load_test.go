package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/startup-scorer/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 0 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 0 for local", cfg.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_HUNTER_API_KEY", "prod-key")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Hunter.APIKey != "prod-key" {
		t.Errorf("Hunter.APIKey = %q, want \"prod-key\" (env)", cfg.Hunter.APIKey)
	}
}

func TestLoad_ProdProfileRequiresAPIKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_HUNTER_API_KEY", "")

	_, err := config.Load("prod")
	if err == nil {
		t.Fatal("Load(\"prod\") returned nil error, want missing api key error")
	}
	if !strings.Contains(err.Error(), "hunter.api_key") {
		t.Errorf("error = %q, want mention of hunter.api_key", err)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 1 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 1 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
	if cfg.Scoring.Thresholds.High != 70 {
		t.Errorf("Scoring.Thresholds.High = %v, want 70 (from base)", cfg.Scoring.Thresholds.High)
	}
	if len(cfg.Scoring.Industries) != 5 {
		t.Errorf("len(Scoring.Industries) = %d, want 5 (from base)", len(cfg.Scoring.Industries))
	}
	if cfg.Batch.TopN != 10 {
		t.Errorf("Batch.TopN = %d, want 10 (from base)", cfg.Batch.TopN)
	}
}

func TestLoad_DefaultsFillMissingBaseKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "server:\n  port: 9000\n")
	writeFile(t, dir, "local.yaml", "hunter:\n  api_key: k\n")

	cfg, err := config.Load("local", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Client.BaseURL != "https://api.hunter.io" {
		t.Errorf("Client.BaseURL = %q, want default", cfg.Client.BaseURL)
	}
	if cfg.Hunter.EmailLimit != 10 {
		t.Errorf("Hunter.EmailLimit = %d, want 10 (default)", cfg.Hunter.EmailLimit)
	}
	if cfg.Scoring.Weights.Employees != 30 {
		t.Errorf("Scoring.Weights.Employees = %v, want 30 (default)", cfg.Scoring.Weights.Employees)
	}
	if cfg.Client.RateLimit.BurstSize != 1 {
		t.Errorf("Client.RateLimit.BurstSize = %d, want 1 (default)", cfg.Client.RateLimit.BurstSize)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("APP_SCORING_THRESHOLDS_HIGH", "80")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Scoring.Thresholds.High != 80 {
		t.Errorf("Scoring.Thresholds.High = %v, want 80 (env override)", cfg.Scoring.Thresholds.High)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}
