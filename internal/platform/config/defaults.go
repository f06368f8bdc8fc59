package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	// The free domain-search plan tolerates roughly one call per 1.1s.
	defaultRateLimitRPS   = 0.9
	defaultRateLimitBurst = 1

	defaultHunterEmailLimit = 10

	defaultWeightEmployees       = 30.0
	defaultWeightEmailConfidence = 30.0
	defaultWeightIndustry        = 20.0
	defaultWeightEmailsFound     = 10.0
	defaultWeightKeyContacts     = 10.0
	defaultThresholdMedium       = 40.0
	defaultThresholdHigh         = 70.0

	defaultBatchMaxDomains = 500
	defaultBatchTopN       = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10m",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "https://api.hunter.io",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "500ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"hunter.api_key":     "",
		"hunter.email_limit": defaultHunterEmailLimit,

		"scoring.weights.employees":        defaultWeightEmployees,
		"scoring.weights.email_confidence": defaultWeightEmailConfidence,
		"scoring.weights.industry":         defaultWeightIndustry,
		"scoring.weights.emails_found":     defaultWeightEmailsFound,
		"scoring.weights.key_contacts":     defaultWeightKeyContacts,
		"scoring.thresholds.medium":        defaultThresholdMedium,
		"scoring.thresholds.high":          defaultThresholdHigh,
		"scoring.industries":               []string{"software", "technology", "saas", "fintech", "internet"},

		"batch.max_domains": defaultBatchMaxDomains,
		"batch.top_n":       defaultBatchTopN,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "startup-scorer",
	}
}
