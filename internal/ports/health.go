package ports

import "context"

// HealthChecker reports whether a dependency of the scorer can serve
// traffic. The Hunter client is the one registered today.
type HealthChecker interface {
	// Name keys the check in readiness output, e.g. "hunter-api".
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checks for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
