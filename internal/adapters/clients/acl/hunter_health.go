package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name used by the underlying
// [httpclient.Client] for tracing and metrics.
func (c *HunterClient) Name() string {
	return HunterServiceName
}

// HealthCheck reports the domain-search API's availability based on the
// circuit breaker state. No network call is made, so probes never spend
// request quota.
//
// State mapping:
//   - "closed"    -- API is operating normally; returns nil.
//   - "half-open" -- breaker is probing recovery; returns a degraded error.
//   - "open"      -- API is failing and calls are rejected; returns a
//     failing error.
func (c *HunterClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", HunterServiceName)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", HunterServiceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", HunterServiceName, state)
	}
}
