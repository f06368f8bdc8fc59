package dto

import "sort"

// Health probe statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse folds registry results into a readiness body. A check
// that returned nil reports "ok"; a failing one reports its error text.
// The second return value lists failing check names in sorted order.
func ToHealthResponse(results map[string]error) (HealthResponse, []string) {
	resp := HealthResponse{
		Status: HealthReady,
		Checks: make(map[string]string, len(results)),
	}
	var failing []string
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			failing = append(failing, name)
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if len(failing) > 0 {
		resp.Status = HealthNotReady
		sort.Strings(failing)
	}
	return resp, failing
}
