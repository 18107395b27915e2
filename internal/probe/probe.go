package probe

import "context"

// CheckResult is the raw outcome of a single probe, before the engine
// classifies it into a stored check.
//
// StatusCode is the HTTP status when a response arrived; 0 for
// transport, timeout or DNS faults. Message carries the failure cause
// in that case and is empty otherwise.
type CheckResult struct {
	Success    bool
	StatusCode int
	LatencyMS  float64
	Message    string
}

// Checker performs a single liveness check of a target URL. It must
// assume the target was pre-validated as an http(s) URL and must never
// return network-level problems as anything but a failed CheckResult.
type Checker interface {
	Check(ctx context.Context, target string) CheckResult
}
