package probe

import (
	"context"
	"net/http"
	"time"
)

// DefaultTimeout caps the whole request: connect + redirects + read.
const DefaultTimeout = 10 * time.Second

type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

// Check issues a single GET. A status code below 400 is a success;
// anything else, including any transport fault, is a failure. Latency
// is measured on both paths.
func (h *HTTPChecker) Check(ctx context.Context, target string) CheckResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return CheckResult{Success: false, Message: err.Error(), LatencyMS: time.Since(start).Seconds() * 1000}
	}

	resp, err := h.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		return CheckResult{Success: false, Message: err.Error(), LatencyMS: latency}
	}
	defer resp.Body.Close()

	return CheckResult{
		Success:    resp.StatusCode < 400,
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
	}
}
