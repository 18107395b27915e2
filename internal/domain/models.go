package domain

import (
	"math"
	"net/url"
	"time"
)

// MaxChecks bounds a monitor's retained history. Once exceeded, the
// oldest entries are dropped, not archived.
const MaxChecks = 100

const (
	StatusUp   = "up"
	StatusDown = "down"
)

type MonitorID string

// Monitor is one tracked endpoint: its URL (the unique key), creation
// metadata and the bounded, oldest-first check history. Checks is the
// only field that changes after creation.
type Monitor struct {
	ID        MonitorID     `json:"id"`
	URL       string        `json:"url"`
	CreatedAt time.Time     `json:"created_at"`
	Checks    []CheckResult `json:"checks"`
}

// CheckResult is one probe outcome. StatusCode is nil when the probe
// failed before receiving an HTTP response (timeout, connection or DNS
// failure); Error is set only in that case.
type CheckResult struct {
	Status         string    `json:"status"`
	StatusCode     *int      `json:"status_code"` // pointer to allow nil
	ResponseTimeMS float64   `json:"response_time"`
	CheckedAt      time.Time `json:"last_checked"`
	Error          string    `json:"error,omitempty"`
}

// Up reports whether the check was classified up.
func (c CheckResult) Up() bool { return c.Status == StatusUp }

// LastCheck returns the most recent check, or nil for an empty history.
func (m *Monitor) LastCheck() *CheckResult {
	if len(m.Checks) == 0 {
		return nil
	}
	return &m.Checks[len(m.Checks)-1]
}

// UptimePercentage is the fraction of retained checks classified up,
// as a percentage rounded to 2 decimals. Empty history yields 0.0.
// It is always derived from Checks; there is no running counter.
func (m *Monitor) UptimePercentage() float64 {
	if len(m.Checks) == 0 {
		return 0.0
	}
	up := 0
	for _, c := range m.Checks {
		if c.Up() {
			up++
		}
	}
	return Round2(100 * float64(up) / float64(len(m.Checks)))
}

// Round2 rounds to 2 decimal places, the precision used for latency
// and percentage values throughout the API.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidHTTPURL reports whether raw is an http:// or https:// URL with
// a host. Probe and registration targets must already pass this.
func ValidHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
