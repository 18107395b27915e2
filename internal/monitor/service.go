// Package monitor is the check engine and aggregation core: it runs
// probes, classifies their outcomes into stored checks, and derives
// uptime statistics from the store. Probe failures are observations,
// not engine faults — a down endpoint is the very thing being
// monitored, so it is returned as data, never as an error.
package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"uptimemonitor/internal/domain"
	"uptimemonitor/internal/probe"
	"uptimemonitor/internal/repo"
)

const DefaultHistoryLimit = 50

type Service struct {
	logger  *zap.Logger
	store   repo.MonitorStore
	checker probe.Checker
}

func NewService(logger *zap.Logger, store repo.MonitorStore, checker probe.Checker) *Service {
	return &Service{logger: logger, store: store, checker: checker}
}

// Snapshot is the per-monitor view returned by probe and list calls.
type Snapshot struct {
	URL              string    `json:"url"`
	Status           string    `json:"status"`
	ResponseTimeMS   float64   `json:"response_time"`
	StatusCode       *int      `json:"status_code"`
	LastChecked      time.Time `json:"last_checked"`
	UptimePercentage float64   `json:"uptime_percentage"`
}

// AddReceipt is returned once when a monitor is registered.
type AddReceipt struct {
	ID              domain.MonitorID `json:"id"`
	URL             string           `json:"url"`
	Uptime          float64          `json:"uptime"`
	TotalChecks     int              `json:"totalChecks"`
	AvgResponseTime float64          `json:"avgResponseTime"`
	LastCheck       LastCheck        `json:"lastCheck"`
	IsActive        bool             `json:"isActive"`
}

type LastCheck struct {
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
	ResponseTimeMS float64   `json:"responseTime"`
}

// History is the bounded check log of one monitor.
type History struct {
	URL              string               `json:"url"`
	Checks           []domain.CheckResult `json:"checks"`
	TotalChecks      int                  `json:"total_checks"`
	UptimePercentage float64              `json:"uptime_percentage"`
}

// FleetEntry is one monitor's line in the fleet summary. Error is set
// only for down entries that failed without an HTTP response.
type FleetEntry struct {
	URL            string    `json:"url"`
	Status         string    `json:"status"`
	ResponseTimeMS float64   `json:"response_time"`
	LastChecked    time.Time `json:"last_checked"`
	Error          string    `json:"error,omitempty"`
}

// FleetStats aggregates every monitor by its most recent check. A
// monitor with no checks yet counts toward TotalMonitors only.
type FleetStats struct {
	TotalMonitors int          `json:"total_monitors"`
	UpMonitors    int          `json:"up_monitors"`
	DownMonitors  int          `json:"down_monitors"`
	OverallUptime float64      `json:"overall_uptime"`
	UpURLs        []FleetEntry `json:"up_urls"`
	DownURLs      []FleetEntry `json:"down_urls"`
}

// classify turns a raw probe outcome into a stored check. StatusCode 0
// means the probe never got an HTTP response.
func classify(out probe.CheckResult) domain.CheckResult {
	cr := domain.CheckResult{
		Status:         domain.StatusDown,
		ResponseTimeMS: domain.Round2(out.LatencyMS),
		CheckedAt:      time.Now().UTC(),
	}
	if out.StatusCode == 0 {
		cr.Error = out.Message
		return cr
	}
	code := out.StatusCode
	cr.StatusCode = &code
	if out.Success {
		cr.Status = domain.StatusUp
	}
	return cr
}

// runCheck probes url and records the outcome, registering the URL if
// it is unseen. The caller must have validated url already.
func (s *Service) runCheck(ctx context.Context, url string) (domain.CheckResult, *domain.Monitor, error) {
	out := s.checker.Check(ctx, url)
	cr := classify(out)
	observeProbe(cr)

	fields := []zap.Field{
		zap.String("url", url),
		zap.Bool("up", cr.Up()),
		zap.Float64("latency_ms", cr.ResponseTimeMS),
		zap.Int("status", out.StatusCode),
	}
	if cr.Error != "" {
		dns := probe.DiagnoseDNS(ctx, probe.HostOf(url))
		fields = append(fields,
			zap.String("error", cr.Error),
			zap.String("dns_class", dns.Class),
		)
	}
	s.logger.Info("checked", fields...)

	m, err := s.store.AppendCheck(ctx, url, cr)
	if err != nil {
		return domain.CheckResult{}, nil, err
	}
	return cr, m, nil
}

// Probe checks url once and records the result, implicitly registering
// an unseen URL. It fails only on the domain.ErrInvalidURL
// precondition; network-level problems come back as a down Snapshot.
func (s *Service) Probe(ctx context.Context, url string) (*Snapshot, error) {
	if !domain.ValidHTTPURL(url) {
		return nil, domain.ErrInvalidURL
	}
	cr, m, err := s.runCheck(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		URL:              url,
		Status:           cr.Status,
		ResponseTimeMS:   cr.ResponseTimeMS,
		StatusCode:       cr.StatusCode,
		LastChecked:      cr.CheckedAt,
		UptimePercentage: m.UptimePercentage(),
	}, nil
}

// Add registers url and runs its first check. Duplicates are rejected,
// never overwritten.
func (s *Service) Add(ctx context.Context, url string) (*AddReceipt, error) {
	if !domain.ValidHTTPURL(url) {
		return nil, domain.ErrInvalidURL
	}
	created, err := s.store.Create(ctx, url)
	if err != nil {
		return nil, err
	}

	cr, m, err := s.runCheck(ctx, url)
	if err != nil {
		return nil, err
	}
	return &AddReceipt{
		ID:              created.ID,
		URL:             url,
		Uptime:          m.UptimePercentage(),
		TotalChecks:     len(m.Checks),
		AvgResponseTime: cr.ResponseTimeMS,
		LastCheck: LastCheck{
			Timestamp:      cr.CheckedAt,
			Status:         cr.Status,
			ResponseTimeMS: cr.ResponseTimeMS,
		},
		IsActive: true,
	}, nil
}

// Remove deletes a monitor and its entire history.
func (s *Service) Remove(ctx context.Context, url string) error {
	if err := s.store.Remove(ctx, url); err != nil {
		return err
	}
	s.logger.Info("removed", zap.String("url", url))
	return nil
}

// History returns a monitor's most recent limit checks in oldest-first
// order, with the total count and uptime over the full retained
// history. limit defaults to DefaultHistoryLimit.
func (s *Service) History(ctx context.Context, url string, limit int) (*History, error) {
	m, err := s.store.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	checks := m.Checks
	if len(checks) > limit {
		checks = checks[len(checks)-limit:]
	}
	return &History{
		URL:              url,
		Checks:           checks,
		TotalChecks:      len(m.Checks),
		UptimePercentage: m.UptimePercentage(),
	}, nil
}

// List summarizes every monitor that has at least one recorded check.
// It reads stored state only; nothing is probed.
func (s *Service) List(ctx context.Context) ([]Snapshot, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Snapshot, 0, len(all))
	for i := range all {
		m := &all[i]
		lc := m.LastCheck()
		if lc == nil {
			continue
		}
		out = append(out, Snapshot{
			URL:              m.URL,
			Status:           lc.Status,
			ResponseTimeMS:   lc.ResponseTimeMS,
			StatusCode:       lc.StatusCode,
			LastChecked:      lc.CheckedAt,
			UptimePercentage: m.UptimePercentage(),
		})
	}
	return out, nil
}

// Fleet classifies every monitor by its latest check and computes the
// fleet-wide uptime ratio. Reads stored state only.
func (s *Service) Fleet(ctx context.Context) (*FleetStats, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &FleetStats{
		TotalMonitors: len(all),
		UpURLs:        []FleetEntry{},
		DownURLs:      []FleetEntry{},
	}
	for i := range all {
		m := &all[i]
		lc := m.LastCheck()
		if lc == nil {
			continue
		}
		entry := FleetEntry{
			URL:            m.URL,
			Status:         lc.Status,
			ResponseTimeMS: lc.ResponseTimeMS,
			LastChecked:    lc.CheckedAt,
		}
		if lc.Up() {
			stats.UpMonitors++
			stats.UpURLs = append(stats.UpURLs, entry)
		} else {
			stats.DownMonitors++
			entry.Error = lc.Error
			stats.DownURLs = append(stats.DownURLs, entry)
		}
	}
	if stats.TotalMonitors > 0 {
		stats.OverallUptime = domain.Round2(100 * float64(stats.UpMonitors) / float64(stats.TotalMonitors))
	}
	return stats, nil
}
