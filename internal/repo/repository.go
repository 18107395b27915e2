package repo

import (
	"context"

	"uptimemonitor/internal/domain"
)

// MonitorStore is the port the engine and handlers consume — swap in a
// durable adapter later without touching either.
//
// All reads return snapshots: the store copies a monitor (including
// its checks slice) before handing it out, so callers never observe a
// concurrent append mid-flight. List is a best-effort snapshot of the
// whole map, not a linearizable one.
type MonitorStore interface {
	// Get returns domain.ErrNotFound for an untracked URL.
	Get(ctx context.Context, url string) (*domain.Monitor, error)
	List(ctx context.Context) ([]domain.Monitor, error)
	// Create registers a URL with an empty history and a fresh ID.
	// Returns domain.ErrDuplicateURL if the URL is already tracked.
	Create(ctx context.Context, url string) (*domain.Monitor, error)
	// Remove deletes the monitor and its whole history.
	// Returns domain.ErrNotFound for an untracked URL.
	Remove(ctx context.Context, url string) error
	// AppendCheck records a probe outcome, creating the monitor first
	// if the URL is unseen (the documented ad-hoc-probe upsert), and
	// truncates history to the most recent domain.MaxChecks entries.
	// It returns a snapshot of the monitor after the append.
	AppendCheck(ctx context.Context, url string, check domain.CheckResult) (*domain.Monitor, error)
}
