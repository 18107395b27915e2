// Package memory is the in-memory MonitorStore. All state is
// process-lifetime and lost on restart; that layout is deliberate.
package memory

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"uptimemonitor/internal/domain"
)

// The map is striped so appends to different URLs never contend: each
// shard is its own RWMutex-guarded map and a URL always hashes to the
// same shard, which makes every per-key operation atomic.
const shardCount = 32

type shard struct {
	mu       sync.RWMutex
	monitors map[string]*domain.Monitor
}

type Store struct {
	shards [shardCount]shard
	lastID atomic.Int64 // last issued unix-ms ID, for same-ms collisions
}

func New() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i].monitors = make(map[string]*domain.Monitor)
	}
	return s
}

func (s *Store) shardFor(url string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(url))
	return &s.shards[h.Sum32()%shardCount]
}

// newID issues a unix-millisecond decimal string, bumped past the last
// issued value so two creations in the same millisecond stay distinct.
func (s *Store) newID() domain.MonitorID {
	for {
		now := time.Now().UnixMilli()
		last := s.lastID.Load()
		if now <= last {
			now = last + 1
		}
		if s.lastID.CompareAndSwap(last, now) {
			return domain.MonitorID(strconv.FormatInt(now, 10))
		}
	}
}

// snapshot deep-copies m so callers never share the live checks slice.
func snapshot(m *domain.Monitor) *domain.Monitor {
	cp := *m
	cp.Checks = make([]domain.CheckResult, len(m.Checks))
	copy(cp.Checks, m.Checks)
	return &cp
}

func (s *Store) Get(ctx context.Context, url string) (*domain.Monitor, error) {
	sh := s.shardFor(url)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	m, ok := sh.monitors[url]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return snapshot(m), nil
}

func (s *Store) List(ctx context.Context) ([]domain.Monitor, error) {
	out := make([]domain.Monitor, 0, 16)
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		for _, m := range sh.monitors {
			out = append(out, *snapshot(m))
		}
		sh.mu.RUnlock()
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, url string) (*domain.Monitor, error) {
	sh := s.shardFor(url)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.monitors[url]; ok {
		return nil, domain.ErrDuplicateURL
	}
	m := &domain.Monitor{
		ID:        s.newID(),
		URL:       url,
		CreatedAt: time.Now().UTC(),
		Checks:    make([]domain.CheckResult, 0, 8),
	}
	sh.monitors[url] = m
	return snapshot(m), nil
}

func (s *Store) Remove(ctx context.Context, url string) error {
	sh := s.shardFor(url)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.monitors[url]; !ok {
		return domain.ErrNotFound
	}
	delete(sh.monitors, url)
	return nil
}

func (s *Store) AppendCheck(ctx context.Context, url string, check domain.CheckResult) (*domain.Monitor, error) {
	sh := s.shardFor(url)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	m, ok := sh.monitors[url]
	if !ok {
		// ad-hoc probe of an unseen URL registers it
		m = &domain.Monitor{
			ID:        s.newID(),
			URL:       url,
			CreatedAt: time.Now().UTC(),
			Checks:    make([]domain.CheckResult, 0, 8),
		}
		sh.monitors[url] = m
	}
	m.Checks = append(m.Checks, check)
	if len(m.Checks) > domain.MaxChecks {
		kept := make([]domain.CheckResult, domain.MaxChecks)
		copy(kept, m.Checks[len(m.Checks)-domain.MaxChecks:])
		m.Checks = kept
	}
	return snapshot(m), nil
}
