package image

import (
	"context"
	"sync"
	"time"
)

// Snapshot is the complete set of known images as of FetchedAt. It is never
// mutated after creation.
type Snapshot struct {
	Images    []Image   `json:"images"`
	FetchedAt time.Time `json:"fetched_at"`
}

func (s *Snapshot) IsFresh(now time.Time, ttl time.Duration) bool {
	return s != nil && now.Sub(s.FetchedAt) < ttl
}

// SnapshotStore keeps the current snapshot. Load returns nil when there is none.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
	Invalidate(ctx context.Context) error
}

// RefreshLocker is implemented by snapshot stores shared between processes.
type RefreshLocker interface {
	LockRefresh(ctx context.Context) (unlock func(), err error)
}

type MemorySnapshotStore struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (m *MemorySnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot, nil
}

func (m *MemorySnapshotStore) Save(ctx context.Context, snapshot *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = snapshot
	return nil
}

func (m *MemorySnapshotStore) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = nil
	return nil
}
