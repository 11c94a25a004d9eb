package scoreboard

import (
	"context"
	"sync"
)

// InMemSnapshotRepo is the single-document SnapshotRepo used by unit
// tests. It applies the same version rule as the DynamoDB repo.
type InMemSnapshotRepo struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewInMemSnapshotRepo() *InMemSnapshotRepo {
	return &InMemSnapshotRepo{}
}

// Get implements SnapshotRepo
func (r *InMemSnapshotRepo) Get(ctx context.Context) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snap == nil {
		return nil, nil
	}
	cp := *r.snap
	return &cp, nil
}

// Put implements SnapshotRepo
func (r *InMemSnapshotRepo) Put(ctx context.Context, snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap != nil && r.snap.Version > snap.Version {
		return nil
	}
	cp := *snap
	r.snap = &cp
	return nil
}
