package scoreboard

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SolvedTask is one task's contribution to a user's entry. EffectivePoints
// is the value at snapshot-build time, not at solve time: it shrinks for
// everyone who solved the task whenever a new solver appears.
type SolvedTask struct {
	Name            string    `json:"name"`
	Tags            []string  `json:"tags"`
	EffectivePoints float64   `json:"effective_points"`
	SolvedAt        time.Time `json:"solved_at"`
}

// Entry is one user's ranked scoreboard line. DateSum is the sum of
// (solve time - match start) in seconds over the user's solves; it only
// matters as a tie-breaker: equal totals rank the earlier-summed solves
// first.
type Entry struct {
	UserUUID    uuid.UUID             `json:"user_uuid"`
	Username    string                `json:"username"`
	TotalPoints float64               `json:"total_points"`
	DateSum     float64               `json:"date_sum"`
	Place       int                   `json:"place"` // 1-based
	SolvedTasks map[string]SolvedTask `json:"solved_tasks"`
}

// Snapshot is the materialized scoreboard, regenerated wholesale on every
// successful solve and served as-is to readers. Version orders overlapping
// rebuilds: the store keeps whichever snapshot carries the higher stamp.
type Snapshot struct {
	Version   int64     `json:"version"`
	Entries   []Entry   `json:"entries"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SnapshotCache is a best-effort read cache in front of the snapshot
// store. Get reports a miss instead of an error; a miss or an unreachable
// cache only costs a store read, never correctness.
type SnapshotCache interface {
	Get(ctx context.Context) (*Snapshot, bool)
	Set(ctx context.Context, snap *Snapshot)
	Invalidate(ctx context.Context)
}

// SnapshotRepo is the single-document snapshot store. Put must be
// last-writer-wins by Version: a snapshot with a lower stamp than the
// stored one is silently dropped.
type SnapshotRepo interface {
	Get(ctx context.Context) (*Snapshot, error) // nil if absent
	Put(ctx context.Context, snap *Snapshot) error
}
