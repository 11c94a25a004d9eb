package tasksrvc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrSolveExists is returned by RecordSolve when the user already has a
// solve recorded for the task. Implementations must detect this atomically
// at the store level, not with a separate read: two interleaved submissions
// for the same (user, task) pair must resolve to exactly one recorded solve.
var ErrSolveExists = errors.New("solve already recorded for this user and task")

// ErrTaskExists is returned by Store when a task with the same id is
// already present. Creation is insert-only: overwriting a task document
// would silently orphan its recorded solves.
var ErrTaskExists = errors.New("task already exists")

// TaskRepo abstracts the task document store.
type TaskRepo interface {
	// Store inserts the task if and only if the id is not taken yet.
	// Returns ErrTaskExists otherwise.
	Store(ctx context.Context, task Task) error
	Get(ctx context.Context, id string) (*Task, error) // nil if absent
	List(ctx context.Context) ([]Task, error)
	Delete(ctx context.Context, id string) error

	// RecordSolve inserts a solve record if and only if none exists yet
	// for the (task, user) pair. Returns ErrSolveExists otherwise.
	RecordSolve(ctx context.Context, taskID string, userUUID uuid.UUID, at time.Time) error
}
