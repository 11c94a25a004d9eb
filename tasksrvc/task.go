package tasksrvc

import (
	"time"

	"github.com/google/uuid"
)

// Task is a challenge with a hidden flag. The flag itself is never stored;
// only its keyed hash is (FlagHmac). Solves is the insert-only record of who
// solved the task and when, with at most one entry per user.
type Task struct {
	ID         string
	Name       string
	BasePoints float64
	FlagHmac   string
	Tags       []string
	Solves     []Solve
}

// Solve is one user's recorded successful submission.
type Solve struct {
	UserUUID uuid.UUID
	At       time.Time
}

// SolverCount is the total number of users who have ever solved the task.
func (t *Task) SolverCount() int {
	return len(t.Solves)
}

// SolveBy returns the user's solve record, if any.
func (t *Task) SolveBy(id uuid.UUID) (Solve, bool) {
	for _, s := range t.Solves {
		if s.UserUUID == id {
			return s, true
		}
	}
	return Solve{}, false
}
