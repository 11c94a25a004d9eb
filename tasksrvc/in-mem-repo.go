package tasksrvc

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemTaskRepo is the map-backed TaskRepo used by unit tests. Store and
// RecordSolve hold the lock across check and insert, mirroring the
// conditional-put semantics of the DynamoDB implementation.
type InMemTaskRepo struct {
	mu     sync.RWMutex
	tasks  map[string]Task
	solves map[string]map[uuid.UUID]time.Time
}

func NewInMemTaskRepo() *InMemTaskRepo {
	return &InMemTaskRepo{
		tasks:  make(map[string]Task),
		solves: make(map[string]map[uuid.UUID]time.Time),
	}
}

// Store implements TaskRepo
func (r *InMemTaskRepo) Store(ctx context.Context, task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tasks[task.ID]; exists {
		return ErrTaskExists
	}
	task.Solves = nil // solves live in their own map
	r.tasks[task.ID] = task
	return nil
}

// Get implements TaskRepo
func (r *InMemTaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	task.Solves = r.solvesOf(id)
	return &task, nil
}

// List implements TaskRepo
func (r *InMemTaskRepo) List(ctx context.Context) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]Task, 0, len(r.tasks))
	for id, task := range r.tasks {
		task.Solves = r.solvesOf(id)
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Delete implements TaskRepo
func (r *InMemTaskRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	delete(r.solves, id)
	return nil
}

// RecordSolve implements TaskRepo
func (r *InMemTaskRepo) RecordSolve(ctx context.Context, taskID string, userUUID uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.solves[taskID] == nil {
		r.solves[taskID] = make(map[uuid.UUID]time.Time)
	}
	if _, exists := r.solves[taskID][userUUID]; exists {
		return ErrSolveExists
	}
	r.solves[taskID][userUUID] = at
	return nil
}

// callers must hold at least a read lock
func (r *InMemTaskRepo) solvesOf(taskID string) []Solve {
	solves := make([]Solve, 0, len(r.solves[taskID]))
	for id, at := range r.solves[taskID] {
		solves = append(solves, Solve{UserUUID: id, At: at})
	}
	sort.Slice(solves, func(i, j int) bool { return solves[i].At.Before(solves[j].At) })
	return solves
}
