package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemUserRepo is the map-backed UserRepo used by unit tests. Store holds
// the lock across the username check and the insert, mirroring the guard-row
// conditional put of the DynamoDB implementation.
type InMemUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]UserRow
	names map[string]bool
}

func NewInMemUserRepo() *InMemUserRepo {
	return &InMemUserRepo{
		users: make(map[uuid.UUID]UserRow),
		names: make(map[string]bool),
	}
}

// Store implements UserRepo
func (r *InMemUserRepo) Store(ctx context.Context, row UserRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.names[row.Username] {
		return ErrUsernameTaken
	}
	r.names[row.Username] = true
	r.users[row.UUID] = row
	return nil
}

// Get implements UserRepo
func (r *InMemUserRepo) Get(ctx context.Context, id uuid.UUID) (*UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.users[id]; ok {
		return &row, nil
	}
	return nil, nil
}

// List implements UserRepo
func (r *InMemUserRepo) List(ctx context.Context) ([]UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]UserRow, 0, len(r.users))
	for _, row := range r.users {
		rows = append(rows, row)
	}
	return rows, nil
}
