package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// User is the public view of a registered competitor.
type User struct {
	UUID     uuid.UUID
	Username string
	IsAdmin  bool
}

// UserRow is the stored form, including credentials.
type UserRow struct {
	UUID      uuid.UUID
	Username  string
	BcryptPwd []byte
	IsAdmin   bool
}

// ErrUsernameTaken is returned by Store when another user already holds
// the username. Implementations must detect this atomically at the store
// level, not with a separate read: two interleaved registrations with the
// same username must resolve to exactly one stored user.
var ErrUsernameTaken = errors.New("username is already taken")

// UserRepo abstracts the user document store. The core only ever reads
// users; writes happen through registration.
type UserRepo interface {
	// Store inserts the row if and only if no user holds the username yet.
	// Returns ErrUsernameTaken otherwise.
	Store(ctx context.Context, row UserRow) error
	Get(ctx context.Context, uuid uuid.UUID) (*UserRow, error) // nil if absent
	List(ctx context.Context) ([]UserRow, error)
}

func (r UserRow) public() User {
	return User{
		UUID:     r.UUID,
		Username: r.Username,
		IsAdmin:  r.IsAdmin,
	}
}
