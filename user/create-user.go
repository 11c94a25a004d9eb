package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 2
	maxUsernameLength = 32
	minPasswordLength = 8
	maxPasswordLength = 1024
)

type CreateUserParams struct {
	Username string
	Password string
	IsAdmin  bool
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (*User, error) {
	if len(p.Username) < minUsernameLength {
		return nil, newErrUsernameTooShort(minUsernameLength)
	}
	if len(p.Username) > maxUsernameLength {
		return nil, newErrUsernameTooLong(maxUsernameLength)
	}
	if len(p.Password) < minPasswordLength {
		return nil, newErrPasswordTooShort(minPasswordLength)
	}
	if len(p.Password) > maxPasswordLength {
		return nil, newErrPasswordTooLong()
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := UserRow{
		UUID:      uuid.New(),
		Username:  p.Username,
		BcryptPwd: bcryptPwd,
		IsAdmin:   p.IsAdmin,
	}

	// uniqueness is decided by the store, not by a prior read; racing
	// registrations with the same username resolve there
	if err := s.repo.Store(ctx, row); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, newErrUsernameExists()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	res := row.public()
	return &res, nil
}
