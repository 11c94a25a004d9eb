package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Login verifies credentials and returns the matching user.
func (s *UserSrvc) Login(ctx context.Context, username, password string) (*User, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, row := range all {
		if row.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(row.BcryptPwd, []byte(password)) == nil {
			u := row.public()
			return &u, nil
		}
	}

	return nil, newErrInvalidCredentials()
}
