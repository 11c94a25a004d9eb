package user

import (
	"context"

	"github.com/google/uuid"
)

type UserSrvc struct {
	repo UserRepo
}

func NewUserSrvc(repo UserRepo) *UserSrvc {
	return &UserSrvc{repo: repo}
}

func (s *UserSrvc) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, nil
	}
	u := row.public()
	return &u, nil
}

func (s *UserSrvc) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.public())
	}
	return users, nil
}
