package userservice

import (
	"context"
	"database/sql"

	"inkpress/internal/common"
)

func NewUserService(db *sql.DB, c *common.Cache) *UserService {
	return &UserService{m: newUserModel(db), c: c}
}

// GetUserByID returns a single user by its ID.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	v.Check(id > 0, "id", "must be greater than zero")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id)
}

// GetUserByEmail returns a single user by its unique email address.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	v := common.NewValidator()
	v.Check(email != "", "email", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByEmail(ctx, email)
}

// ListUsers returns every user ordered by ID.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	if cached, ok := s.c.Get(common.CacheKeyUsers()); ok {
		return cached.([]User), nil
	}

	users, err := s.m.list(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyUsers(), users)

	return users, nil
}
