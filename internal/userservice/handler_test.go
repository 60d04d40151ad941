package userservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/internal/common"
)

func setupTestEnvironment(t *testing.T) (*UserService, *sql.DB) {
	t.Helper()

	db := common.TestDB("file://../../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	return NewUserService(db, cache), db
}

func createTestUser(t *testing.T, db *sql.DB, email string, name *string) int {
	t.Helper()

	var id int
	err := db.QueryRow(`INSERT INTO users (email, name) VALUES ($1, $2) RETURNING id`, email, name).Scan(&id)
	require.NoError(t, err)

	return id
}

func strptr(s string) *string {
	return &s
}

func TestGetUserByID(t *testing.T) {
	s, db := setupTestEnvironment(t)
	id := createTestUser(t, db, "a@x.com", strptr("Alice"))

	ctx := context.Background()

	user, err := s.GetUserByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	if assert.NotNil(t, user.Name) {
		assert.Equal(t, "Alice", *user.Name)
	}

	_, err = s.GetUserByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetUserByID(ctx, 0)
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"id": "must be greater than zero"}}, err)
}

func TestGetUserByEmail(t *testing.T) {
	s, db := setupTestEnvironment(t)
	createTestUser(t, db, "a@x.com", nil)

	ctx := context.Background()

	user, err := s.GetUserByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Nil(t, user.Name)

	_, err = s.GetUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers(t *testing.T) {
	s, db := setupTestEnvironment(t)

	ctx := context.Background()

	users, err := s.ListUsers(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	// the empty result is cached, so bypass it for the seeded read
	s.c.Flush()

	createTestUser(t, db, "a@x.com", strptr("Alice"))
	createTestUser(t, db, "b@x.com", nil)

	users, err = s.ListUsers(ctx)
	assert.NoError(t, err)
	if assert.Len(t, users, 2) {
		assert.Equal(t, "a@x.com", users[0].Email)
		assert.Equal(t, "b@x.com", users[1].Email)
	}

	// second call is served from the cache
	cached, err := s.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, users, cached)
}
