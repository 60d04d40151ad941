package userservice

import (
	"database/sql"
	"time"

	"inkpress/internal/common"
)

type UserService struct {
	m *UserModel
	c *common.Cache
}

type UserModel struct {
	db *sql.DB
}

// User is an author record. Users are provisioned out of band; this service
// only ever reads them.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
