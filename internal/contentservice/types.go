package contentservice

import (
	"database/sql"
	"log/slog"
	"time"

	"inkpress/internal/common"
	"inkpress/internal/userservice"
)

type ContentService struct {
	m      *PostModel
	c      *common.Cache
	mb     common.MessageProducer
	logger *slog.Logger
}

type PostModel struct {
	db *sql.DB
}

// Post is the unit of content. Content may be NULL in the database, so it is
// carried as a pointer. Author is only populated by feed and single-post reads
// that join the users table.
type Post struct {
	ID        int               `json:"id"`
	Title     string            `json:"title"`
	Content   *string           `json:"content"`
	Published bool              `json:"published"`
	ViewCount int               `json:"view_count"`
	AuthorID  int               `json:"author_id"`
	Author    *userservice.User `json:"author,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SortDirection is restricted to the two valid ORDER BY directions so that a
// caller-supplied sort parameter can never reach the SQL text unchecked.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// FeedQuery is a normalized feed request. Skip defaults to zero and a nil Take
// means no limit; both come out of NewFeedQuery that way when the raw
// parameters are absent or non-numeric.
type FeedQuery struct {
	Search string
	Skip   int
	Take   *int
	Sort   SortDirection
}

// PostPublishedEvent is the message emitted on the broker when a toggle
// transitions a post to published.
type PostPublishedEvent struct {
	PostID      int     `json:"post_id"`
	Title       string  `json:"title"`
	AuthorEmail string  `json:"author_email"`
	AuthorName  *string `json:"author_name"`
}
