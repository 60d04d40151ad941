package contentservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inkpress/internal/userservice"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrAuthorNotFound = errors.New("author not found")
	ErrUserNotFound   = errors.New("user not found")
)

func newPostModel(db *sql.DB) *PostModel {
	return &PostModel{db: db}
}

func scanPost(row *sql.Row) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Published, &p.ViewCount, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrPostNotFound
		default:
			return nil, err
		}
	}

	return &p, nil
}

// insert creates a post owned by the user whose email matches. Resolving the
// author inside the INSERT keeps creation a single statement; zero rows means
// no user carries that email.
func (m *PostModel) insert(ctx context.Context, title string, content *string, authorEmail string) (*Post, error) {
	query := `
		INSERT INTO posts (title, content, author_id)
		SELECT $1, $2, u.id
		FROM users u
		WHERE u.email = $3
		RETURNING id, title, content, published, view_count, author_id, created_at, updated_at`

	post, err := scanPost(m.db.QueryRowContext(ctx, query, title, content, authorEmail))
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			return nil, ErrAuthorNotFound
		default:
			return nil, err
		}
	}

	return post, nil
}

// incrementViews bumps view_count by one in a single statement so concurrent
// increments serialize at the database row and none are lost.
func (m *PostModel) incrementViews(ctx context.Context, id int) (*Post, error) {
	query := `
		UPDATE posts
		SET view_count = view_count + 1, updated_at = now()
		WHERE id = $1
		RETURNING id, title, content, published, view_count, author_id, created_at, updated_at`

	return scanPost(m.db.QueryRowContext(ctx, query, id))
}

// togglePublished negates the stored flag in a single statement. The flip is
// atomic relative to concurrent toggles on the same row.
func (m *PostModel) togglePublished(ctx context.Context, id int) (*Post, error) {
	query := `
		UPDATE posts
		SET published = NOT published, updated_at = now()
		WHERE id = $1
		RETURNING id, title, content, published, view_count, author_id, created_at, updated_at`

	return scanPost(m.db.QueryRowContext(ctx, query, id))
}

// deletePost removes the row and returns its final state.
func (m *PostModel) deletePost(ctx context.Context, id int) (*Post, error) {
	query := `
		DELETE FROM posts
		WHERE id = $1
		RETURNING id, title, content, published, view_count, author_id, created_at, updated_at`

	return scanPost(m.db.QueryRowContext(ctx, query, id))
}

// getPost returns a single post with its author joined in, like the feed does.
func (m *PostModel) getPost(ctx context.Context, id int) (*Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.published, p.view_count, p.author_id, p.created_at, p.updated_at,
			u.id, u.email, u.name, u.created_at, u.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`

	p, err := scanPostWithAuthor(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostAuthorColumns(s rowScanner, p *Post) error {
	var u userservice.User
	err := s.Scan(&p.ID, &p.Title, &p.Content, &p.Published, &p.ViewCount, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return err
	}

	p.Author = &u
	return nil
}

func scanPostWithAuthor(row *sql.Row) (*Post, error) {
	var p Post
	err := scanPostAuthorColumns(row, &p)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrPostNotFound
		default:
			return nil, err
		}
	}

	return &p, nil
}

// draftsByUser returns every unpublished post owned by the user. A missing
// user is distinguished from a user with no drafts.
func (m *PostModel) draftsByUser(ctx context.Context, userID int) ([]Post, error) {
	var exists bool
	err := m.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	query := `
		SELECT id, title, content, published, view_count, author_id, created_at, updated_at
		FROM posts
		WHERE author_id = $1 AND published = false
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Published, &p.ViewCount, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// feed runs the composed published/search predicate with pagination and sort,
// joining each post's author in the same query.
func (m *PostModel) feed(ctx context.Context, q FeedQuery) ([]Post, error) {
	b := &whereBuilder{}
	b.where("p.published = ?", true)
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		b.where("(p.title LIKE ? OR p.content LIKE ?)", pattern, pattern)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.content, p.published, p.view_count, p.author_id, p.created_at, p.updated_at,
			u.id, u.email, u.name, u.created_at, u.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		%s
		ORDER BY p.updated_at %s, p.id %s`, b.sql(), q.Sort, q.Sort)

	query += fmt.Sprintf(" OFFSET %s", b.next(q.Skip))
	if q.Take != nil {
		query += fmt.Sprintf(" LIMIT %s", b.next(*q.Take))
	}

	rows, err := m.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		if err := scanPostAuthorColumns(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
