package contentservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"inkpress/internal/common"
)

func NewContentService(db *sql.DB, c *common.Cache, mb common.MessageProducer, logger *slog.Logger) *ContentService {
	return &ContentService{m: newPostModel(db), c: c, mb: mb, logger: logger}
}

type CreatePostRequest struct {
	Title       string  `json:"title"`
	Content     *string `json:"content"`
	AuthorEmail string  `json:"author_email"`
}

// CreatePost creates an unpublished post with a zero view count, owned by the
// user whose email matches. Returns ErrAuthorNotFound when no user does.
func (s *ContentService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateAuthorEmail(v, req.AuthorEmail)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	post, err := s.m.insert(ctx, req.Title, req.Content, req.AuthorEmail)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return post, nil
}

// IncrementViewCount adds exactly one view to the post. The bump happens in a
// single UPDATE so concurrent calls on the same ID never lose an increment.
func (s *ContentService) IncrementViewCount(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateID(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	post, err := s.m.incrementViews(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return post, nil
}

// TogglePublished flips the published flag relative to its stored value. When
// the post transitions to published an event goes out on the broker so the
// author can be notified; publishing is best-effort and never fails the toggle.
func (s *ContentService) TogglePublished(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateID(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	post, err := s.m.togglePublished(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	if post.Published {
		s.notifyPublished(ctx, post.ID)
	}

	return post, nil
}

func (s *ContentService) notifyPublished(ctx context.Context, id int) {
	if s.mb == nil {
		return
	}

	post, err := s.m.getPost(ctx, id)
	if err != nil {
		s.logger.Error("could not load published post for notification", slog.Int("post_id", id), slog.String("error", err.Error()))
		return
	}

	event := PostPublishedEvent{
		PostID:      post.ID,
		Title:       post.Title,
		AuthorEmail: post.Author.Email,
		AuthorName:  post.Author.Name,
	}

	msg, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("could not marshal post published event", slog.Int("post_id", id), slog.String("error", err.Error()))
		return
	}

	err = s.mb.Publish(ctx, msg, common.PostPublishedKey, common.PostExchange)
	if err != nil {
		s.logger.Error("could not publish post published event", slog.Int("post_id", id), slog.String("error", err.Error()))
	}
}

// DeletePost permanently removes the post and returns its final state.
func (s *ContentService) DeletePost(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateID(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	post, err := s.m.deletePost(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return post, nil
}

// GetPost returns a single post with its author attached.
func (s *ContentService) GetPost(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateID(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyPost(id)); ok {
		return cached.(*Post), nil
	}

	post, err := s.m.getPost(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyPost(id), post)

	return post, nil
}

// DraftsByUser returns every unpublished post owned by the user, newest first.
// A user with no drafts yields an empty slice; a missing user ErrUserNotFound.
func (s *ContentService) DraftsByUser(ctx context.Context, userID int) ([]Post, error) {
	v := common.NewValidator()
	validateID(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyDraftsByUserId(userID)); ok {
		return cached.([]Post), nil
	}

	posts, err := s.m.draftsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyDraftsByUserId(userID), posts)

	return posts, nil
}

// Feed returns published posts matching the query, authors attached, ordered
// by last update. Queries matching nothing are a normal empty result.
func (s *ContentService) Feed(ctx context.Context, q FeedQuery) ([]Post, error) {
	key := common.CacheKeyFeed(q.Search, q.Skip, q.Take, string(q.Sort))
	if cached, ok := s.c.Get(key); ok {
		return cached.([]Post), nil
	}

	posts, err := s.m.feed(ctx, q)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, posts)

	return posts, nil
}
