package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// PostService implements post CRUD behind the authorization guards.
type PostService struct {
	posts  ports.PostRepository
	tags   ports.TagRepository
	authz  ports.AuthorizationService
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, tags ports.TagRepository, authz ports.AuthorizationService, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, tags: tags, authz: authz, logger: logger}
}

// List returns every post for admins and only the caller's own otherwise.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	caller, err := s.authz.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if caller.IsAdmin() {
		return s.posts.FindAll(ctx)
	}
	return s.posts.FindByAuthorID(ctx, caller.ID)
}

// Get returns a single post, applying the owner-or-admin gate.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	_, post, err := s.authz.RequireOwnerOrAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Create persists a new post authored by the caller. The author is always the
// resolved caller; clients cannot create posts on behalf of others.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	caller, err := s.authz.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, input.TagIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:          input.Title,
		Content:        input.Content,
		AuthorID:       caller.ID,
		AuthorUsername: caller.Username,
		Tags:           tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author", caller.Username).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author", caller.Username).Msg("post created")
	return created, nil
}

// Update replaces title, content, and tag set of an existing post.
func (s *PostService) Update(ctx context.Context, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	caller, post, err := s.authz.RequireOwnerOrAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, input.TagIDs)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.Tags = tags
	post.UpdatedAt = time.Now().UTC()

	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", id).Str("caller", caller.Username).Msg("post updated")
	return updated, nil
}

// Delete removes a post after the owner-or-admin gate.
func (s *PostService) Delete(ctx context.Context, id string) error {
	caller, _, err := s.authz.RequireOwnerOrAdmin(ctx, id)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Str("caller", caller.Username).Msg("post deleted")
	return nil
}

func (s *PostService) resolveTags(ctx context.Context, ids []string) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}
	return s.tags.FindByIDs(ctx, ids)
}
