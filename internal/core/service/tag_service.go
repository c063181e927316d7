package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// TagService implements tag CRUD. Reads are public; mutations require ADMIN.
type TagService struct {
	tags   ports.TagRepository
	authz  ports.AuthorizationService
	logger zerolog.Logger
}

func NewTagService(tags ports.TagRepository, authz ports.AuthorizationService, logger zerolog.Logger) *TagService {
	return &TagService{tags: tags, authz: authz, logger: logger}
}

func (s *TagService) Get(ctx context.Context, id string) (*domain.Tag, error) {
	return s.tags.FindByID(ctx, id)
}

func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.FindAll(ctx)
}

func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	caller, err := s.authz.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	tag, err := s.tags.Create(ctx, &domain.Tag{Name: name})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("tag_id", tag.ID).Str("name", name).Str("caller", caller.Username).Msg("tag created")
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, id, name string) (*domain.Tag, error) {
	if _, err := s.authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tag.Name = name
	return s.tags.Update(ctx, tag)
}

func (s *TagService) Delete(ctx context.Context, id string) error {
	if _, err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}

	if _, err := s.tags.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tags.Delete(ctx, id)
}
