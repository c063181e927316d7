package service

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// UserService exposes admin-only views of registered accounts.
type UserService struct {
	users ports.UserRepository
	authz ports.AuthorizationService
}

func NewUserService(users ports.UserRepository, authz ports.AuthorizationService) *UserService {
	return &UserService{users: users, authz: authz}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := s.authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	if _, err := s.authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.users.FindAll(ctx)
}
