package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-inbox-api/internal/domain"
	"github.com/go-inbox-api/internal/pkg/hash"
)

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (string, error)
}

type service struct {
	users userStore
}

func NewService(users userStore) Service {
	return &service{users: users}
}

// Register creates an account unless the email is already taken. The lookup
// runs first; the unique index on email turns the losing side of a concurrent
// duplicate insert into the same conflict error.
func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	u := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash.Password(req.Password),
	}
	if _, err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return &domain.AuthResponse{Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}, nil
}

// Login verifies credentials by exact digest equality and returns the stored
// profile. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if u.PasswordHash != hash.Password(req.Password) {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	return &domain.AuthResponse{Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}, nil
}
