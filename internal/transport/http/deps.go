package http

import (
	"context"

	"github.com/go-inbox-api/internal/domain"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (string, error)
}

// NotificationRepository is the minimal interface the router requires from a notification store.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (string, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, email string) (int64, error)
}
