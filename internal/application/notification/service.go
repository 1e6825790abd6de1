package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-inbox-api/internal/domain"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateNotificationRequest) (string, error)
	List(ctx context.Context, email string) ([]domain.NotificationItem, error)
	MarkAllRead(ctx context.Context, email string) error
}

type notificationStore interface {
	Create(ctx context.Context, n *domain.Notification) (string, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, email string) (int64, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type service struct {
	repo  notificationStore
	users userStore
}

func NewService(repo notificationStore, users userStore) Service {
	return &service{repo: repo, users: users}
}

// Create stores an unread notification for an existing user. The recipient
// must be registered; nothing is inserted otherwise.
func (s *service) Create(ctx context.Context, req domain.CreateNotificationRequest) (string, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return "", err
	}

	return s.repo.Create(ctx, &domain.Notification{
		UserEmail: req.Email,
		Title:     req.Title,
		Body:      req.Body,
		Read:      false,
	})
}

// List returns the inbox for an email in wire form, newest first. An email
// nobody registered yields an empty list, not an error.
func (s *service) List(ctx context.Context, email string) ([]domain.NotificationItem, error) {
	notifications, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	items := make([]domain.NotificationItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, toItem(n))
	}
	return items, nil
}

// MarkAllRead flips every unread notification for the email to read.
// Idempotent: repeating the call succeeds with nothing left to modify.
func (s *service) MarkAllRead(ctx context.Context, email string) error {
	_, err := s.repo.MarkAllRead(ctx, email)
	return err
}

func toItem(n domain.Notification) domain.NotificationItem {
	item := domain.NotificationItem{
		ID:    n.ID.Hex(),
		Title: n.Title,
		Body:  n.Body,
		Read:  n.Read,
	}
	if n.CreatedAt != nil {
		ts := n.CreatedAt.UTC().Format(time.RFC3339Nano)
		item.CreatedAt = &ts
	}
	return item
}
