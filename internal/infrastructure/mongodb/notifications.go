package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/go-inbox-api/internal/domain"
)

// NotificationRepo provides typed operations on the notifications collection.
type NotificationRepo struct {
	store      *Store
	collection string
}

func NewNotificationRepo(store *Store, collection string) *NotificationRepo {
	return &NotificationRepo{store: store, collection: collection}
}

// Create inserts a notification document and returns the generated id.
func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) (string, error) {
	return r.store.CreateDocument(ctx, r.collection, bson.M{
		"user_email": n.UserEmail,
		"title":      n.Title,
		"body":       n.Body,
		"read":       n.Read,
	})
}

// ListByEmail returns every notification addressed to email, newest first.
func (r *NotificationRepo) ListByEmail(ctx context.Context, email string) ([]domain.Notification, error) {
	cur, err := r.store.Find(ctx, r.collection,
		bson.M{"user_email": email},
		bson.D{{Key: "created_at", Value: -1}},
	)
	if err != nil {
		return nil, err
	}
	var notifications []domain.Notification
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifications, nil
}

// MarkAllRead flips read to true on every unread notification addressed to
// email and returns the number of documents modified. Zero matches is not an
// error.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, email string) (int64, error) {
	return r.store.UpdateMany(ctx, r.collection,
		bson.M{"user_email": email, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
}
