package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is one inbox entry, tied to its owner by email rather than by
// user id. CreatedAt is a pointer because documents written by other tools
// may lack the field.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail string             `bson:"user_email"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	Read      bool               `bson:"read"`
	CreatedAt *time.Time         `bson:"created_at"`
}

type CreateNotificationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type MarkAllReadRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NotificationItem is the wire form of one listed notification. CreatedAt is
// RFC 3339 or null when the stored document has no timestamp.
type NotificationItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Read      bool    `json:"read"`
	CreatedAt *string `json:"created_at"`
}
