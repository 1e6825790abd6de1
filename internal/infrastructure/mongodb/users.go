package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/go-inbox-api/internal/domain"
)

// UserRepo provides typed operations on the users collection.
type UserRepo struct {
	store      *Store
	collection string
}

func NewUserRepo(store *Store, collection string) *UserRepo {
	return &UserRepo{store: store, collection: collection}
}

// GetByEmail returns the user stored under exactly this email. Emails are
// matched case-sensitively, the same way the unique index treats them.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.store.FindOne(ctx, r.collection, bson.M{"email": email}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user document and returns the generated id. A nil
// AvatarURL is stored as an explicit null.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (string, error) {
	return r.store.CreateDocument(ctx, r.collection, bson.M{
		"name":          u.Name,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"avatar_url":    u.AvatarURL,
	})
}
