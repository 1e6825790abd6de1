package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/go-inbox-api/internal/config"
)

// EnsureIndexes creates the indexes the API relies on: the unique index on
// user emails, and the compound index that serves newest-first inbox reads.
// Safe to call on every startup: creating an index that already exists is a
// no-op on the server.
func EnsureIndexes(ctx context.Context, store *Store, colls config.Collections) {
	if !store.Available() {
		slog.Warn("skipping index bootstrap, database not available")
		return
	}

	createIndex(ctx, store, colls.Users, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	createIndex(ctx, store, colls.Notifications, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_email", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func createIndex(ctx context.Context, store *Store, collection string, model mongo.IndexModel) {
	name, err := store.db.Collection(collection).Indexes().CreateOne(ctx, model)
	if err != nil {
		slog.Warn("index bootstrap failed", "collection", collection, "err", err)
		return
	}
	slog.Info("index ready", "collection", collection, "index", name)
}
