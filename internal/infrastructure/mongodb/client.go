package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/go-inbox-api/internal/config"
)

// Connect establishes a MongoDB client from cfg.DatabaseURL and verifies the
// connection with a ping bounded by cfg.DatabaseTimeout. On failure the caller
// is expected to fall back to Unavailable() so the process keeps serving.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}
	if cfg.DatabaseName == "" {
		return nil, errors.New("DATABASE_NAME not set")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Store{db: client.Database(cfg.DatabaseName)}, nil
}

// Unavailable returns a Store with no database handle. Every operation on it
// fails with domain.ErrUnavailable, which lets the API boot without a
// reachable database and report the condition per request instead.
func Unavailable() *Store {
	return &Store{}
}
