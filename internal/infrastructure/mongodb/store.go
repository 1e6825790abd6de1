package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/go-inbox-api/internal/domain"
)

// Store wraps a single database handle and exposes the generic document
// operations the typed repos build on. A Store without a handle (see
// Unavailable) reports domain.ErrUnavailable from every operation.
type Store struct {
	db *mongo.Database
}

// Available reports whether a live database handle is present.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

func (s *Store) collection(name string) (*mongo.Collection, error) {
	if !s.Available() {
		return nil, domain.ErrUnavailable
	}
	return s.db.Collection(name), nil
}

// CreateDocument inserts doc into the named collection and returns the
// generated id in text form. A created_at timestamp is stamped unless the
// caller already set one.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc bson.M) (string, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return "", err
	}
	if _, ok := doc["created_at"]; !ok {
		doc["created_at"] = time.Now().UTC()
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("insert %s: %w", collection, domain.ErrConflict)
		}
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// FindOne decodes the first document matching filter into out.
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}
	if err := coll.FindOne(ctx, filter).Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("find %s: %w", collection, err)
	}
	return nil
}

// Find runs a filtered query, optionally sorted, and returns the cursor for
// the caller to drain.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, sort bson.D) (*mongo.Cursor, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	return cur, nil
}

// UpdateMany applies update to every document matching filter and returns
// the number of documents modified.
func (s *Store) UpdateMany(ctx context.Context, collection string, filter, update bson.M) (int64, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return 0, err
	}
	res, err := coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", collection, err)
	}
	return res.ModifiedCount, nil
}

// CollectionNames lists the collection names in the database, capped at limit
// when limit is positive.
func (s *Store) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if !s.Available() {
		return nil, domain.ErrUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Close disconnects the underlying client. Safe to call on an unavailable
// Store.
func (s *Store) Close(ctx context.Context) error {
	if !s.Available() {
		return nil
	}
	return s.db.Client().Disconnect(ctx)
}
