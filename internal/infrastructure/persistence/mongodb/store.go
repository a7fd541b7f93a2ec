package mongodb

import (
	"context"
	"fmt"
	"time"

	"welltips/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store owns the driver client for the process lifetime. Constructed at
// bootstrap, closed on shutdown; never a package-level singleton.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	opts := options.Client().ApplyURI(cfg.URI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("nil store")
	}
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Users() *mongo.Collection {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Collection("users")
}
