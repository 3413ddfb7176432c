package database

import (
	"context"
	"errors"
	"festival-lineup/config"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store owns the connection for the configured storage driver. Exactly one of
// Pool, Redis or Mongo is set, matching Driver.
type Store struct {
	Driver string
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	Mongo  *mongo.Client
	// MongoDB is the database handle inside Mongo that holds the collections.
	MongoDB *mongo.Database
}

// Open connects to the driver selected in cfg.Storage and prepares its schema.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	store := &Store{Driver: cfg.Storage.Driver}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := InitDatabase(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		store.Pool = pool

	case config.DriverMongo:
		client, err := InitMongo(ctx, &cfg.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := MigrateMongo(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		store.Mongo = client
		store.MongoDB = db

	case config.DriverRedis:
		rdb, err := InitRedis(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		store.Redis = rdb

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return store, nil
}

// Ping checks that the underlying store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	switch {
	case s.Pool != nil:
		return s.Pool.Ping(ctx)
	case s.Redis != nil:
		return s.Redis.Ping(ctx).Err()
	case s.Mongo != nil:
		return s.Mongo.Ping(ctx, nil)
	}
	return errors.New("store is closed")
}

// Close releases the connection. It is safe to call more than once.
func (s *Store) Close(ctx context.Context) error {
	var err error
	if s.Pool != nil {
		s.Pool.Close()
		s.Pool = nil
	}
	if s.Redis != nil {
		err = errors.Join(err, s.Redis.Close())
		s.Redis = nil
	}
	if s.Mongo != nil {
		err = errors.Join(err, s.Mongo.Disconnect(ctx))
		s.Mongo = nil
		s.MongoDB = nil
	}
	return err
}
