package repository

import (
	"fmt"

	"festival-lineup/config"
	"festival-lineup/internal/database"
)

// NewFromStore builds the repositories for the driver the store was opened with.
func NewFromStore(store *database.Store) (EventRepository, UserRepository, error) {
	switch store.Driver {
	case config.DriverPostgres:
		return NewEventRepository(store.Pool), NewUserRepository(store.Pool), nil
	case config.DriverMongo:
		return NewMongoEventRepository(store.MongoDB), NewMongoUserRepository(store.MongoDB), nil
	case config.DriverRedis:
		return NewRedisEventRepository(store.Redis), NewRedisUserRepository(store.Redis), nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", store.Driver)
}
