package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/antonkarev/healthhub/internal/config"
)

// The two fixed keys the session store is allowed to persist. Token and user
// are always written and cleared together.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// KV is the persistent local key-value storage contract. It is the only
// place outside memory where session state may live.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Open selects a backend from config.
func Open(cfg config.StorageConfig) (KV, error) {
	switch cfg.Backend {
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	case "redis":
		return NewRedisStore(cfg.RedisHost, cfg.RedisPort)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
