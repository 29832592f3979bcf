// Package storage provides the key-value backends used to persist player progress.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("storage: unknown driver")

// KV is a minimal string key-value store.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config selects and configures a backend.
type Config struct {
	Driver      string `yaml:"driver"`
	Path        string `yaml:"path"`
	RedisURL    string `yaml:"redis_url"`
	DatabaseURL string `yaml:"database_url"`
}

// Open connects to the backend named by cfg.Driver. An empty driver means sqlite.
func Open(ctx context.Context, cfg Config) (KV, error) {
	var (
		kv  KV
		err error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverSQLite:
		var s *SQLiteStore
		if s, err = OpenSQLite(cfg.Path); err == nil {
			kv = s
		}
	case DriverRedis:
		var s *RedisStore
		if s, err = OpenRedis(ctx, cfg.RedisURL); err == nil {
			kv = s
		}
	case DriverPostgres:
		var s *PostgresStore
		if s, err = OpenPostgres(ctx, cfg.DatabaseURL); err == nil {
			kv = s
		}
	case DriverMemory:
		kv = NewMemory()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	return kv, err
}
