// Package store persists small values under fixed keys. Game state and
// anything else the app remembers between runs goes through the Store
// interface so callers never care which backend is configured.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("key not found")

// Key names a storage slot.
//
// DO NOT CHANGE VALUES: they are the names existing saves live under.
type Key string

const (
	// KeyGame holds the serialized in-progress game.
	KeyGame Key = "game"
)

// Store is a key-value slot store.
type Store interface {
	Get(ctx context.Context, key Key) ([]byte, error)
	Put(ctx context.Context, key Key, value []byte) error
	Delete(ctx context.Context, key Key) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
		return b, nil
	}
	return "", fmt.Errorf("unknown store backend %q (want file, sqlite, redis or memory)", s)
}

// Options configures Open.
type Options struct {
	Backend     Backend
	DataDir     string // file and sqlite backends
	RedisAddr   string
	RedisPrefix string
}

// Open returns the configured backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.DataDir)
	case BackendSQLite:
		return OpenSQLite(ctx, filepath.Join(opts.DataDir, "klondike.db"))
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPrefix)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
