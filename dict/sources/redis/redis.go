// Package redis implements the word Source interface using Redis as the
// storage backend. Words live in a Redis set and are read with SSCAN so
// large lists never require a single huge reply.
package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultKey is the Redis set holding the word list when the config
	// does not name one.
	defaultKey = "lbsolve:words"

	// scanBatchSize is the COUNT hint passed to SSCAN.
	scanBatchSize = 1000
)

// Config holds Redis connection parameters.
type Config struct {
	// Addr is the Redis server address in the format "host:port".
	Addr string

	// Password is the Redis password (empty string for no password).
	Password string

	// DB is the Redis database number (0-15, default is 0).
	DB int

	// Key is the Redis set holding the word list. Defaults to
	// "lbsolve:words".
	Key string
}

// Source reads the word list from a Redis set.
type Source struct {
	client *redis.Client
	key    string
}

// New creates a Redis source with the given configuration. It establishes
// a connection to Redis and verifies connectivity with a PING command.
func New(config Config) (*Source, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	key := config.Key
	if key == "" {
		key = defaultKey
	}

	return &Source{
		client: client,
		key:    key,
	}, nil
}

// Words returns every member of the word set.
func (s *Source) Words(ctx context.Context) ([]string, error) {
	words := make([]string, 0, scanBatchSize)
	iter := s.client.SScan(ctx, s.key, 0, "", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		words = append(words, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan word set %q: %w", s.key, err)
	}
	return words, nil
}

// Close closes the Redis connection.
func (s *Source) Close() error {
	return s.client.Close()
}
