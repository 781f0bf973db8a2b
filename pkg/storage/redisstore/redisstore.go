// Package redisstore backs the storage keys with Redis. Useful when the
// service runs next to an existing Redis and file persistence is unwanted.
package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"chaibisket/pkg/logger"
	"chaibisket/pkg/storage"
)

// Config holds connection settings for the Redis driver.
type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Store keeps each storage key as a prefixed Redis string value.
type Store struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, cfg Config, log *logger.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %v", cfg.Addr, err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "chaibisket:"
	}

	log.Info("Redis connection established", "addr", cfg.Addr, "db", cfg.DB)

	return &Store{
		client: client,
		prefix: prefix,
		logger: log.WithComponent("redisstore"),
	}, nil
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to get key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get key %s: %v", key, err)
	}
	return value, nil
}

// Set writes the value under key with no expiry; the records are durable
// application state, not cache entries.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		s.logger.Error("Failed to set key", "key", key, "error", err)
		return fmt.Errorf("failed to set key %s: %v", key, err)
	}

	s.logger.Debug("Stored key", "key", key, "bytes", len(value))
	return nil
}

// Remove deletes the value under key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		s.logger.Error("Failed to delete key", "key", key, "error", err)
		return fmt.Errorf("failed to delete key %s: %v", key, err)
	}
	return nil
}

// Close closes the Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
