// Package filestore persists each storage key as a JSON file under a data
// directory. It is the default driver and the closest analogue of the
// single-browser local store the service grew out of: one writer, no
// cross-process coordination, last write wins.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"chaibisket/pkg/logger"
	"chaibisket/pkg/storage"
)

// Store keeps one file per key under dir. Writes go through a temp file
// and rename so a crash mid-write never leaves a torn value behind.
type Store struct {
	dir    string
	mutex  sync.RWMutex
	logger *logger.Logger
}

// New creates the data directory if needed and returns a file-backed store.
func New(dir string, log *logger.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %v", dir, err)
	}

	return &Store{
		dir:    dir,
		logger: log.WithComponent("filestore"),
	}, nil
}

// Get reads the value stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		s.logger.Error("Failed to read key file", "key", key, "error", err)
		return nil, fmt.Errorf("failed to read key %s: %v", key, err)
	}

	return data, nil
}

// Set writes the value under key, replacing any previous value.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		s.logger.Error("Failed to write key file", "key", key, "error", err)
		return fmt.Errorf("failed to write key %s: %v", key, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		s.logger.Error("Failed to replace key file", "key", key, "error", err)
		return fmt.Errorf("failed to replace key %s: %v", key, err)
	}

	s.logger.Debug("Stored key", "key", key, "bytes", len(value))
	return nil
}

// Remove deletes the value under key. Removing an absent key is not an error.
func (s *Store) Remove(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Error("Failed to remove key file", "key", key, "error", err)
		return fmt.Errorf("failed to remove key %s: %v", key, err)
	}

	return nil
}

// Close is a no-op for the file driver.
func (s *Store) Close() error {
	return nil
}

// pathFor maps a key to its file, rejecting keys that would escape the
// data directory.
func (s *Store) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
