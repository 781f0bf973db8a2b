package service

import (
	"context"
	"sync"

	"chaibisket/internal/repositories"
	"chaibisket/pkg/logger"
	"chaibisket/pkg/storage"
)

// memStore is an in-memory storage.Store for tests.
type memStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return value, nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

// testEnv bundles the repositories most service tests need.
type testEnv struct {
	store        *memStore
	menuRepo     *repositories.MenuRepository
	cartRepo     *repositories.CartRepository
	accountRepo  *repositories.AccountRepository
	orderRepo    *repositories.OrderRepository
	checkoutRepo *repositories.CheckoutRepository
}

func newTestEnv() *testEnv {
	log := testLogger()
	store := newMemStore()
	return &testEnv{
		store:        store,
		menuRepo:     repositories.NewMenuRepository(log),
		cartRepo:     repositories.NewCartRepository(store, log),
		accountRepo:  repositories.NewAccountRepository(store, log),
		orderRepo:    repositories.NewOrderRepository(store, log),
		checkoutRepo: repositories.NewCheckoutRepository(store, log),
	}
}
