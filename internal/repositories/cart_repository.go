package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chaibisket/models"
	"chaibisket/pkg/logger"
	"chaibisket/pkg/storage"
)

// CartRepositoryInterface persists the current cart line list.
type CartRepositoryInterface interface {
	Load(ctx context.Context) models.Cart
	Save(ctx context.Context, cart models.Cart) error
	Clear(ctx context.Context) error
}

// CartRepository serializes the cart under the cart storage key. A value
// that fails to parse degrades to an empty cart; the parse failure is
// logged and never surfaces to the caller.
type CartRepository struct {
	store  storage.Store
	logger *logger.Logger
}

// NewCartRepository creates a cart repository over the given store.
func NewCartRepository(store storage.Store, log *logger.Logger) *CartRepository {
	return &CartRepository{
		store:  store,
		logger: log.WithComponent("cart_repository"),
	}
}

// Load reads the persisted cart. Missing or corrupted data yields an
// empty cart.
func (r *CartRepository) Load(ctx context.Context) models.Cart {
	data, err := r.store.Get(ctx, storage.KeyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("Failed to read cart, treating as empty", "error", err)
		}
		return models.Cart{}
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		r.logger.Warn("Failed to parse persisted cart, treating as empty", "error", err)
		return models.Cart{}
	}

	return models.Cart{Lines: lines}
}

// Save persists the full cart line list.
func (r *CartRepository) Save(ctx context.Context, cart models.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []models.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		r.logger.Error("Failed to serialize cart", "error", err)
		return fmt.Errorf("failed to serialize cart: %v", err)
	}

	if err := r.store.Set(ctx, storage.KeyCart, data); err != nil {
		r.logger.Error("Failed to persist cart", "error", err)
		return err
	}

	return nil
}

// Clear removes the persisted cart entirely.
func (r *CartRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, storage.KeyCart); err != nil {
		r.logger.Error("Failed to clear cart", "error", err)
		return err
	}
	return nil
}
