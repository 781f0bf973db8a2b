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

// CheckoutRepositoryInterface persists the in-progress checkout snapshot.
type CheckoutRepositoryInterface interface {
	Load(ctx context.Context) (*models.Checkout, bool)
	Save(ctx context.Context, checkout models.Checkout) error
	Clear(ctx context.Context) error
}

// CheckoutRepository serializes the checkout under its own storage key so
// a half-finished checkout survives a restart the same way the cart does.
type CheckoutRepository struct {
	store  storage.Store
	logger *logger.Logger
}

// NewCheckoutRepository creates a checkout repository over the given store.
func NewCheckoutRepository(store storage.Store, log *logger.Logger) *CheckoutRepository {
	return &CheckoutRepository{
		store:  store,
		logger: log.WithComponent("checkout_repository"),
	}
}

// Load reads the persisted checkout snapshot, if any.
func (r *CheckoutRepository) Load(ctx context.Context) (*models.Checkout, bool) {
	data, err := r.store.Get(ctx, storage.KeyCheckout)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("Failed to read checkout, treating as absent", "error", err)
		}
		return nil, false
	}

	var checkout models.Checkout
	if err := json.Unmarshal(data, &checkout); err != nil {
		r.logger.Warn("Failed to parse persisted checkout, treating as absent", "error", err)
		return nil, false
	}

	return &checkout, true
}

// Save persists the checkout snapshot.
func (r *CheckoutRepository) Save(ctx context.Context, checkout models.Checkout) error {
	data, err := json.Marshal(checkout)
	if err != nil {
		r.logger.Error("Failed to serialize checkout", "error", err)
		return fmt.Errorf("failed to serialize checkout: %v", err)
	}

	if err := r.store.Set(ctx, storage.KeyCheckout, data); err != nil {
		r.logger.Error("Failed to persist checkout", "error", err)
		return err
	}

	return nil
}

// Clear removes the checkout snapshot.
func (r *CheckoutRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, storage.KeyCheckout); err != nil {
		r.logger.Error("Failed to clear checkout", "error", err)
		return err
	}
	return nil
}
