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

// OrderRepositoryInterface persists the append-only placed-order list.
type OrderRepositoryInterface interface {
	GetAll(ctx context.Context) []models.Order
	GetByEmail(ctx context.Context, email string) []models.Order
	Append(ctx context.Context, order models.Order) error
}

// OrderRepository serializes orders under the orders storage key. Orders
// are immutable once appended; there is no update or delete.
type OrderRepository struct {
	store  storage.Store
	logger *logger.Logger
}

// NewOrderRepository creates an order repository over the given store.
func NewOrderRepository(store storage.Store, log *logger.Logger) *OrderRepository {
	return &OrderRepository{
		store:  store,
		logger: log.WithComponent("order_repository"),
	}
}

// GetAll reads every placed order. Missing or corrupted data yields an
// empty list.
func (r *OrderRepository) GetAll(ctx context.Context) []models.Order {
	data, err := r.store.Get(ctx, storage.KeyOrders)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("Failed to read orders, treating as empty", "error", err)
		}
		return []models.Order{}
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		r.logger.Warn("Failed to parse persisted orders, treating as empty", "error", err)
		return []models.Order{}
	}

	return orders
}

// GetByEmail returns the orders placed by the given user, oldest first.
func (r *OrderRepository) GetByEmail(ctx context.Context, email string) []models.Order {
	matched := []models.Order{}
	for _, order := range r.GetAll(ctx) {
		if order.UserEmail == email {
			matched = append(matched, order)
		}
	}
	return matched
}

// Append adds a newly placed order to the persisted list.
func (r *OrderRepository) Append(ctx context.Context, order models.Order) error {
	orders := r.GetAll(ctx)
	orders = append(orders, order)

	data, err := json.Marshal(orders)
	if err != nil {
		r.logger.Error("Failed to serialize orders", "error", err)
		return fmt.Errorf("failed to serialize orders: %v", err)
	}

	if err := r.store.Set(ctx, storage.KeyOrders, data); err != nil {
		r.logger.Error("Failed to persist orders", "error", err)
		return err
	}

	r.logger.Info("Order persisted", "order_id", order.OrderID, "user_email", order.UserEmail)
	return nil
}
