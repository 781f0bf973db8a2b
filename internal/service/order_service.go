package service

import (
	"context"

	"github.com/shopspring/decimal"

	"chaibisket/internal/repositories"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// ProfileSummary aggregates the signed-in user's order history for the
// loyalty tab: point balance, order count and lifetime spend.
type ProfileSummary struct {
	LoyaltyPoints int             `json:"loyalty_points"`
	OrderCount    int             `json:"order_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
}

// OrderServiceInterface serves the signed-in user's order history.
type OrderServiceInterface interface {
	History(ctx context.Context) ([]models.Order, error)
	Summary(ctx context.Context) (*ProfileSummary, error)
}

// OrderService reads placed orders scoped to the current session.
type OrderService struct {
	orderRepo   repositories.OrderRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	logger      *logger.Logger
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repositories.OrderRepositoryInterface, accountRepo repositories.AccountRepositoryInterface, log *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		logger:      log.WithComponent("order_service"),
	}
}

// History returns the current user's orders, oldest first.
func (s *OrderService) History(ctx context.Context) ([]models.Order, error) {
	session, ok := s.accountRepo.GetSession(ctx)
	if !ok {
		return nil, models.ErrNoSession
	}

	orders := s.orderRepo.GetByEmail(ctx, session.Email)
	s.logger.Debug("Fetched order history", "user_email", session.Email, "count", len(orders))
	return orders, nil
}

// Summary derives the loyalty-tab numbers from the order history.
func (s *OrderService) Summary(ctx context.Context) (*ProfileSummary, error) {
	session, ok := s.accountRepo.GetSession(ctx)
	if !ok {
		return nil, models.ErrNoSession
	}

	orders := s.orderRepo.GetByEmail(ctx, session.Email)

	totalSpent := decimal.Zero
	for _, order := range orders {
		totalSpent = totalSpent.Add(order.Total)
	}

	return &ProfileSummary{
		LoyaltyPoints: session.LoyaltyPoints,
		OrderCount:    len(orders),
		TotalSpent:    totalSpent,
	}, nil
}
