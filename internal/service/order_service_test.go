package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"chaibisket/models"
)

func placedOrder(email, orderID, total string, day int) models.Order {
	return models.Order{
		OrderID:   orderID,
		UserEmail: email,
		OrderDate: time.Date(2025, time.June, day, 12, 0, 0, 0, time.UTC),
		Total:     decimal.RequireFromString(total),
		Status:    models.OrderStatusPending,
	}
}

func TestHistoryScopedToCurrentUser(t *testing.T) {
	env := newTestEnv()
	log := testLogger()
	accounts := NewAccountService(env.accountRepo, log)
	orders := NewOrderService(env.orderRepo, env.accountRepo, log)
	ctx := context.Background()

	_, err := accounts.Signup(ctx, signupRequest())
	require.NoError(t, err)

	require.NoError(t, env.orderRepo.Append(ctx, placedOrder("priya@example.com", "ORD-a", "26.71", 1)))
	require.NoError(t, env.orderRepo.Append(ctx, placedOrder("other@example.com", "ORD-b", "10.00", 2)))
	require.NoError(t, env.orderRepo.Append(ctx, placedOrder("priya@example.com", "ORD-c", "14.50", 3)))

	history, err := orders.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "ORD-a", history[0].OrderID)
	require.Equal(t, "ORD-c", history[1].OrderID)
}

func TestHistoryRequiresSession(t *testing.T) {
	env := newTestEnv()
	orders := NewOrderService(env.orderRepo, env.accountRepo, testLogger())

	_, err := orders.History(context.Background())
	require.ErrorIs(t, err, models.ErrNoSession)
}

func TestSummary(t *testing.T) {
	env := newTestEnv()
	log := testLogger()
	accounts := NewAccountService(env.accountRepo, log)
	orders := NewOrderService(env.orderRepo, env.accountRepo, log)
	ctx := context.Background()

	_, err := accounts.Signup(ctx, signupRequest())
	require.NoError(t, err)

	require.NoError(t, env.orderRepo.Append(ctx, placedOrder("priya@example.com", "ORD-a", "26.71", 1)))
	require.NoError(t, env.orderRepo.Append(ctx, placedOrder("priya@example.com", "ORD-c", "14.50", 3)))

	summary, err := orders.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, summary.OrderCount)
	require.Equal(t, 0, summary.LoyaltyPoints)
	require.True(t, summary.TotalSpent.Equal(decimal.RequireFromString("41.21")))
}
