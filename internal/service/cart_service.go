package service

import (
	"context"

	"github.com/shopspring/decimal"

	"chaibisket/internal/repositories"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// Pricing constants: flat 8% tax on the subtotal and a flat delivery fee
// regardless of distance or order size.
var (
	TaxRate     = decimal.RequireFromString("0.08")
	DeliveryFee = decimal.RequireFromString("2.99")
)

// CartServiceInterface mutates the persisted cart and derives its totals.
type CartServiceInterface interface {
	GetCart(ctx context.Context) models.Cart
	AddItem(ctx context.Context, itemID int) (models.Cart, error)
	SetQuantity(ctx context.Context, itemID, quantity int) (models.Cart, error)
	RemoveItem(ctx context.Context, itemID int) (models.Cart, error)
	Clear(ctx context.Context) error
	Totals(ctx context.Context) models.CartTotals
}

// CartService applies cart mutations and persists the full cart after
// every one of them.
type CartService struct {
	cartRepo repositories.CartRepositoryInterface
	menuRepo repositories.MenuRepositoryInterface
	logger   *logger.Logger
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repositories.CartRepositoryInterface, menuRepo repositories.MenuRepositoryInterface, log *logger.Logger) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		logger:   log.WithComponent("cart_service"),
	}
}

// GetCart returns the current cart.
func (s *CartService) GetCart(ctx context.Context) models.Cart {
	return s.cartRepo.Load(ctx)
}

// AddItem increments the line for itemID by one, inserting a new line
// with quantity 1 when none exists. The item must be in the catalog.
func (s *CartService) AddItem(ctx context.Context, itemID int) (models.Cart, error) {
	if _, err := s.menuRepo.GetByID(itemID); err != nil {
		s.logger.Warn("Add to cart rejected: unknown item", "item_id", itemID)
		return models.Cart{}, err
	}

	cart := s.cartRepo.Load(ctx)

	found := false
	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemID {
			cart.Lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Lines = append(cart.Lines, models.CartLine{ItemID: itemID, Quantity: 1})
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return models.Cart{}, err
	}

	s.logger.Info("Item added to cart", "item_id", itemID, "item_count", cart.ItemCount())
	return cart, nil
}

// SetQuantity overwrites the line's quantity. A quantity below 1 removes
// the line instead.
func (s *CartService) SetQuantity(ctx context.Context, itemID, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return s.RemoveItem(ctx, itemID)
	}

	cart := s.cartRepo.Load(ctx)

	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemID {
			cart.Lines[i].Quantity = quantity
			if err := s.cartRepo.Save(ctx, cart); err != nil {
				return models.Cart{}, err
			}
			s.logger.Info("Cart quantity updated", "item_id", itemID, "quantity", quantity)
			return cart, nil
		}
	}

	// Setting a quantity for an absent line inserts it, so a stale client
	// view cannot lose an update.
	if _, err := s.menuRepo.GetByID(itemID); err != nil {
		return models.Cart{}, err
	}

	cart.Lines = append(cart.Lines, models.CartLine{ItemID: itemID, Quantity: quantity})
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return models.Cart{}, err
	}

	return cart, nil
}

// RemoveItem deletes the line if present; removing an absent line is not
// an error.
func (s *CartService) RemoveItem(ctx context.Context, itemID int) (models.Cart, error) {
	cart := s.cartRepo.Load(ctx)

	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			if err := s.cartRepo.Save(ctx, cart); err != nil {
				return models.Cart{}, err
			}
			s.logger.Info("Item removed from cart", "item_id", itemID)
			return cart, nil
		}
	}

	return cart, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}

// Totals derives subtotal, tax, delivery fee and grand total for the
// current cart. Lines whose item is missing from the catalog are skipped.
func (s *CartService) Totals(ctx context.Context) models.CartTotals {
	return s.totalsFor(s.cartRepo.Load(ctx))
}

func (s *CartService) totalsFor(cart models.Cart) models.CartTotals {
	subtotal := decimal.Zero

	for _, line := range cart.Lines {
		item, err := s.menuRepo.GetByID(line.ItemID)
		if err != nil {
			s.logger.Warn("Cart line references unknown item, skipping", "item_id", line.ItemID)
			continue
		}
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tax := subtotal.Mul(TaxRate)

	return models.CartTotals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: DeliveryFee,
		GrandTotal:  subtotal.Add(tax).Add(DeliveryFee),
	}
}
