package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"chaibisket/internal/repositories"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// CheckoutServiceInterface drives the linear checkout state machine:
// DeliveryInfo -> PaymentMethod -> Review -> Placed. Steps 1-3 navigate
// forward and backward; placing the order is terminal.
type CheckoutServiceInterface interface {
	Start(ctx context.Context) (*models.Checkout, error)
	Get(ctx context.Context) (*models.Checkout, error)
	SetDeliveryInfo(ctx context.Context, info models.DeliveryInfo) (*models.Checkout, error)
	Advance(ctx context.Context) (*models.Checkout, error)
	Back(ctx context.Context) (*models.Checkout, error)
	PlaceOrder(ctx context.Context) (*models.Order, error)
}

// CheckoutService snapshots the cart into an immutable order on commit.
type CheckoutService struct {
	cartRepo     repositories.CartRepositoryInterface
	menuRepo     repositories.MenuRepositoryInterface
	orderRepo    repositories.OrderRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	checkoutRepo repositories.CheckoutRepositoryInterface
	logger       *logger.Logger

	now func() time.Time
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(
	cartRepo repositories.CartRepositoryInterface,
	menuRepo repositories.MenuRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	checkoutRepo repositories.CheckoutRepositoryInterface,
	log *logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:     cartRepo,
		menuRepo:     menuRepo,
		orderRepo:    orderRepo,
		accountRepo:  accountRepo,
		checkoutRepo: checkoutRepo,
		logger:       log.WithComponent("checkout_service"),
		now:          time.Now,
	}
}

// Start begins a fresh checkout at the delivery step, seeding the form
// from the signed-in account. Both entry guards apply: no session yields
// ErrLoginRequired, an empty cart yields ErrEmptyCart.
func (s *CheckoutService) Start(ctx context.Context) (*models.Checkout, error) {
	session, _, err := s.guards(ctx)
	if err != nil {
		return nil, err
	}

	checkout := models.Checkout{
		Step: models.StepDeliveryInfo,
		DeliveryInfo: models.DeliveryInfo{
			Name:    session.Name,
			Email:   session.Email,
			Phone:   session.Phone,
			Address: session.Address,
			City:    session.City,
			State:   session.State,
			ZipCode: session.ZipCode,
		},
		PaymentMethod: models.PaymentCashOnDelivery,
	}

	if err := s.checkoutRepo.Save(ctx, checkout); err != nil {
		return nil, err
	}

	s.logger.Info("Checkout started", "user_email", session.Email)
	return &checkout, nil
}

// Get returns the in-progress checkout.
func (s *CheckoutService) Get(ctx context.Context) (*models.Checkout, error) {
	checkout, ok := s.checkoutRepo.Load(ctx)
	if !ok {
		return nil, models.ErrCheckoutNotStarted
	}
	return checkout, nil
}

// SetDeliveryInfo validates and stores the delivery form. Allowed at any
// step before Placed.
func (s *CheckoutService) SetDeliveryInfo(ctx context.Context, info models.DeliveryInfo) (*models.Checkout, error) {
	checkout, err := s.mutableCheckout(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateDeliveryInfo(info); err != nil {
		s.logger.Warn("Delivery info rejected", "error", err)
		return nil, err
	}

	checkout.DeliveryInfo = info
	if err := s.checkoutRepo.Save(ctx, *checkout); err != nil {
		return nil, err
	}

	return checkout, nil
}

// Advance moves to the next step. Leaving the delivery step requires a
// valid delivery form; the review step commits via PlaceOrder, not Advance.
func (s *CheckoutService) Advance(ctx context.Context) (*models.Checkout, error) {
	checkout, err := s.mutableCheckout(ctx)
	if err != nil {
		return nil, err
	}

	switch checkout.Step {
	case models.StepDeliveryInfo:
		if err := validateDeliveryInfo(checkout.DeliveryInfo); err != nil {
			s.logger.Warn("Cannot advance: delivery info incomplete", "error", err)
			return nil, err
		}
		checkout.Step = models.StepPaymentMethod
	case models.StepPaymentMethod:
		checkout.Step = models.StepReview
	case models.StepReview:
		return nil, fmt.Errorf("review step commits by placing the order")
	}

	if err := s.checkoutRepo.Save(ctx, *checkout); err != nil {
		return nil, err
	}

	s.logger.Debug("Checkout advanced", "step", checkout.Step.String())
	return checkout, nil
}

// Back moves to the previous step; the delivery step is the floor.
func (s *CheckoutService) Back(ctx context.Context) (*models.Checkout, error) {
	checkout, err := s.mutableCheckout(ctx)
	if err != nil {
		return nil, err
	}

	if checkout.Step > models.StepDeliveryInfo {
		checkout.Step--
		if err := s.checkoutRepo.Save(ctx, *checkout); err != nil {
			return nil, err
		}
	}

	return checkout, nil
}

// PlaceOrder commits the checkout from the review step: it snapshots the
// cart against the catalog, derives the totals, persists the order,
// awards floor(subtotal) loyalty points and clears the cart. Any
// persistence failure aborts with an error rather than faking success.
func (s *CheckoutService) PlaceOrder(ctx context.Context) (*models.Order, error) {
	checkout, ok := s.checkoutRepo.Load(ctx)
	if !ok {
		return nil, models.ErrCheckoutNotStarted
	}
	if checkout.Step == models.StepPlaced {
		return nil, models.ErrCheckoutPlaced
	}
	if checkout.Step != models.StepReview {
		return nil, fmt.Errorf("order can only be placed from the review step (current: %s)", checkout.Step)
	}

	session, cart, err := s.guards(ctx)
	if err != nil {
		return nil, err
	}

	// Line snapshots copy name and price so later catalog changes never
	// alter this order. Unknown ids are skipped.
	items := []models.OrderItem{}
	subtotal := decimal.Zero
	for _, line := range cart.Lines {
		menuItem, err := s.menuRepo.GetByID(line.ItemID)
		if err != nil {
			s.logger.Warn("Cart line references unknown item, skipping", "item_id", line.ItemID)
			continue
		}
		items = append(items, models.OrderItem{
			ID:       menuItem.ID,
			Name:     menuItem.Name,
			Price:    menuItem.Price,
			Quantity: line.Quantity,
		})
		subtotal = subtotal.Add(menuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(tax).Add(DeliveryFee)

	userEmail := session.Email
	if userEmail == "" {
		userEmail = checkout.DeliveryInfo.Email
	}

	info := checkout.DeliveryInfo
	order := models.Order{
		OrderID:       "ORD-" + uuid.NewString(),
		UserEmail:     userEmail,
		OrderDate:     s.now(),
		Items:         items,
		DeliveryInfo:  info,
		PaymentMethod: checkout.PaymentMethod,
		Subtotal:      subtotal,
		Tax:           tax,
		DeliveryFee:   DeliveryFee,
		Total:         total,
		Status:        models.OrderStatusPending,
		DeliveryAddress: fmt.Sprintf("%s, %s, %s %s",
			info.Address, info.City, info.State, info.ZipCode),
	}

	if err := s.orderRepo.Append(ctx, order); err != nil {
		return nil, err
	}

	if err := s.awardLoyaltyPoints(ctx, session, subtotal); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Clear(ctx); err != nil {
		return nil, err
	}

	checkout.Step = models.StepPlaced
	if err := s.checkoutRepo.Save(ctx, *checkout); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		"order_id", order.OrderID,
		"user_email", order.UserEmail,
		"total", order.Total,
		"items", len(order.Items))
	return &order, nil
}

// guards enforces the two checkout entry conditions.
func (s *CheckoutService) guards(ctx context.Context) (*models.Session, models.Cart, error) {
	session, ok := s.accountRepo.GetSession(ctx)
	if !ok {
		s.logger.Warn("Checkout blocked: no session")
		return nil, models.Cart{}, models.ErrLoginRequired
	}

	cart := s.cartRepo.Load(ctx)
	if cart.IsEmpty() {
		s.logger.Warn("Checkout blocked: empty cart", "user_email", session.Email)
		return nil, models.Cart{}, models.ErrEmptyCart
	}

	return session, cart, nil
}

// mutableCheckout loads the checkout and rejects mutation after Placed.
func (s *CheckoutService) mutableCheckout(ctx context.Context) (*models.Checkout, error) {
	checkout, ok := s.checkoutRepo.Load(ctx)
	if !ok {
		return nil, models.ErrCheckoutNotStarted
	}
	if checkout.Step == models.StepPlaced {
		return nil, models.ErrCheckoutPlaced
	}
	return checkout, nil
}

// awardLoyaltyPoints adds floor(subtotal) points to the account and the
// session copy.
func (s *CheckoutService) awardLoyaltyPoints(ctx context.Context, session *models.Session, subtotal decimal.Decimal) error {
	points := int(subtotal.IntPart())

	account, found := s.accountRepo.FindByEmail(ctx, session.Email)
	if !found {
		s.logger.Error("Session points at a missing account", "email", session.Email)
		return fmt.Errorf("account %s not found", session.Email)
	}

	account.LoyaltyPoints += points
	if err := s.accountRepo.Update(ctx, session.Email, *account); err != nil {
		return err
	}

	updated := models.SessionFrom(*account)
	if err := s.accountRepo.SaveSession(ctx, updated); err != nil {
		return err
	}

	s.logger.Info("Loyalty points awarded",
		"email", account.Email,
		"points", points,
		"balance", account.LoyaltyPoints)
	return nil
}

// validateDeliveryInfo checks the required delivery form fields.
func validateDeliveryInfo(info models.DeliveryInfo) error {
	verr := &models.ValidationError{}

	if info.Name == "" {
		verr.Add("name", "Full name is required")
	}
	if info.Email == "" {
		verr.Add("email", "Email is required")
	} else if !emailPattern.MatchString(info.Email) {
		verr.Add("email", "Please enter a valid email")
	}
	if info.Phone == "" {
		verr.Add("phone", "Phone number is required")
	}
	if info.Address == "" {
		verr.Add("address", "Address is required")
	}
	if info.City == "" {
		verr.Add("city", "City is required")
	}
	if info.State == "" {
		verr.Add("state", "State is required")
	}
	if info.ZipCode == "" {
		verr.Add("zip_code", "ZIP code is required")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
