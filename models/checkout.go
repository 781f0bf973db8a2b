package models

// CheckoutStep enumerates the linear checkout states. Steps 1-3 are
// navigable forward and backward; Placed is terminal.
type CheckoutStep int

const (
	StepDeliveryInfo CheckoutStep = iota + 1
	StepPaymentMethod
	StepReview
	StepPlaced
)

// String returns the display name of a checkout step.
func (s CheckoutStep) String() string {
	switch s {
	case StepDeliveryInfo:
		return "delivery"
	case StepPaymentMethod:
		return "payment"
	case StepReview:
		return "review"
	case StepPlaced:
		return "placed"
	default:
		return "unknown"
	}
}

// Checkout is the persisted snapshot of an in-progress checkout.
type Checkout struct {
	Step          CheckoutStep `json:"step"`
	DeliveryInfo  DeliveryInfo `json:"delivery_info"`
	PaymentMethod string       `json:"payment_method"`
}
