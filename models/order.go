package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status assigned to every freshly placed order.
// Status transitions belong to a fulfilment system that does not exist here.
const OrderStatusPending = "Pending"

// PaymentCashOnDelivery is the only supported payment method.
const PaymentCashOnDelivery = "Cash on Delivery"

// DeliveryInfo is the delivery form snapshot collected during checkout.
// It is seeded from the logged-in account and editable before the order
// is placed; it is never persisted on its own.
type DeliveryInfo struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Instructions string `json:"delivery_instructions,omitempty"`
}

// OrderItem is a line snapshot copied from the catalog at placement time,
// so later catalog or price changes never alter historical orders.
type OrderItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is immutable once created.
type Order struct {
	OrderID         string          `json:"order_id"`
	UserEmail       string          `json:"user_email"`
	OrderDate       time.Time       `json:"order_date"`
	Items           []OrderItem     `json:"items"`
	DeliveryInfo    DeliveryInfo    `json:"delivery_info"`
	PaymentMethod   string          `json:"payment_method"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	DeliveryAddress string          `json:"delivery_address"`
}
