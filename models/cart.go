package models

import "github.com/shopspring/decimal"

// CartLine is one (item, quantity) pairing in the order-in-progress.
// Lines are keyed by item ID; quantity is always >= 1 for a stored line.
type CartLine struct {
	ItemID   int `json:"id"`
	Quantity int `json:"quantity"`
}

// Cart is the ordered collection of lines for the current visitor.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the sum of quantities across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// CartTotals holds the derived amounts for a cart.
// GrandTotal = Subtotal + Tax + DeliveryFee.
type CartTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	GrandTotal  decimal.Decimal `json:"total"`
}
