// Package storage defines the key-value persistence boundary of the
// ordering service. The storefront originally kept its state in a handful
// of browser-local keys; the same keys live here behind a small Store
// interface so the backing engine can be swapped without touching the
// repositories built on top of it.
package storage

import (
	"context"
	"errors"
)

// Persisted keys. One serialized record list (or record) per key.
const (
	KeyCart     = "cart"     // current cart line list
	KeyUsers    = "users"    // all registered accounts
	KeySession  = "user"     // current session snapshot
	KeyOrders   = "orders"   // all placed orders
	KeyCheckout = "checkout" // in-progress checkout snapshot
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is the minimal get/set/remove contract every driver implements.
// Values are opaque serialized blobs; interpretation belongs to the
// repositories.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
