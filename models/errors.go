package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors the services return and the handlers map to HTTP responses.
var (
	// ErrLoginRequired signals that checkout was reached without a session.
	ErrLoginRequired = errors.New("login required")

	// ErrEmptyCart signals that checkout was reached with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutNotStarted means a checkout operation arrived before Start.
	ErrCheckoutNotStarted = errors.New("checkout not started")

	// ErrCheckoutPlaced means the checkout already committed; it is terminal.
	ErrCheckoutPlaced = errors.New("order already placed")

	// ErrDuplicateAccount means signup hit an email that is already registered.
	ErrDuplicateAccount = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is deliberately generic: it never distinguishes
	// an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoSession means an operation needing a signed-in user found none.
	ErrNoSession = errors.New("no active session")

	// ErrItemNotFound means a catalog lookup missed.
	ErrItemNotFound = errors.New("menu item not found")
)

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field form errors. Handlers surface the
// fields inline and keep the submission blocked.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
