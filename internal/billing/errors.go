package billing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBill is returned when a draft is malformed, e.g. a missing
	// customer name or a non-positive quantity.
	ErrInvalidBill = errors.New("invalid bill")

	// ErrProductNotFound is returned when a cart line references a product
	// that does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a cart asks for more bags than
	// are in stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrOverPayment is returned when a payment would leave a negative due.
	ErrOverPayment = errors.New("payment exceeds due amount")

	// ErrInvalidAmount is returned for payment amounts of zero or less.
	ErrInvalidAmount = errors.New("payment amount must be positive")

	// ErrBillNotFound is returned when a bill does not exist.
	ErrBillNotFound = errors.New("bill not found")
)

// ProductError reports a cart line that could not be billed. It wraps
// ErrProductNotFound or ErrInsufficientStock and carries the product name
// so the message can be shown to the cashier as is.
type ProductError struct {
	Err         error
	ProductID   string
	ProductName string

	// Requested and Available are set for ErrInsufficientStock.
	Requested int
	Available int
}

func (e *ProductError) Error() string {
	if errors.Is(e.Err, ErrInsufficientStock) {
		return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
			e.ProductName, e.Requested, e.Available)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.ProductName)
}

func (e *ProductError) Unwrap() error {
	return e.Err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidBill, fmt.Sprintf(format, args...))
}
