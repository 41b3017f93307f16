package models

import "github.com/shopspring/decimal"

const (
	// MaxProductNameLength is the longest product name the catalog accepts.
	MaxProductNameLength = 60

	// DefaultBagWeight is the bag weight in kilograms used when none is given.
	DefaultBagWeight = 50
)

// Product represents a catalog entry.
type Product struct {
	// ID is the unique identifier for the product (UUID format).
	ID string

	// Name is the display name, at most MaxProductNameLength characters.
	Name string

	// Price is the current unit price per bag.
	Price decimal.Decimal

	// Stock is the number of bags on hand. Billing never drives it below zero.
	Stock int

	// BagWeight is the weight of one bag in kilograms.
	BagWeight int

	// Category groups products for display (e.g. "Urea", "DAP").
	Category string
}

// Available reports whether the product can be sold.
func (p *Product) Available() bool {
	return p.Stock > 0
}
