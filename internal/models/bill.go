package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerType distinguishes retail bills from wholesale (taxed) bills.
type CustomerType string

const (
	CustomerRetailer   CustomerType = "RETAILER"
	CustomerWholesaler CustomerType = "WHOLESALER"
)

// ParseCustomerType converts s to a CustomerType. An empty string yields
// CustomerRetailer.
func ParseCustomerType(s string) (CustomerType, error) {
	switch CustomerType(strings.ToUpper(strings.TrimSpace(s))) {
	case "", CustomerRetailer:
		return CustomerRetailer, nil
	case CustomerWholesaler:
		return CustomerWholesaler, nil
	}
	return "", fmt.Errorf("unknown customer type %q", s)
}

// Customer holds the customer details snapshotted onto a bill.
type Customer struct {
	Name    string
	Phone   string
	Address string
	Type    CustomerType

	// Tax registration numbers, only meaningful for wholesalers.
	GSTIN string
	CST   string
	TIN   string
}

// WholesaleDetails are the transport and tax fields printed on wholesale bills.
type WholesaleDetails struct {
	HSNCode     string
	VehicleNo   string
	SupplierRef string
	BookNo      string

	// CGST, SGST and IGST are absolute tax amounts added to the item subtotal.
	CGST decimal.Decimal
	SGST decimal.Decimal
	IGST decimal.Decimal
}

// TaxTotal returns CGST + SGST + IGST.
func (w WholesaleDetails) TaxTotal() decimal.Decimal {
	return w.CGST.Add(w.SGST).Add(w.IGST)
}

// Bill represents an issued bill.
// The item list is immutable once created; only PaidAmount and DueAmount
// change afterwards, through payment recording.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// BillNumber is the human-facing sequential number, starting at 1.
	BillNumber int64

	Customer  Customer
	Wholesale WholesaleDetails

	// Items are the bill lines in the order they were submitted.
	Items []BillItem

	// TotalAmount is the item subtotal plus wholesale taxes.
	TotalAmount decimal.Decimal

	// PaidAmount is the sum of all payments received against the bill.
	PaidAmount decimal.Decimal

	// DueAmount is TotalAmount - PaidAmount. Never negative once persisted.
	DueAmount decimal.Decimal

	CreatedAt time.Time
}

// Settled reports whether nothing remains due on the bill.
func (b *Bill) Settled() bool {
	return !b.DueAmount.IsPositive()
}

// BillItem represents one line on a bill.
type BillItem struct {
	// ProductID references the catalog product. The product may since have
	// been deleted.
	ProductID string

	// ProductName is the product name at the time of sale.
	ProductName string

	// HSNCode is an optional per-line harmonised code.
	HSNCode string

	Quantity int

	// Price is the unit price at the time of sale.
	Price decimal.Decimal

	// BagWeight is the bag weight at the time of sale, if known.
	BagWeight *int
}

// LineTotal returns Price x Quantity.
func (i BillItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
