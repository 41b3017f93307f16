package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is how a supplier payment was made.
type PaymentMode string

const (
	PaymentOnline PaymentMode = "ONLINE"
	PaymentCheque PaymentMode = "CHEQUE"
	PaymentCash   PaymentMode = "CASH"
	PaymentNEFT   PaymentMode = "NEFT"
	PaymentRTGS   PaymentMode = "RTGS"
	PaymentUPI    PaymentMode = "UPI"
)

// ParsePaymentMode converts s to a PaymentMode. An empty string yields
// PaymentOnline.
func ParsePaymentMode(s string) (PaymentMode, error) {
	mode := PaymentMode(strings.ToUpper(strings.TrimSpace(s)))
	switch mode {
	case "":
		return PaymentOnline, nil
	case PaymentOnline, PaymentCheque, PaymentCash, PaymentNEFT, PaymentRTGS, PaymentUPI:
		return mode, nil
	}
	return "", fmt.Errorf("unknown payment mode %q", s)
}

// PaymentStatus tracks whether a payment's amount is known.
type PaymentStatus string

const (
	// PaymentPending marks a blank cheque: issued, amount not yet known.
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
)

// ParsePaymentStatus converts s to a PaymentStatus. An empty string yields
// the zero value so callers can apply their own default.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case "", PaymentPending, PaymentCompleted:
		return status, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Payment represents a payment made to a supplier.
// Payments are not linked to bills or products.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// CompanyName is the supplier that was paid.
	CompanyName string

	// Amount is the paid amount. Zero means the amount is not yet known.
	Amount decimal.Decimal

	Mode   PaymentMode
	Status PaymentStatus

	// ReferenceNo is an optional cheque or transaction reference.
	ReferenceNo string

	// Note is an optional free-form description.
	Note string

	// Date is when the payment was made.
	Date time.Time

	// CreatedAt is when the payment was recorded.
	CreatedAt time.Time
}

// BlankCheque reports whether the payment is a cheque with no amount yet.
func (p *Payment) BlankCheque() bool {
	return p.Mode == PaymentCheque && p.Amount.IsZero()
}
