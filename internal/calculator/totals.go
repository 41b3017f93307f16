// Package calculator holds the money rules for bills: line totals, tax
// application, and due computation. All functions are pure.
package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/models"
)

// MoneyPlaces is the number of decimal places money is kept at (paise).
const MoneyPlaces = 2

// MaxMoney is the largest amount accepted for any price, payment, tax or
// total. Storage keeps money as int64 paise.
var MaxMoney = decimal.New(1, 13)

var (
	// ErrNegativeDue is returned when a payment would exceed the amount owed.
	ErrNegativeDue = errors.New("payment exceeds due amount")

	// ErrNonPositivePayment is returned for payments of zero or less.
	ErrNonPositivePayment = errors.New("payment amount must be positive")

	// ErrMoneyOutOfRange is returned for amounts larger than MaxMoney.
	ErrMoneyOutOfRange = errors.New("amount out of range")
)

// RoundMoney rounds d half away from zero to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// CheckMoney returns ErrMoneyOutOfRange when d exceeds MaxMoney in
// absolute value.
func CheckMoney(d decimal.Decimal) error {
	if d.Abs().GreaterThan(MaxMoney) {
		return ErrMoneyOutOfRange
	}
	return nil
}

// Line is a priced cart line used for total computation.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Totals is the result of pricing a bill.
type Totals struct {
	// Subtotal is the sum of UnitPrice x Quantity over all lines.
	Subtotal decimal.Decimal

	// Tax is CGST + SGST + IGST, zero for retail bills.
	Tax decimal.Decimal

	// Total is Subtotal + Tax.
	Total decimal.Decimal
}

// ItemSubtotal sums UnitPrice x Quantity over lines.
func ItemSubtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return RoundMoney(sum)
}

// BillTotals computes the subtotal and grand total for a bill.
// Taxes only apply to wholesaler bills; for retail bills they are ignored.
func BillTotals(lines []Line, customerType models.CustomerType, taxes models.WholesaleDetails) Totals {
	subtotal := ItemSubtotal(lines)
	tax := decimal.Zero
	if customerType == models.CustomerWholesaler {
		tax = RoundMoney(taxes.TaxTotal())
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Due returns total - paid, or ErrNegativeDue if paid exceeds total.
func Due(total, paid decimal.Decimal) (decimal.Decimal, error) {
	due := RoundMoney(total).Sub(RoundMoney(paid))
	if due.IsNegative() {
		return decimal.Zero, ErrNegativeDue
	}
	return due, nil
}

// ApplyPayment adds amount to an existing paid amount and returns the new
// paid and due amounts. It fails with ErrNonPositivePayment for amounts of
// zero or less and ErrNegativeDue when the payment is larger than what is owed.
func ApplyPayment(total, paid, amount decimal.Decimal) (newPaid, newDue decimal.Decimal, err error) {
	amount = RoundMoney(amount)
	if !amount.IsPositive() {
		return paid, total.Sub(paid), ErrNonPositivePayment
	}
	newPaid = RoundMoney(paid).Add(amount)
	newDue, err = Due(total, newPaid)
	if err != nil {
		return paid, total.Sub(paid), err
	}
	return newPaid, newDue, nil
}
