// Package ledger records payments made to suppliers. The ledger is
// independent of bills and the catalog.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/calculator"
	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
)

// ErrInvalidPayment is returned when payment fields fail validation.
var ErrInvalidPayment = errors.New("invalid payment")

// Ledger validates and persists supplier payments.
type Ledger struct {
	store storage.PaymentStore
	now   func() time.Time
}

// New creates a Ledger over store.
func New(store storage.PaymentStore) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// Create records a new payment.
//
// Mode defaults to ONLINE and status to COMPLETED. A cheque with no amount
// is a blank cheque and is always recorded as PENDING; PENDING is rejected
// for anything else. A zero Date becomes the current time.
func (l *Ledger) Create(ctx context.Context, payment *models.Payment) error {
	payment.CompanyName = strings.TrimSpace(payment.CompanyName)
	if payment.CompanyName == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidPayment)
	}
	if payment.Amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidPayment)
	}
	if err := calculator.CheckMoney(payment.Amount); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayment, err)
	}
	payment.Amount = calculator.RoundMoney(payment.Amount)

	if payment.Mode == "" {
		payment.Mode = models.PaymentOnline
	}

	switch {
	case payment.BlankCheque():
		payment.Status = models.PaymentPending
	case payment.Status == models.PaymentPending:
		return fmt.Errorf("%w: only a cheque without an amount can be pending", ErrInvalidPayment)
	case payment.Status == "":
		payment.Status = models.PaymentCompleted
	}

	if payment.Date.IsZero() {
		payment.Date = l.now().UTC()
	}

	if err := l.store.CreatePayment(ctx, payment); err != nil {
		return err
	}
	slog.Info("Payment recorded",
		"payment_id", payment.ID,
		"company", payment.CompanyName,
		"mode", payment.Mode,
		"status", payment.Status,
	)
	return nil
}

// Amendment lists the fields of a payment that can be changed after it was
// recorded. Nil fields are left as they are.
type Amendment struct {
	Amount      *decimal.Decimal
	ReferenceNo *string
	Note        *string
}

// Amend applies a to the payment with the given ID. Filling in a positive
// amount marks the payment COMPLETED.
func (l *Ledger) Amend(ctx context.Context, paymentID string, a Amendment) (*models.Payment, error) {
	payment, err := l.store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if a.Amount != nil {
		if a.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount cannot be negative", ErrInvalidPayment)
		}
		if err := calculator.CheckMoney(*a.Amount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayment, err)
		}
		payment.Amount = calculator.RoundMoney(*a.Amount)
		if payment.Amount.IsPositive() {
			payment.Status = models.PaymentCompleted
		}
	}
	if a.ReferenceNo != nil {
		payment.ReferenceNo = strings.TrimSpace(*a.ReferenceNo)
	}
	if a.Note != nil {
		payment.Note = strings.TrimSpace(*a.Note)
	}

	if err := l.store.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}
	slog.Info("Payment amended", "payment_id", payment.ID, "status", payment.Status)
	return payment, nil
}

// Delete removes a payment.
func (l *Ledger) Delete(ctx context.Context, paymentID string) error {
	if err := l.store.DeletePayment(ctx, paymentID); err != nil {
		return err
	}
	slog.Info("Payment deleted", "payment_id", paymentID)
	return nil
}

// Get returns a payment by ID.
func (l *Ledger) Get(ctx context.Context, paymentID string) (*models.Payment, error) {
	return l.store.GetPayment(ctx, paymentID)
}

// List returns all payments, newest first.
func (l *Ledger) List(ctx context.Context) ([]*models.Payment, error) {
	return l.store.ListPayments(ctx)
}
