package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
)

const paymentColumns = "id, company_name, amount_minor, payment_mode, status, reference_no, note, date, created_at"

func scanPayment(row rowScanner) (*models.Payment, error) {
	payment := &models.Payment{}
	var (
		amountMinor     int64
		mode, status    string
		referenceNo     sql.NullString
		note            sql.NullString
		date, createdAt int64
	)
	if err := row.Scan(&payment.ID, &payment.CompanyName, &amountMinor, &mode, &status,
		&referenceNo, &note, &date, &createdAt); err != nil {
		return nil, err
	}
	payment.Amount = fromMinor(amountMinor)
	payment.Mode = models.PaymentMode(mode)
	payment.Status = models.PaymentStatus(status)
	if referenceNo.Valid {
		payment.ReferenceNo = referenceNo.String
	}
	if note.Valid {
		payment.Note = note.String
	}
	payment.Date = fromUnix(date)
	payment.CreatedAt = fromUnix(createdAt)
	return payment, nil
}

// CreatePayment persists a new supplier payment to the database.
func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) error {
	// Generate ID if not set
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = s.now().UTC()
	}
	if payment.Date.IsZero() {
		payment.Date = payment.CreatedAt
	}

	_, err := s.db.ExecContext(ctx, s.q(
		"INSERT INTO payments ("+paymentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		payment.ID, payment.CompanyName, toMinor(payment.Amount), string(payment.Mode), string(payment.Status),
		nullIfEmpty(payment.ReferenceNo), nullIfEmpty(payment.Note), payment.Date.Unix(), payment.CreatedAt.Unix(),
	)
	if err != nil {
		return s.wrap(fmt.Errorf("failed to insert payment: %w", err))
	}
	return nil
}

// GetPayment retrieves a payment by ID.
func (s *Store) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := scanPayment(s.db.QueryRowContext(ctx, s.q(
		"SELECT "+paymentColumns+" FROM payments WHERE id = ?"), paymentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %s", storage.ErrNotFound, paymentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

// ListPayments retrieves all payments, newest first.
func (s *Store) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, s.q(
		"SELECT "+paymentColumns+" FROM payments ORDER BY date DESC, created_at DESC, id"))
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}

// UpdatePayment rewrites the mutable fields of a payment.
func (s *Store) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	res, err := s.db.ExecContext(ctx, s.q(
		`UPDATE payments SET company_name = ?, amount_minor = ?, payment_mode = ?, status = ?,
		 reference_no = ?, note = ?, date = ? WHERE id = ?`),
		payment.CompanyName, toMinor(payment.Amount), string(payment.Mode), string(payment.Status),
		nullIfEmpty(payment.ReferenceNo), nullIfEmpty(payment.Note), payment.Date.Unix(), payment.ID,
	)
	if err != nil {
		return s.wrap(fmt.Errorf("failed to update payment: %w", err))
	}
	return requireAffected(res, "payment", payment.ID)
}

// DeletePayment removes a payment by ID.
func (s *Store) DeletePayment(ctx context.Context, paymentID string) error {
	res, err := s.db.ExecContext(ctx, s.q("DELETE FROM payments WHERE id = ?"), paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return requireAffected(res, "payment", paymentID)
}
