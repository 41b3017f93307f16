package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
)

// billSequence is the sequences row that numbers bills.
const billSequence = "bill"

// txn implements storage.Tx on a *sql.Tx.
type txn struct {
	tx    *sql.Tx
	store *Store
}

var _ storage.Tx = (*txn)(nil)

func (t *txn) LockProduct(ctx context.Context, productID string) (*models.Product, error) {
	return t.store.getProduct(ctx, t.tx, productID, true)
}

func (t *txn) DecrementStock(ctx context.Context, productID string, qty int) error {
	res, err := t.tx.ExecContext(ctx, t.store.q(
		"UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?"),
		qty, productID, qty,
	)
	if err != nil {
		return t.store.wrap(fmt.Errorf("failed to decrement stock: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: product %s", storage.ErrInsufficientStock, productID)
	}
	return nil
}

func (t *txn) NextBillNumber(ctx context.Context) (int64, error) {
	var next int64
	err := t.tx.QueryRowContext(ctx, t.store.q(
		"UPDATE sequences SET value = value + 1 WHERE name = ? RETURNING value"),
		billSequence,
	).Scan(&next)
	if err != nil {
		return 0, t.store.wrap(fmt.Errorf("failed to advance bill sequence: %w", err))
	}
	return next, nil
}

func (t *txn) InsertBill(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = t.store.now().UTC()
	}

	_, err := t.tx.ExecContext(ctx, t.store.q(
		"INSERT INTO bills ("+billColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		bill.ID, bill.BillNumber,
		bill.Customer.Name, bill.Customer.Phone, bill.Customer.Address, string(bill.Customer.Type),
		bill.Customer.GSTIN, bill.Customer.CST, bill.Customer.TIN,
		bill.Wholesale.HSNCode, bill.Wholesale.VehicleNo, bill.Wholesale.SupplierRef, bill.Wholesale.BookNo,
		toMinor(bill.Wholesale.CGST), toMinor(bill.Wholesale.SGST), toMinor(bill.Wholesale.IGST),
		toMinor(bill.TotalAmount), toMinor(bill.PaidAmount), toMinor(bill.DueAmount),
		bill.CreatedAt.Unix(),
	)
	if err != nil {
		return t.store.wrap(fmt.Errorf("failed to insert bill: %w", err))
	}

	for i, item := range bill.Items {
		var bagWeight sql.NullInt64
		if item.BagWeight != nil {
			bagWeight = sql.NullInt64{Int64: int64(*item.BagWeight), Valid: true}
		}
		_, err = t.tx.ExecContext(ctx, t.store.q(
			`INSERT INTO bill_items (bill_id, position, product_id, product_name, hsn_code, quantity, price_minor, bag_weight)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
			bill.ID, i, item.ProductID, item.ProductName, item.HSNCode, item.Quantity, toMinor(item.Price), bagWeight,
		)
		if err != nil {
			return t.store.wrap(fmt.Errorf("failed to insert bill item: %w", err))
		}
	}
	return nil
}

func (t *txn) LockBill(ctx context.Context, billID string) (*models.Bill, error) {
	return t.store.getBill(ctx, t.tx, billID, true)
}

func (t *txn) UpdateBillPayment(ctx context.Context, billID string, paid, due decimal.Decimal) error {
	res, err := t.tx.ExecContext(ctx, t.store.q(
		"UPDATE bills SET paid_minor = ?, due_minor = ? WHERE id = ?"),
		toMinor(paid), toMinor(due), billID,
	)
	if err != nil {
		return t.store.wrap(fmt.Errorf("failed to update bill payment: %w", err))
	}
	return requireAffected(res, "bill", billID)
}
