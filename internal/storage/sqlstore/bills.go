package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
)

const billColumns = `id, bill_number, customer_name, customer_phone, customer_address, customer_type,
	customer_gstin, customer_cst, customer_tin, hsn_code, vehicle_no, supplier_ref, book_no,
	cgst_minor, sgst_minor, igst_minor, total_minor, paid_minor, due_minor, created_at`

func scanBill(row rowScanner) (*models.Bill, error) {
	bill := &models.Bill{}
	var customerType string
	var cgst, sgst, igst, totalMinor, paidMinor, dueMinor, createdAt int64
	err := row.Scan(
		&bill.ID, &bill.BillNumber,
		&bill.Customer.Name, &bill.Customer.Phone, &bill.Customer.Address, &customerType,
		&bill.Customer.GSTIN, &bill.Customer.CST, &bill.Customer.TIN,
		&bill.Wholesale.HSNCode, &bill.Wholesale.VehicleNo, &bill.Wholesale.SupplierRef, &bill.Wholesale.BookNo,
		&cgst, &sgst, &igst, &totalMinor, &paidMinor, &dueMinor, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	bill.Customer.Type = models.CustomerType(customerType)
	bill.Wholesale.CGST = fromMinor(cgst)
	bill.Wholesale.SGST = fromMinor(sgst)
	bill.Wholesale.IGST = fromMinor(igst)
	bill.TotalAmount = fromMinor(totalMinor)
	bill.PaidAmount = fromMinor(paidMinor)
	bill.DueAmount = fromMinor(dueMinor)
	bill.CreatedAt = fromUnix(createdAt)
	return bill, nil
}

// GetBill retrieves a bill by ID, including all items.
func (s *Store) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	return s.getBill(ctx, s.db, billID, false)
}

func (s *Store) getBill(ctx context.Context, q querier, billID string, lock bool) (*models.Bill, error) {
	query := "SELECT " + billColumns + " FROM bills WHERE id = ?"
	if lock {
		query += s.dialect.ForUpdate
	}

	bill, err := scanBill(q.QueryRowContext(ctx, s.q(query), billID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: bill %s", storage.ErrNotFound, billID)
	}
	if err != nil {
		return nil, s.wrap(fmt.Errorf("failed to get bill: %w", err))
	}

	if err := s.loadItems(ctx, q, []*models.Bill{bill}); err != nil {
		return nil, err
	}
	return bill, nil
}

// ListBills returns one page of bills matching filter, newest first.
func (s *Store) ListBills(ctx context.Context, filter storage.BillFilter) ([]*models.Bill, int, error) {
	filter = filter.Normalize()

	var (
		conds []string
		args  []any
	)
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		conds = append(conds, "("+s.lower("customer_name")+` LIKE ? ESCAPE '\' OR CAST(bill_number AS TEXT) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	switch filter.Paid {
	case storage.PaidOnly:
		conds = append(conds, "due_minor <= 0")
	case storage.DueOnly:
		conds = append(conds, "due_minor > 0")
	}
	if filter.Type != "" {
		conds = append(conds, "customer_type = ?")
		args = append(args, string(filter.Type))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, s.q("SELECT COUNT(*) FROM bills"+where), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset())
	rows, err := s.db.QueryContext(ctx,
		s.q("SELECT "+billColumns+" FROM bills"+where+" ORDER BY bill_number DESC LIMIT ? OFFSET ?"),
		pageArgs...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*models.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate bills: %w", err)
	}

	if err := s.loadItems(ctx, s.db, bills); err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

// loadItems fills in the Items of every bill with one query.
func (s *Store) loadItems(ctx context.Context, q querier, bills []*models.Bill) error {
	if len(bills) == 0 {
		return nil
	}

	byID := make(map[string]*models.Bill, len(bills))
	args := make([]any, len(bills))
	for i, bill := range bills {
		byID[bill.ID] = bill
		args[i] = bill.ID
	}

	query := `SELECT bill_id, product_id, product_name, hsn_code, quantity, price_minor, bag_weight
		FROM bill_items
		WHERE bill_id IN (?` + repeatPlaceholder(len(bills)-1) + `)
		ORDER BY bill_id, position`

	rows, err := q.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return fmt.Errorf("failed to get bill items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			billID     string
			item       models.BillItem
			priceMinor int64
			bagWeight  sql.NullInt64
		)
		if err := rows.Scan(&billID, &item.ProductID, &item.ProductName, &item.HSNCode,
			&item.Quantity, &priceMinor, &bagWeight); err != nil {
			return fmt.Errorf("failed to scan bill item: %w", err)
		}
		item.Price = fromMinor(priceMinor)
		if bagWeight.Valid {
			w := int(bagWeight.Int64)
			item.BagWeight = &w
		}
		if bill, ok := byID[billID]; ok {
			bill.Items = append(bill.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate bill items: %w", err)
	}
	return nil
}
