// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write collides with a concurrent writer,
	// e.g. a duplicate bill number. Callers may retry.
	ErrConflict = errors.New("write conflict")

	// ErrInsufficientStock is returned by Tx.DecrementStock when the product
	// does not have enough stock left.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	CatalogStore
	BillStore
	PaymentStore

	// InTx runs fn inside a single transaction. The transaction commits if
	// fn returns nil and rolls back otherwise, so a failure at any step leaves
	// no partial writes behind.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}

// CatalogStore persists products.
type CatalogStore interface {
	// CreateProduct persists a new product. The product.ID field will be
	// populated by the store.
	CreateProduct(ctx context.Context, product *models.Product) error

	// GetProduct retrieves a product by its ID. Returns ErrNotFound if absent.
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// ListProducts returns products ordered by name.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*models.Product, error)

	// UpdateProduct replaces all editable fields of an existing product.
	UpdateProduct(ctx context.Context, product *models.Product) error

	// DeleteProduct removes a product. Issued bills keep their snapshots.
	DeleteProduct(ctx context.Context, productID string) error
}

// BillStore reads bills. Bills are only written through Tx.
type BillStore interface {
	// GetBill retrieves a bill by its ID, including its items.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// ListBills returns one page of bills matching filter, newest first,
	// together with the total number of matching bills.
	ListBills(ctx context.Context, filter BillFilter) ([]*models.Bill, int, error)
}

// PaymentStore persists supplier payments.
type PaymentStore interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	// ListPayments returns all payments ordered by date, newest first.
	ListPayments(ctx context.Context) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
	DeletePayment(ctx context.Context, paymentID string) error
}

// Tx is the set of operations available inside InTx.
type Tx interface {
	// LockProduct reads a product and holds a write lock on it until the
	// transaction ends.
	LockProduct(ctx context.Context, productID string) (*models.Product, error)

	// DecrementStock subtracts qty from a product's stock. It fails with
	// ErrInsufficientStock rather than let stock go negative.
	DecrementStock(ctx context.Context, productID string, qty int) error

	// NextBillNumber increments and returns the bill sequence.
	NextBillNumber(ctx context.Context) (int64, error)

	// InsertBill persists a bill and its items. bill.ID and bill.CreatedAt
	// are populated if unset. Returns ErrConflict on a duplicate bill number.
	InsertBill(ctx context.Context, bill *models.Bill) error

	// LockBill reads a bill and holds a write lock on it until the
	// transaction ends.
	LockBill(ctx context.Context, billID string) (*models.Bill, error)

	// UpdateBillPayment sets the paid and due amounts of a bill.
	UpdateBillPayment(ctx context.Context, billID string, paid, due decimal.Decimal) error
}

// ProductFilter narrows ListProducts.
type ProductFilter struct {
	// AvailableOnly restricts the result to products with stock > 0.
	AvailableOnly bool
}

// PaidFilter selects bills by settlement state.
type PaidFilter string

const (
	PaidAll  PaidFilter = "ALL"
	PaidOnly PaidFilter = "PAID"
	DueOnly  PaidFilter = "DUE"
)

// BillFilter narrows ListBills.
type BillFilter struct {
	// Search matches the customer name case-insensitively (Unicode case
	// folding), or the bill number as a substring of its decimal form.
	Search string

	Paid PaidFilter

	// Type restricts to one customer type. Empty means all types.
	Type models.CustomerType

	// Page is 1-based.
	Page  int
	Limit int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize fills defaults and clamps paging values.
func (f BillFilter) Normalize() BillFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	if f.Paid == "" {
		f.Paid = PaidAll
	}
	return f
}

// Offset returns the row offset of the filter's page.
func (f BillFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
