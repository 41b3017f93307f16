// Package billing implements bill creation and payment recording, the only
// operations in the service that touch more than one record at a time.
//
// CreateBill checks stock, decrements it, assigns the next bill number and
// persists the bill in a single storage transaction. Nothing is written
// unless every step succeeds.
package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/calculator"
	"github.com/minions-03/billing-system/internal/metrics"
	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
)

// DefaultMaxAttempts bounds how often a bill transaction is retried after a
// storage.ErrConflict.
const DefaultMaxAttempts = 3

// Draft is a cart submitted for billing.
type Draft struct {
	Customer  models.Customer
	Wholesale models.WholesaleDetails
	Items     []DraftItem

	// PaidAmount is the amount received at the counter. Zero if absent.
	PaidAmount decimal.Decimal
}

// DraftItem is one cart line.
type DraftItem struct {
	ProductID string

	// ProductName is the name the client displayed. It is only used to
	// describe the line in errors; the bill stores the catalog name.
	ProductName string

	HSNCode  string
	Quantity int

	// Price is the unit price the client displayed, if any. The bill is
	// always priced from the catalog; a differing echo is logged.
	Price decimal.NullDecimal
}

// Workflow creates bills and records payments against them.
type Workflow struct {
	store       storage.Store
	metrics     *metrics.Metrics
	maxAttempts int
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithMetrics records bill and payment metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Workflow) { w.metrics = m }
}

// WithMaxAttempts overrides DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(w *Workflow) {
		if n > 0 {
			w.maxAttempts = n
		}
	}
}

// NewWorkflow creates a Workflow over store.
func NewWorkflow(store storage.Store, opts ...Option) *Workflow {
	w := &Workflow{store: store, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// cartLine is the stock demand for one product, summed over all draft lines
// that reference it.
type cartLine struct {
	productID string
	name      string
	quantity  int
}

// CreateBill validates draft, decrements stock, assigns the next bill number
// and persists the bill, all in one transaction.
func (w *Workflow) CreateBill(ctx context.Context, draft Draft) (*models.Bill, error) {
	draft, err := normalizeDraft(draft)
	if err != nil {
		return nil, err
	}
	demand, err := aggregate(draft.Items)
	if err != nil {
		return nil, err
	}

	var bill *models.Bill
	for attempt := 1; ; attempt++ {
		bill, err = w.createBillOnce(ctx, draft, demand)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrConflict) || attempt >= w.maxAttempts || ctx.Err() != nil {
			return nil, err
		}
		slog.Warn("CreateBill: retrying after write conflict", "attempt", attempt, "error", err)
		w.metrics.ConflictRetried()
	}

	w.metrics.BillCreated(string(bill.Customer.Type), bill.TotalAmount)
	slog.Info("Bill created",
		"bill_id", bill.ID,
		"bill_number", bill.BillNumber,
		"customer_type", bill.Customer.Type,
		"items", len(bill.Items),
		"total", bill.TotalAmount.StringFixed(calculator.MoneyPlaces),
		"due", bill.DueAmount.StringFixed(calculator.MoneyPlaces),
	)
	return bill, nil
}

func (w *Workflow) createBillOnce(ctx context.Context, draft Draft, demand []cartLine) (*models.Bill, error) {
	var bill *models.Bill
	err := w.store.InTx(ctx, func(tx storage.Tx) error {
		// Lock every product first, in id order, so no write happens until
		// the whole cart is known to be billable.
		products := make(map[string]*models.Product, len(demand))
		for _, line := range demand {
			product, err := tx.LockProduct(ctx, line.productID)
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to load product %s: %w", line.productID, err)
			}
			products[product.ID] = product
		}
		if err := w.checkCart(draft.Items, demand, products); err != nil {
			return err
		}

		items, lines := priceItems(draft.Items, products)
		totals := calculator.BillTotals(lines, draft.Customer.Type, draft.Wholesale)
		if err := calculator.CheckMoney(totals.Total); err != nil {
			return invalid("total %s exceeds %s", totals.Total.StringFixed(calculator.MoneyPlaces), calculator.MaxMoney)
		}
		due, err := calculator.Due(totals.Total, draft.PaidAmount)
		if err != nil {
			return fmt.Errorf("%w: paid %s, total %s", ErrOverPayment,
				draft.PaidAmount.StringFixed(calculator.MoneyPlaces),
				totals.Total.StringFixed(calculator.MoneyPlaces))
		}

		for _, line := range demand {
			if err := tx.DecrementStock(ctx, line.productID, line.quantity); err != nil {
				if errors.Is(err, storage.ErrInsufficientStock) {
					p := products[line.productID]
					return &ProductError{Err: ErrInsufficientStock, ProductID: p.ID, ProductName: p.Name,
						Requested: line.quantity, Available: p.Stock}
				}
				return err
			}
		}

		number, err := tx.NextBillNumber(ctx)
		if err != nil {
			return err
		}

		b := &models.Bill{
			BillNumber:  number,
			Customer:    draft.Customer,
			Wholesale:   draft.Wholesale,
			Items:       items,
			TotalAmount: totals.Total,
			PaidAmount:  draft.PaidAmount,
			DueAmount:   due,
		}
		if err := tx.InsertBill(ctx, b); err != nil {
			return err
		}
		bill = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// checkCart reports the first cart line, in the order it was entered, whose
// product is missing or short of stock.
func (w *Workflow) checkCart(items []DraftItem, demand []cartLine, products map[string]*models.Product) error {
	requested := make(map[string]int, len(demand))
	for _, line := range demand {
		requested[line.productID] = line.quantity
	}
	for _, it := range items {
		product, ok := products[it.ProductID]
		if !ok {
			name := it.ProductName
			if name == "" {
				name = it.ProductID
			}
			return &ProductError{Err: ErrProductNotFound, ProductID: it.ProductID, ProductName: name}
		}
		if product.Stock < requested[it.ProductID] {
			w.metrics.StockRejected(product.ID)
			return &ProductError{
				Err:         ErrInsufficientStock,
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   requested[it.ProductID],
				Available:   product.Stock,
			}
		}
	}
	return nil
}

// priceItems snapshots catalog name, price and bag weight onto each line.
func priceItems(draftItems []DraftItem, products map[string]*models.Product) ([]models.BillItem, []calculator.Line) {
	items := make([]models.BillItem, len(draftItems))
	lines := make([]calculator.Line, len(draftItems))
	for i, di := range draftItems {
		p := products[di.ProductID]
		if di.Price.Valid && !calculator.RoundMoney(di.Price.Decimal).Equal(p.Price) {
			slog.Warn("Client price differs from catalog, using catalog price",
				"product_id", p.ID,
				"client_price", di.Price.Decimal.String(),
				"catalog_price", p.Price.String(),
			)
		}
		weight := p.BagWeight
		items[i] = models.BillItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			HSNCode:     di.HSNCode,
			Quantity:    di.Quantity,
			Price:       p.Price,
			BagWeight:   &weight,
		}
		lines[i] = calculator.Line{UnitPrice: p.Price, Quantity: di.Quantity}
	}
	return items, lines
}

// aggregate sums quantities per product and returns them in ascending id
// order, the order products are locked in. Items must already be
// normalized, so every quantity is positive.
func aggregate(items []DraftItem) ([]cartLine, error) {
	byID := make(map[string]*cartLine, len(items))
	for _, it := range items {
		line, ok := byID[it.ProductID]
		if !ok {
			name := it.ProductName
			if name == "" {
				name = it.ProductID
			}
			line = &cartLine{productID: it.ProductID, name: name}
			byID[it.ProductID] = line
		}
		if line.quantity > math.MaxInt-it.Quantity {
			return nil, invalid("total quantity for %s is too large", line.name)
		}
		line.quantity += it.Quantity
	}

	demand := make([]cartLine, 0, len(byID))
	for _, line := range byID {
		demand = append(demand, *line)
	}
	sort.Slice(demand, func(i, j int) bool { return demand[i].productID < demand[j].productID })
	return demand, nil
}

// normalizeDraft checks the fields that can be validated without the store
// and fills defaults.
func normalizeDraft(d Draft) (Draft, error) {
	d.Customer.Name = strings.TrimSpace(d.Customer.Name)
	if d.Customer.Name == "" {
		return d, invalid("customer name is required")
	}
	if d.Customer.Type == "" {
		d.Customer.Type = models.CustomerRetailer
	}
	if d.Customer.Type != models.CustomerRetailer && d.Customer.Type != models.CustomerWholesaler {
		return d, invalid("unknown customer type %q", d.Customer.Type)
	}
	if len(d.Items) == 0 {
		return d, invalid("bill must have at least one item")
	}
	for i, it := range d.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return d, invalid("item %d: product id is required", i+1)
		}
		if it.Quantity < 1 {
			return d, invalid("item %d: quantity must be at least 1", i+1)
		}
	}

	if d.PaidAmount.IsNegative() {
		return d, invalid("paid amount cannot be negative")
	}
	if err := calculator.CheckMoney(d.PaidAmount); err != nil {
		return d, invalid("paid amount must be at most %s", calculator.MaxMoney)
	}
	d.PaidAmount = calculator.RoundMoney(d.PaidAmount)

	if d.Customer.Type == models.CustomerWholesaler {
		taxes := []struct {
			name  string
			value decimal.Decimal
		}{{"cgst", d.Wholesale.CGST}, {"sgst", d.Wholesale.SGST}, {"igst", d.Wholesale.IGST}}
		for _, tax := range taxes {
			if tax.value.IsNegative() {
				return d, invalid("%s cannot be negative", tax.name)
			}
			if err := calculator.CheckMoney(tax.value); err != nil {
				return d, invalid("%s must be at most %s", tax.name, calculator.MaxMoney)
			}
		}
		d.Wholesale.CGST = calculator.RoundMoney(d.Wholesale.CGST)
		d.Wholesale.SGST = calculator.RoundMoney(d.Wholesale.SGST)
		d.Wholesale.IGST = calculator.RoundMoney(d.Wholesale.IGST)
	} else {
		// Retail bills carry no tax.
		d.Wholesale.CGST = decimal.Zero
		d.Wholesale.SGST = decimal.Zero
		d.Wholesale.IGST = decimal.Zero
	}
	return d, nil
}

// ApplyPayment adds amount to a bill's paid amount. It fails with
// ErrInvalidAmount, ErrBillNotFound or ErrOverPayment, leaving the bill
// unchanged.
func (w *Workflow) ApplyPayment(ctx context.Context, billID string, amount decimal.Decimal) (*models.Bill, error) {
	if !calculator.RoundMoney(amount).IsPositive() {
		return nil, ErrInvalidAmount
	}

	var bill *models.Bill
	err := w.store.InTx(ctx, func(tx storage.Tx) error {
		b, err := tx.LockBill(ctx, billID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrBillNotFound, billID)
		}
		if err != nil {
			return err
		}

		paid, due, err := calculator.ApplyPayment(b.TotalAmount, b.PaidAmount, amount)
		switch {
		case errors.Is(err, calculator.ErrNegativeDue):
			return fmt.Errorf("%w: due %s, payment %s", ErrOverPayment,
				b.DueAmount.StringFixed(calculator.MoneyPlaces),
				calculator.RoundMoney(amount).StringFixed(calculator.MoneyPlaces))
		case errors.Is(err, calculator.ErrNonPositivePayment):
			return ErrInvalidAmount
		case err != nil:
			return err
		}

		if err := tx.UpdateBillPayment(ctx, b.ID, paid, due); err != nil {
			return err
		}
		b.PaidAmount, b.DueAmount = paid, due
		bill = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.metrics.PaymentApplied(calculator.RoundMoney(amount))
	slog.Info("Payment recorded",
		"bill_id", bill.ID,
		"bill_number", bill.BillNumber,
		"amount", calculator.RoundMoney(amount).StringFixed(calculator.MoneyPlaces),
		"due", bill.DueAmount.StringFixed(calculator.MoneyPlaces),
	)
	return bill, nil
}
