package sqlite

import (
	"context"
	"database/sql/driver"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
	"github.com/minions-03/billing-system/internal/storage/sqlstore"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "billing-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func insertBill(t *testing.T, store *sqlstore.Store, bill *models.Bill) {
	t.Helper()
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		n, err := tx.NextBillNumber(context.Background())
		if err != nil {
			return err
		}
		bill.BillNumber = n
		return tx.InsertBill(context.Background(), bill)
	})
	if err != nil {
		t.Fatalf("InsertBill failed: %v", err)
	}
}

func TestProducts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	urea := &models.Product{Name: "Urea", Price: dec("300"), Stock: 10, BagWeight: 50, Category: "Fertilizer"}
	dap := &models.Product{Name: "DAP", Price: dec("1350.50"), Stock: 0, BagWeight: 50, Category: "Fertilizer"}

	t.Run("CreateProduct generates ID", func(t *testing.T) {
		for _, p := range []*models.Product{urea, dap} {
			if err := store.CreateProduct(ctx, p); err != nil {
				t.Fatalf("CreateProduct failed: %v", err)
			}
			if p.ID == "" {
				t.Error("Expected product ID to be generated")
			}
		}
	})

	t.Run("GetProduct round-trips money exactly", func(t *testing.T) {
		got, err := store.GetProduct(ctx, dap.ID)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if !got.Price.Equal(dec("1350.50")) {
			t.Errorf("Price = %s, want 1350.50", got.Price)
		}
		if got.Name != "DAP" || got.Category != "Fertilizer" || got.BagWeight != 50 {
			t.Errorf("unexpected product: %+v", got)
		}
	})

	t.Run("GetProduct returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetProduct(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListProducts orders by name and filters availability", func(t *testing.T) {
		all, err := store.ListProducts(ctx, storage.ProductFilter{})
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}
		if len(all) != 2 || all[0].Name != "DAP" || all[1].Name != "Urea" {
			t.Errorf("unexpected product list: %v", names(all))
		}

		available, err := store.ListProducts(ctx, storage.ProductFilter{AvailableOnly: true})
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}
		if len(available) != 1 || available[0].ID != urea.ID {
			t.Errorf("expected only Urea to be available, got %v", names(available))
		}
	})

	t.Run("UpdateProduct", func(t *testing.T) {
		dap.Stock = 4
		dap.Price = dec("1400")
		if err := store.UpdateProduct(ctx, dap); err != nil {
			t.Fatalf("UpdateProduct failed: %v", err)
		}
		got, err := store.GetProduct(ctx, dap.ID)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if got.Stock != 4 || !got.Price.Equal(dec("1400")) {
			t.Errorf("update not persisted: %+v", got)
		}

		missing := &models.Product{ID: "missing", Name: "X", Price: dec("1"), BagWeight: 50, Category: "X"}
		if err := store.UpdateProduct(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteProduct", func(t *testing.T) {
		if err := store.DeleteProduct(ctx, dap.ID); err != nil {
			t.Fatalf("DeleteProduct failed: %v", err)
		}
		if _, err := store.GetProduct(ctx, dap.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteProduct(ctx, dap.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	urea := &models.Product{Name: "Urea", Price: dec("300"), Stock: 10, BagWeight: 50, Category: "Fertilizer"}
	if err := store.CreateProduct(ctx, urea); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	t.Run("DecrementStock refuses to go negative", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			return tx.DecrementStock(ctx, urea.ID, 11)
		})
		if !errors.Is(err, storage.ErrInsufficientStock) {
			t.Fatalf("Expected ErrInsufficientStock, got %v", err)
		}
		got, _ := store.GetProduct(ctx, urea.ID)
		if got.Stock != 10 {
			t.Errorf("Stock = %d, want 10", got.Stock)
		}
	})

	t.Run("failed transaction rolls back earlier writes", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.InTx(ctx, func(tx storage.Tx) error {
			if err := tx.DecrementStock(ctx, urea.ID, 3); err != nil {
				return err
			}
			if _, err := tx.NextBillNumber(ctx); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("Expected boom, got %v", err)
		}

		got, _ := store.GetProduct(ctx, urea.ID)
		if got.Stock != 10 {
			t.Errorf("Stock = %d after rollback, want 10", got.Stock)
		}

		bill := &models.Bill{Customer: models.Customer{Name: "Ravi", Type: models.CustomerRetailer}}
		insertBill(t, store, bill)
		if bill.BillNumber != 1 {
			t.Errorf("BillNumber = %d, want 1 (rolled back increment must not leave a gap)", bill.BillNumber)
		}
	})

	t.Run("NextBillNumber is sequential", func(t *testing.T) {
		var numbers []int64
		for i := 0; i < 3; i++ {
			bill := &models.Bill{Customer: models.Customer{Name: "Seq", Type: models.CustomerRetailer}}
			insertBill(t, store, bill)
			numbers = append(numbers, bill.BillNumber)
		}
		for i, n := range numbers {
			if n != int64(i+2) {
				t.Errorf("numbers = %v, want [2 3 4]", numbers)
				break
			}
		}
	})

	t.Run("duplicate bill number is a conflict", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			return tx.InsertBill(ctx, &models.Bill{
				BillNumber: 1,
				Customer:   models.Customer{Name: "Dup", Type: models.CustomerRetailer},
			})
		})
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})
}

func TestBills(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	weight := 50
	retail := &models.Bill{
		Customer: models.Customer{Name: "Ravi Kumar", Phone: "98400", Type: models.CustomerRetailer},
		Items: []models.BillItem{
			{ProductID: "p1", ProductName: "Urea", Quantity: 3, Price: dec("300"), BagWeight: &weight},
			{ProductID: "p2", ProductName: "Potash", Quantity: 1, Price: dec("999.99")},
		},
		TotalAmount: dec("1899.99"),
		PaidAmount:  dec("1899.99"),
		DueAmount:   dec("0"),
	}
	wholesale := &models.Bill{
		Customer: models.Customer{Name: "Sri Agro Traders", Type: models.CustomerWholesaler, GSTIN: "33ABCDE1234F1Z5"},
		Wholesale: models.WholesaleDetails{
			HSNCode: "3102", VehicleNo: "TN 01 AB 1234", BookNo: "7",
			CGST: dec("45"), SGST: dec("45"),
		},
		Items: []models.BillItem{
			{ProductID: "p1", ProductName: "Urea", Quantity: 3, Price: dec("300")},
		},
		TotalAmount: dec("990"),
		PaidAmount:  dec("500"),
		DueAmount:   dec("490"),
	}
	insertBill(t, store, retail)
	insertBill(t, store, wholesale)

	t.Run("GetBill retrieves complete bill", func(t *testing.T) {
		got, err := store.GetBill(ctx, wholesale.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if got.BillNumber != 2 {
			t.Errorf("BillNumber = %d, want 2", got.BillNumber)
		}
		if got.Customer.GSTIN != "33ABCDE1234F1Z5" || got.Wholesale.VehicleNo != "TN 01 AB 1234" {
			t.Errorf("wholesale fields not persisted: %+v", got)
		}
		if !got.Wholesale.CGST.Equal(dec("45")) || !got.DueAmount.Equal(dec("490")) {
			t.Errorf("money fields not persisted: cgst=%s due=%s", got.Wholesale.CGST, got.DueAmount)
		}
		if got.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}

		r, err := store.GetBill(ctx, retail.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if len(r.Items) != 2 {
			t.Fatalf("Items count = %d, want 2", len(r.Items))
		}
		if r.Items[0].ProductName != "Urea" || r.Items[1].ProductName != "Potash" {
			t.Errorf("items out of order: %+v", r.Items)
		}
		if r.Items[0].BagWeight == nil || *r.Items[0].BagWeight != 50 {
			t.Errorf("bag weight snapshot lost: %+v", r.Items[0])
		}
		if r.Items[1].BagWeight != nil {
			t.Errorf("expected nil bag weight, got %d", *r.Items[1].BagWeight)
		}
		if !r.Items[1].Price.Equal(dec("999.99")) {
			t.Errorf("item price = %s, want 999.99", r.Items[1].Price)
		}
	})

	t.Run("GetBill returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetBill(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateBillPayment", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			bill, err := tx.LockBill(ctx, wholesale.ID)
			if err != nil {
				return err
			}
			return tx.UpdateBillPayment(ctx, bill.ID, dec("990"), dec("0"))
		})
		if err != nil {
			t.Fatalf("UpdateBillPayment failed: %v", err)
		}
		got, _ := store.GetBill(ctx, wholesale.ID)
		if !got.PaidAmount.Equal(dec("990")) || !got.DueAmount.IsZero() {
			t.Errorf("paid=%s due=%s, want 990/0", got.PaidAmount, got.DueAmount)
		}
		if len(got.Items) != 1 {
			t.Errorf("items changed by payment update: %d", len(got.Items))
		}
	})

	t.Run("LockBill returns ErrNotFound", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			_, err := tx.LockBill(ctx, "missing")
			return err
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestListBills(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seed := []struct {
		name string
		typ  models.CustomerType
		due  string
	}{
		{"Ravi Kumar", models.CustomerRetailer, "0"},
		{"Lakshmi Stores", models.CustomerWholesaler, "250"},
		{"ravi agencies", models.CustomerWholesaler, "0"},
		{"Murugan", models.CustomerRetailer, "10"},
		{"100% Organic", models.CustomerRetailer, "0"},
	}
	for _, s := range seed {
		insertBill(t, store, &models.Bill{
			Customer:    models.Customer{Name: s.name, Type: s.typ},
			TotalAmount: dec("1000"),
			PaidAmount:  dec("1000").Sub(dec(s.due)),
			DueAmount:   dec(s.due),
		})
	}

	tests := []struct {
		name       string
		filter     storage.BillFilter
		wantNames  []string
		wantTotal  int
	}{
		{
			name:      "all bills newest first",
			filter:    storage.BillFilter{},
			wantNames: []string{"100% Organic", "Murugan", "ravi agencies", "Lakshmi Stores", "Ravi Kumar"},
			wantTotal: 5,
		},
		{
			name:      "search is case-insensitive",
			filter:    storage.BillFilter{Search: "RAVI"},
			wantNames: []string{"ravi agencies", "Ravi Kumar"},
			wantTotal: 2,
		},
		{
			name:      "search by bill number",
			filter:    storage.BillFilter{Search: "4"},
			wantNames: []string{"Murugan"},
			wantTotal: 1,
		},
		{
			name:      "search treats wildcards literally",
			filter:    storage.BillFilter{Search: "0%"},
			wantNames: []string{"100% Organic"},
			wantTotal: 1,
		},
		{
			name:      "due only",
			filter:    storage.BillFilter{Paid: storage.DueOnly},
			wantNames: []string{"Murugan", "Lakshmi Stores"},
			wantTotal: 2,
		},
		{
			name:      "paid only wholesalers",
			filter:    storage.BillFilter{Paid: storage.PaidOnly, Type: models.CustomerWholesaler},
			wantNames: []string{"ravi agencies"},
			wantTotal: 1,
		},
		{
			name:      "second page",
			filter:    storage.BillFilter{Page: 2, Limit: 2},
			wantNames: []string{"ravi agencies", "Lakshmi Stores"},
			wantTotal: 5,
		},
		{
			name:      "page past the end",
			filter:    storage.BillFilter{Page: 9, Limit: 2},
			wantNames: nil,
			wantTotal: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bills, total, err := store.ListBills(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListBills failed: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			var got []string
			for _, b := range bills {
				got = append(got, b.Customer.Name)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("names = %v, want %v", got, tt.wantNames)
			}
			for i := range got {
				if got[i] != tt.wantNames[i] {
					t.Errorf("names = %v, want %v", got, tt.wantNames)
					break
				}
			}
		})
	}
}

func TestPayments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cheque := &models.Payment{
		CompanyName: "IFFCO",
		Amount:      decimal.Zero,
		Mode:        models.PaymentCheque,
		Status:      models.PaymentPending,
		ReferenceNo: "CHQ-0042",
	}
	neft := &models.Payment{
		CompanyName: "Coromandel",
		Amount:      dec("25000"),
		Mode:        models.PaymentNEFT,
		Status:      models.PaymentCompleted,
		Note:        "March dues",
	}
	neft.Date = mustTime(t, "2026-03-01T00:00:00Z")
	cheque.Date = mustTime(t, "2026-03-05T00:00:00Z")

	for _, p := range []*models.Payment{neft, cheque} {
		if err := store.CreatePayment(ctx, p); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
		if p.ID == "" || p.CreatedAt.IsZero() {
			t.Errorf("expected ID and CreatedAt to be set: %+v", p)
		}
	}

	t.Run("ListPayments newest first", func(t *testing.T) {
		payments, err := store.ListPayments(ctx)
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(payments) != 2 || payments[0].ID != cheque.ID || payments[1].ID != neft.ID {
			t.Fatalf("unexpected order")
		}
		if payments[0].ReferenceNo != "CHQ-0042" || payments[0].Note != "" {
			t.Errorf("optional fields not round-tripped: %+v", payments[0])
		}
		if payments[1].Note != "March dues" || payments[1].ReferenceNo != "" {
			t.Errorf("optional fields not round-tripped: %+v", payments[1])
		}
	})

	t.Run("UpdatePayment fills a blank cheque", func(t *testing.T) {
		cheque.Amount = dec("12000")
		cheque.Status = models.PaymentCompleted
		if err := store.UpdatePayment(ctx, cheque); err != nil {
			t.Fatalf("UpdatePayment failed: %v", err)
		}
		got, err := store.GetPayment(ctx, cheque.ID)
		if err != nil {
			t.Fatalf("GetPayment failed: %v", err)
		}
		if !got.Amount.Equal(dec("12000")) || got.Status != models.PaymentCompleted {
			t.Errorf("update not persisted: %+v", got)
		}
	})

	t.Run("DeletePayment", func(t *testing.T) {
		if err := store.DeletePayment(ctx, neft.ID); err != nil {
			t.Fatalf("DeletePayment failed: %v", err)
		}
		if _, err := store.GetPayment(ctx, neft.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if err := store.DeletePayment(ctx, neft.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestReopenKeepsSequence(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "reopen.db")

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	insertBill(t, store, &models.Bill{Customer: models.Customer{Name: "A", Type: models.CustomerRetailer}})
	insertBill(t, store, &models.Bill{Customer: models.Customer{Name: "B", Type: models.CustomerRetailer}})
	store.Close()

	store, err = New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	bill := &models.Bill{Customer: models.Customer{Name: "C", Type: models.CustomerRetailer}}
	insertBill(t, store, bill)
	if bill.BillNumber != 3 {
		t.Errorf("BillNumber after reopen = %d, want 3", bill.BillNumber)
	}
}

func names(products []*models.Product) []string {
	var out []string
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestListBillsUnicodeSearch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"ÉLISE Agro", "Øresund Traders", "Elise"} {
		insertBill(t, store, &models.Bill{Customer: models.Customer{Name: name, Type: models.CustomerRetailer}})
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"élise", []string{"ÉLISE Agro"}},
		{"ØRESUND", []string{"Øresund Traders"}},
		{"elise", []string{"Elise"}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			bills, total, err := store.ListBills(ctx, storage.BillFilter{Search: tt.search})
			if err != nil {
				t.Fatalf("ListBills failed: %v", err)
			}
			if total != len(tt.want) || len(bills) != len(tt.want) {
				t.Fatalf("got %d bills (total %d), want %v", len(bills), total, tt.want)
			}
			for i, b := range bills {
				if b.Customer.Name != tt.want[i] {
					t.Errorf("bill %d = %q, want %q", i, b.Customer.Name, tt.want[i])
				}
			}
		})
	}
}

func TestFoldCase(t *testing.T) {
	got, err := foldCase(nil, []driver.Value{"ÉLISE"})
	if err != nil || got != "élise" {
		t.Errorf("foldCase(string) = %v, %v", got, err)
	}
	got, err = foldCase(nil, []driver.Value{[]byte("ÅSA")})
	if err != nil || got != "åsa" {
		t.Errorf("foldCase([]byte) = %v, %v", got, err)
	}
	if got, _ := foldCase(nil, []driver.Value{nil}); got != nil {
		t.Errorf("foldCase(nil) = %v, want nil", got)
	}
}
