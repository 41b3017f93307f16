package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
	"github.com/minions-03/billing-system/internal/storage/sqlite"
)

func setupTestLedger(t *testing.T) *Ledger {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	l := New(store)
	l.now = func() time.Time { return time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC) }
	return l
}

func TestCreate(t *testing.T) {
	l := setupTestLedger(t)

	tests := []struct {
		name       string
		payment    models.Payment
		wantErr    bool
		wantMode   models.PaymentMode
		wantStatus models.PaymentStatus
	}{
		{
			name:       "defaults",
			payment:    models.Payment{CompanyName: "IFFCO", Amount: decimal.NewFromInt(5000)},
			wantMode:   models.PaymentOnline,
			wantStatus: models.PaymentCompleted,
		},
		{
			name:       "blank cheque is pending",
			payment:    models.Payment{CompanyName: "IFFCO", Mode: models.PaymentCheque},
			wantMode:   models.PaymentCheque,
			wantStatus: models.PaymentPending,
		},
		{
			name:       "blank cheque overrides completed",
			payment:    models.Payment{CompanyName: "IFFCO", Mode: models.PaymentCheque, Status: models.PaymentCompleted},
			wantMode:   models.PaymentCheque,
			wantStatus: models.PaymentPending,
		},
		{
			name:       "filled cheque is completed",
			payment:    models.Payment{CompanyName: "IFFCO", Mode: models.PaymentCheque, Amount: decimal.NewFromInt(10)},
			wantMode:   models.PaymentCheque,
			wantStatus: models.PaymentCompleted,
		},
		{
			name:       "zero cash payment stays completed",
			payment:    models.Payment{CompanyName: "IFFCO", Mode: models.PaymentCash},
			wantMode:   models.PaymentCash,
			wantStatus: models.PaymentCompleted,
		},
		{
			name:    "pending with amount rejected",
			payment: models.Payment{CompanyName: "IFFCO", Mode: models.PaymentCheque, Amount: decimal.NewFromInt(10), Status: models.PaymentPending},
			wantErr: true,
		},
		{
			name:    "pending upi rejected",
			payment: models.Payment{CompanyName: "IFFCO", Mode: models.PaymentUPI, Status: models.PaymentPending},
			wantErr: true,
		},
		{
			name:    "missing company",
			payment: models.Payment{Amount: decimal.NewFromInt(10)},
			wantErr: true,
		},
		{
			name:    "negative amount",
			payment: models.Payment{CompanyName: "IFFCO", Amount: decimal.NewFromInt(-10)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.payment
			err := l.Create(context.Background(), &p)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPayment) {
					t.Errorf("Expected ErrInvalidPayment, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if p.Mode != tt.wantMode || p.Status != tt.wantStatus {
				t.Errorf("mode/status = %s/%s, want %s/%s", p.Mode, p.Status, tt.wantMode, tt.wantStatus)
			}
			if !p.Date.Equal(l.now()) {
				t.Errorf("Date = %v, want default %v", p.Date, l.now())
			}
		})
	}
}

func TestAmendBlankCheque(t *testing.T) {
	l := setupTestLedger(t)
	ctx := context.Background()

	p := &models.Payment{CompanyName: "Coromandel", Mode: models.PaymentCheque, ReferenceNo: "000123"}
	if err := l.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("note only keeps pending", func(t *testing.T) {
		note := "handed to rep"
		got, err := l.Amend(ctx, p.ID, Amendment{Note: &note})
		if err != nil {
			t.Fatalf("Amend failed: %v", err)
		}
		if got.Status != models.PaymentPending || got.Note != note {
			t.Errorf("unexpected payment: %+v", got)
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		amount := decimal.NewFromInt(-1)
		if _, err := l.Amend(ctx, p.ID, Amendment{Amount: &amount}); !errors.Is(err, ErrInvalidPayment) {
			t.Errorf("Expected ErrInvalidPayment, got %v", err)
		}
	})

	t.Run("amount completes the cheque", func(t *testing.T) {
		amount := decimal.RequireFromString("18250.50")
		got, err := l.Amend(ctx, p.ID, Amendment{Amount: &amount})
		if err != nil {
			t.Fatalf("Amend failed: %v", err)
		}
		if got.Status != models.PaymentCompleted || !got.Amount.Equal(amount) {
			t.Errorf("unexpected payment: %+v", got)
		}
		stored, _ := l.Get(ctx, p.ID)
		if stored.Status != models.PaymentCompleted || stored.ReferenceNo != "000123" {
			t.Errorf("amendment not persisted: %+v", stored)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		note := "x"
		if _, err := l.Amend(ctx, "missing", Amendment{Note: &note}); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestListAndDelete(t *testing.T) {
	l := setupTestLedger(t)
	ctx := context.Background()

	older := &models.Payment{CompanyName: "A", Amount: decimal.NewFromInt(1), Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &models.Payment{CompanyName: "B", Amount: decimal.NewFromInt(2), Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}
	for _, p := range []*models.Payment{older, newer} {
		if err := l.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	payments, err := l.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(payments) != 2 || payments[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %+v", payments)
	}

	if err := l.Delete(ctx, older.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	payments, _ = l.List(ctx)
	if len(payments) != 1 {
		t.Errorf("payments = %d after delete, want 1", len(payments))
	}
	if err := l.Delete(ctx, older.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRejectsOversizedAmount(t *testing.T) {
	l := setupTestLedger(t)
	ctx := context.Background()
	huge := decimal.RequireFromString("184467440737095516.17")

	if err := l.Create(ctx, &models.Payment{CompanyName: "IFFCO", Amount: huge}); !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("Expected ErrInvalidPayment, got %v", err)
	}

	p := &models.Payment{CompanyName: "IFFCO", Mode: models.PaymentCheque}
	if err := l.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := l.Amend(ctx, p.ID, Amendment{Amount: &huge}); !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("Expected ErrInvalidPayment, got %v", err)
	}
	got, err := l.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Amount.IsZero() || got.Status != models.PaymentPending {
		t.Errorf("payment changed: amount=%s status=%s", got.Amount, got.Status)
	}
}
