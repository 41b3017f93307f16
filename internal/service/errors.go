package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/minions-03/billing-system/internal/billing"
	"github.com/minions-03/billing-system/internal/calculator"
	"github.com/minions-03/billing-system/internal/catalog"
	"github.com/minions-03/billing-system/internal/ledger"
	"github.com/minions-03/billing-system/internal/storage"
)

// errInternal is what callers see for failures they cannot act on. The
// cause is logged instead.
var errInternal = errors.New("internal error")

// toConnectError maps domain and storage errors to Connect codes.
func toConnectError(op string, err error) error {
	var code connect.Code
	switch {
	case errors.Is(err, billing.ErrProductNotFound),
		errors.Is(err, billing.ErrBillNotFound),
		errors.Is(err, storage.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, billing.ErrInsufficientStock):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, billing.ErrInvalidBill),
		errors.Is(err, billing.ErrOverPayment),
		errors.Is(err, billing.ErrInvalidAmount),
		errors.Is(err, calculator.ErrMoneyOutOfRange),
		errors.Is(err, catalog.ErrInvalidProduct),
		errors.Is(err, ledger.ErrInvalidPayment):
		code = connect.CodeInvalidArgument
	case errors.Is(err, storage.ErrConflict):
		code = connect.CodeAborted
	default:
		slog.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, errInternal)
	}
	return connect.NewError(code, err)
}

func invalidArgument(err error) error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}
