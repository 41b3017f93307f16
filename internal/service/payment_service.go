package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/minions-03/billing-system/internal/ledger"
	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/pkg/api"
	"github.com/minions-03/billing-system/pkg/api/apiconnect"
)

// PaymentService implements the Connect PaymentService over the supplier
// payment ledger.
type PaymentService struct {
	apiconnect.UnimplementedPaymentServiceHandler
	ledger *ledger.Ledger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(l *ledger.Ledger) *PaymentService {
	return &PaymentService{ledger: l}
}

// CreatePayment records a supplier payment.
func (s *PaymentService) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	mode, err := models.ParsePaymentMode(req.Msg.PaymentMode)
	if err != nil {
		return nil, invalidArgument(err)
	}
	status, err := models.ParsePaymentStatus(req.Msg.Status)
	if err != nil {
		return nil, invalidArgument(err)
	}

	payment := &models.Payment{
		CompanyName: req.Msg.CompanyName,
		Amount:      req.Msg.Amount,
		Mode:        mode,
		Status:      status,
		ReferenceNo: req.Msg.ReferenceNo,
		Note:        req.Msg.Note,
	}
	if req.Msg.Date != nil {
		payment.Date = *req.Msg.Date
	}

	if err := s.ledger.Create(ctx, payment); err != nil {
		return nil, toConnectError("CreatePayment", err)
	}
	return connect.NewResponse(&api.CreatePaymentResponse{Payment: paymentToAPI(payment)}), nil
}

// AmendPayment fills in or corrects a recorded payment.
func (s *PaymentService) AmendPayment(ctx context.Context, req *connect.Request[api.AmendPaymentRequest]) (*connect.Response[api.AmendPaymentResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	payment, err := s.ledger.Amend(ctx, req.Msg.Id, ledger.Amendment{
		Amount:      req.Msg.Amount,
		ReferenceNo: req.Msg.ReferenceNo,
		Note:        req.Msg.Note,
	})
	if err != nil {
		return nil, toConnectError("AmendPayment", err)
	}
	return connect.NewResponse(&api.AmendPaymentResponse{Payment: paymentToAPI(payment)}), nil
}

// DeletePayment removes a payment.
func (s *PaymentService) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	if err := s.ledger.Delete(ctx, req.Msg.Id); err != nil {
		return nil, toConnectError("DeletePayment", err)
	}
	return connect.NewResponse(&api.DeletePaymentResponse{}), nil
}

// GetPayment returns one payment.
func (s *PaymentService) GetPayment(ctx context.Context, req *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	payment, err := s.ledger.Get(ctx, req.Msg.Id)
	if err != nil {
		return nil, toConnectError("GetPayment", err)
	}
	return connect.NewResponse(&api.GetPaymentResponse{Payment: paymentToAPI(payment)}), nil
}

// ListPayments lists all payments, newest first.
func (s *PaymentService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	payments, err := s.ledger.List(ctx)
	if err != nil {
		return nil, toConnectError("ListPayments", err)
	}
	out := make([]*api.Payment, len(payments))
	for i, p := range payments {
		out[i] = paymentToAPI(p)
	}
	return connect.NewResponse(&api.ListPaymentsResponse{Payments: out}), nil
}
