package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/billing"
	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
	"github.com/minions-03/billing-system/pkg/api"
	"github.com/minions-03/billing-system/pkg/api/apiconnect"
)

// BillingService implements the Connect BillingService.
type BillingService struct {
	apiconnect.UnimplementedBillingServiceHandler
	workflow *billing.Workflow
	bills    storage.BillStore
}

// NewBillingService creates a new BillingService. Bills are written through
// workflow and read from bills.
func NewBillingService(workflow *billing.Workflow, bills storage.BillStore) *BillingService {
	return &BillingService{workflow: workflow, bills: bills}
}

// CreateBill issues a bill for a cart.
func (s *BillingService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	msg := req.Msg
	customerType, err := models.ParseCustomerType(msg.CustomerType)
	if err != nil {
		return nil, invalidArgument(err)
	}

	draft := billing.Draft{
		Customer: models.Customer{
			Name:    msg.CustomerName,
			Phone:   msg.CustomerPhone,
			Address: msg.CustomerAddress,
			Type:    customerType,
			GSTIN:   msg.Gstin,
			CST:     msg.Cst,
			TIN:     msg.Tin,
		},
		Wholesale: models.WholesaleDetails{
			HSNCode:     msg.HsnCode,
			VehicleNo:   msg.VehicleNo,
			SupplierRef: msg.SupplierRef,
			BookNo:      msg.BookNo,
			CGST:        msg.Cgst,
			SGST:        msg.Sgst,
			IGST:        msg.Igst,
		},
		Items:      make([]billing.DraftItem, 0, len(msg.Items)),
		PaidAmount: zeroIfInvalid(msg.PaidAmount),
	}
	for i, it := range msg.Items {
		if it == nil {
			return nil, invalidArgument(fmt.Errorf("item %d is empty", i+1))
		}
		draft.Items = append(draft.Items, billing.DraftItem{
			ProductID:   it.ProductId,
			ProductName: it.ProductName,
			HSNCode:     it.HsnCode,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	bill, err := s.workflow.CreateBill(ctx, draft)
	if err != nil {
		return nil, toConnectError("CreateBill", err)
	}
	return connect.NewResponse(&api.CreateBillResponse{Bill: billToAPI(bill)}), nil
}

// GetBill returns one bill with its items.
func (s *BillingService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	bill, err := s.bills.GetBill(ctx, req.Msg.Id)
	if err != nil {
		return nil, toConnectError("GetBill", err)
	}
	return connect.NewResponse(&api.GetBillResponse{Bill: billToAPI(bill)}), nil
}

// ListBills returns one page of the bill history.
func (s *BillingService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	filter, err := billFilter(req.Msg)
	if err != nil {
		return nil, invalidArgument(err)
	}
	filter = filter.Normalize()

	bills, total, err := s.bills.ListBills(ctx, filter)
	if err != nil {
		return nil, toConnectError("ListBills", err)
	}

	out := make([]*api.Bill, len(bills))
	for i, b := range bills {
		out[i] = billToAPI(b)
	}
	return connect.NewResponse(&api.ListBillsResponse{
		Bills: out,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}), nil
}

// RecordPayment applies a customer payment to a bill.
func (s *BillingService) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	if req.Msg.BillId == "" {
		return nil, invalidArgument(errors.New("billId is required"))
	}
	bill, err := s.workflow.ApplyPayment(ctx, req.Msg.BillId, req.Msg.Amount)
	if err != nil {
		return nil, toConnectError("RecordPayment", err)
	}
	return connect.NewResponse(&api.RecordPaymentResponse{Bill: billToAPI(bill)}), nil
}

func billFilter(msg *api.ListBillsRequest) (storage.BillFilter, error) {
	filter := storage.BillFilter{
		Search: msg.Search,
		Page:   msg.Page,
		Limit:  msg.Limit,
	}

	switch paid := storage.PaidFilter(strings.ToUpper(msg.Paid)); paid {
	case "", storage.PaidAll, storage.PaidOnly, storage.DueOnly:
		filter.Paid = paid
	default:
		return filter, fmt.Errorf("unknown paid filter %q", msg.Paid)
	}

	if t := strings.ToUpper(msg.Type); t != "" && t != "ALL" {
		customerType, err := models.ParseCustomerType(t)
		if err != nil {
			return filter, err
		}
		filter.Type = customerType
	}
	return filter, nil
}

// zeroIfInvalid returns d's value or zero when unset.
func zeroIfInvalid(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
