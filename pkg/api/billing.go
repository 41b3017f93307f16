package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer and wholesale fields are flattened onto the bill.
type Bill struct {
	Id              string          `json:"id"`
	BillNumber      int64           `json:"billNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	CustomerType    string          `json:"customerType"`
	Gstin           string          `json:"gstin,omitempty"`
	Cst             string          `json:"cst,omitempty"`
	Tin             string          `json:"tin,omitempty"`
	HsnCode         string          `json:"hsnCode,omitempty"`
	VehicleNo       string          `json:"vehicleNo,omitempty"`
	SupplierRef     string          `json:"supplierRef,omitempty"`
	BookNo          string          `json:"bookNo,omitempty"`
	Cgst            decimal.Decimal `json:"cgst"`
	Sgst            decimal.Decimal `json:"sgst"`
	Igst            decimal.Decimal `json:"igst"`
	Items           []*BillItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	DueAmount       decimal.Decimal `json:"dueAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type BillItem struct {
	ProductId   string          `json:"productId"`
	ProductName string          `json:"productName"`
	HsnCode     string          `json:"hsnCode,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	BagWeight   *int            `json:"bagWeight,omitempty"`
}

// BillItemInput is a cart line. Price is the price the client displayed;
// the bill is always priced from the catalog.
type BillItemInput struct {
	ProductId   string              `json:"productId"`
	ProductName string              `json:"productName,omitempty"`
	HsnCode     string              `json:"hsnCode,omitempty"`
	Quantity    int                 `json:"quantity"`
	Price       decimal.NullDecimal `json:"price"`
}

type CreateBillRequest struct {
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone,omitempty"`
	CustomerAddress string              `json:"customerAddress,omitempty"`
	CustomerType    string              `json:"customerType,omitempty"`
	Gstin           string              `json:"gstin,omitempty"`
	Cst             string              `json:"cst,omitempty"`
	Tin             string              `json:"tin,omitempty"`
	HsnCode         string              `json:"hsnCode,omitempty"`
	VehicleNo       string              `json:"vehicleNo,omitempty"`
	SupplierRef     string              `json:"supplierRef,omitempty"`
	BookNo          string              `json:"bookNo,omitempty"`
	Cgst            decimal.Decimal     `json:"cgst"`
	Sgst            decimal.Decimal     `json:"sgst"`
	Igst            decimal.Decimal     `json:"igst"`
	Items           []*BillItemInput    `json:"items"`
	PaidAmount      decimal.NullDecimal `json:"paidAmount"`
}

type CreateBillResponse struct {
	Bill *Bill `json:"bill"`
}

type GetBillRequest struct {
	Id string `json:"id"`
}

type GetBillResponse struct {
	Bill *Bill `json:"bill"`
}

type ListBillsRequest struct {
	Search string `json:"search,omitempty"`
	// Paid is ALL, PAID or DUE. Empty means ALL.
	Paid string `json:"paid,omitempty"`
	// Type is ALL, RETAILER or WHOLESALER. Empty means ALL.
	Type  string `json:"type,omitempty"`
	Page  int    `json:"page,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type ListBillsResponse struct {
	Bills []*Bill `json:"bills"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

type RecordPaymentRequest struct {
	BillId string          `json:"billId"`
	Amount decimal.Decimal `json:"amount"`
}

type RecordPaymentResponse struct {
	Bill *Bill `json:"bill"`
}
