package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	Id          string          `json:"id"`
	CompanyName string          `json:"companyName"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	Status      string          `json:"status"`
	ReferenceNo string          `json:"referenceNo,omitempty"`
	Note        string          `json:"note,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type CreatePaymentRequest struct {
	CompanyName string          `json:"companyName"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode,omitempty"`
	Status      string          `json:"status,omitempty"`
	ReferenceNo string          `json:"referenceNo,omitempty"`
	Note        string          `json:"note,omitempty"`
	// Date defaults to now.
	Date *time.Time `json:"date,omitempty"`
}

type CreatePaymentResponse struct {
	Payment *Payment `json:"payment"`
}

// AmendPaymentRequest changes only the fields that are set.
type AmendPaymentRequest struct {
	Id          string           `json:"id"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	ReferenceNo *string          `json:"referenceNo,omitempty"`
	Note        *string          `json:"note,omitempty"`
}

type AmendPaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type DeletePaymentRequest struct {
	Id string `json:"id"`
}

type DeletePaymentResponse struct{}

type GetPaymentRequest struct {
	Id string `json:"id"`
}

type GetPaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type ListPaymentsRequest struct{}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}
