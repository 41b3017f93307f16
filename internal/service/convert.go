package service

import (
	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/pkg/api"
)

func productToAPI(p *models.Product) *api.Product {
	return &api.Product{
		Id:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		BagWeight: p.BagWeight,
		Category:  p.Category,
	}
}

func productsToAPI(products []*models.Product) []*api.Product {
	out := make([]*api.Product, len(products))
	for i, p := range products {
		out[i] = productToAPI(p)
	}
	return out
}

func billToAPI(b *models.Bill) *api.Bill {
	items := make([]*api.BillItem, len(b.Items))
	for i, it := range b.Items {
		items[i] = &api.BillItem{
			ProductId:   it.ProductID,
			ProductName: it.ProductName,
			HsnCode:     it.HSNCode,
			Quantity:    it.Quantity,
			Price:       it.Price,
			BagWeight:   it.BagWeight,
		}
	}
	return &api.Bill{
		Id:              b.ID,
		BillNumber:      b.BillNumber,
		CustomerName:    b.Customer.Name,
		CustomerPhone:   b.Customer.Phone,
		CustomerAddress: b.Customer.Address,
		CustomerType:    string(b.Customer.Type),
		Gstin:           b.Customer.GSTIN,
		Cst:             b.Customer.CST,
		Tin:             b.Customer.TIN,
		HsnCode:         b.Wholesale.HSNCode,
		VehicleNo:       b.Wholesale.VehicleNo,
		SupplierRef:     b.Wholesale.SupplierRef,
		BookNo:          b.Wholesale.BookNo,
		Cgst:            b.Wholesale.CGST,
		Sgst:            b.Wholesale.SGST,
		Igst:            b.Wholesale.IGST,
		Items:           items,
		TotalAmount:     b.TotalAmount,
		PaidAmount:      b.PaidAmount,
		DueAmount:       b.DueAmount,
		CreatedAt:       b.CreatedAt,
	}
}

func paymentToAPI(p *models.Payment) *api.Payment {
	return &api.Payment{
		Id:          p.ID,
		CompanyName: p.CompanyName,
		Amount:      p.Amount,
		PaymentMode: string(p.Mode),
		Status:      string(p.Status),
		ReferenceNo: p.ReferenceNo,
		Note:        p.Note,
		Date:        p.Date,
		CreatedAt:   p.CreatedAt,
	}
}
