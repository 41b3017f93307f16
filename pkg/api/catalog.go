package api

import "github.com/shopspring/decimal"

type Product struct {
	Id        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	BagWeight int             `json:"bagWeight"`
	Category  string          `json:"category"`
}

type CreateProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Category string          `json:"category"`
	// BagWeight defaults to 50 when zero.
	BagWeight int `json:"bagWeight,omitempty"`
}

type CreateProductResponse struct {
	Product *Product `json:"product"`
}

type UpdateProductRequest struct {
	Product *Product `json:"product"`
}

type UpdateProductResponse struct {
	Product *Product `json:"product"`
}

type DeleteProductRequest struct {
	Id string `json:"id"`
}

type DeleteProductResponse struct{}

type GetProductRequest struct {
	Id string `json:"id"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type ListProductsRequest struct {
	// AvailableOnly limits the result to products with stock left.
	AvailableOnly bool `json:"availableOnly,omitempty"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}
