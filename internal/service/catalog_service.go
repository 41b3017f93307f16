package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/minions-03/billing-system/internal/catalog"
	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/pkg/api"
	"github.com/minions-03/billing-system/pkg/api/apiconnect"
)

// CatalogService implements the Connect CatalogService.
type CatalogService struct {
	apiconnect.UnimplementedCatalogServiceHandler
	catalog *catalog.Catalog
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

// CreateProduct adds a product to the catalog.
func (s *CatalogService) CreateProduct(ctx context.Context, req *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	product := &models.Product{
		Name:      req.Msg.Name,
		Price:     req.Msg.Price,
		Stock:     req.Msg.Stock,
		BagWeight: req.Msg.BagWeight,
		Category:  req.Msg.Category,
	}
	if err := s.catalog.Create(ctx, product); err != nil {
		return nil, toConnectError("CreateProduct", err)
	}
	return connect.NewResponse(&api.CreateProductResponse{Product: productToAPI(product)}), nil
}

// UpdateProduct replaces a product's fields.
func (s *CatalogService) UpdateProduct(ctx context.Context, req *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error) {
	p := req.Msg.Product
	if p == nil {
		return nil, invalidArgument(errors.New("product is required"))
	}
	product := &models.Product{
		ID:        p.Id,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		BagWeight: p.BagWeight,
		Category:  p.Category,
	}
	if err := s.catalog.Update(ctx, product); err != nil {
		return nil, toConnectError("UpdateProduct", err)
	}
	return connect.NewResponse(&api.UpdateProductResponse{Product: productToAPI(product)}), nil
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, req *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	if err := s.catalog.Delete(ctx, req.Msg.Id); err != nil {
		return nil, toConnectError("DeleteProduct", err)
	}
	return connect.NewResponse(&api.DeleteProductResponse{}), nil
}

// GetProduct returns one product.
func (s *CatalogService) GetProduct(ctx context.Context, req *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	product, err := s.catalog.Get(ctx, req.Msg.Id)
	if err != nil {
		return nil, toConnectError("GetProduct", err)
	}
	return connect.NewResponse(&api.GetProductResponse{Product: productToAPI(product)}), nil
}

// ListProducts lists the catalog, optionally only products in stock.
func (s *CatalogService) ListProducts(ctx context.Context, req *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	list := s.catalog.List
	if req.Msg.AvailableOnly {
		list = s.catalog.ListAvailable
	}
	products, err := list(ctx)
	if err != nil {
		return nil, toConnectError("ListProducts", err)
	}
	return connect.NewResponse(&api.ListProductsResponse{Products: productsToAPI(products)}), nil
}
