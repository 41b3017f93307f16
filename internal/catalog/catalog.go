// Package catalog manages the product list: prices, stock counts and bag
// weights. Stock is only reduced by billing; here it is set directly.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/minions-03/billing-system/internal/calculator"
	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
)

// ErrInvalidProduct is returned when product fields fail validation.
var ErrInvalidProduct = errors.New("invalid product")

// Catalog validates and persists products.
type Catalog struct {
	store storage.CatalogStore
}

// New creates a Catalog over store.
func New(store storage.CatalogStore) *Catalog {
	return &Catalog{store: store}
}

// Create validates and stores a new product. A zero BagWeight becomes
// models.DefaultBagWeight.
func (c *Catalog) Create(ctx context.Context, product *models.Product) error {
	if err := normalize(product); err != nil {
		return err
	}
	if err := c.store.CreateProduct(ctx, product); err != nil {
		return err
	}
	slog.Info("Product created", "product_id", product.ID, "name", product.Name, "stock", product.Stock)
	return nil
}

// Update validates and replaces an existing product.
func (c *Catalog) Update(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	}
	if err := normalize(product); err != nil {
		return err
	}
	if err := c.store.UpdateProduct(ctx, product); err != nil {
		return err
	}
	slog.Info("Product updated", "product_id", product.ID, "stock", product.Stock)
	return nil
}

// Delete removes a product. Bills that sold it keep their line snapshots.
func (c *Catalog) Delete(ctx context.Context, productID string) error {
	if err := c.store.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	slog.Info("Product deleted", "product_id", productID)
	return nil
}

// Get returns a product by ID.
func (c *Catalog) Get(ctx context.Context, productID string) (*models.Product, error) {
	return c.store.GetProduct(ctx, productID)
}

// List returns all products ordered by name.
func (c *Catalog) List(ctx context.Context) ([]*models.Product, error) {
	return c.store.ListProducts(ctx, storage.ProductFilter{})
}

// ListAvailable returns the products that have stock left, the ones a
// cashier can put on a bill.
func (c *Catalog) ListAvailable(ctx context.Context) ([]*models.Product, error) {
	return c.store.ListProducts(ctx, storage.ProductFilter{AvailableOnly: true})
}

func normalize(p *models.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)

	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case utf8.RuneCountInString(p.Name) > models.MaxProductNameLength:
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidProduct, models.MaxProductNameLength)
	case p.Category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidProduct)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	case calculator.CheckMoney(p.Price) != nil:
		return fmt.Errorf("%w: price must be at most %s", ErrInvalidProduct, calculator.MaxMoney)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	case p.BagWeight < 0:
		return fmt.Errorf("%w: bag weight must be positive", ErrInvalidProduct)
	}

	if p.BagWeight == 0 {
		p.BagWeight = models.DefaultBagWeight
	}
	p.Price = calculator.RoundMoney(p.Price)
	return nil
}
