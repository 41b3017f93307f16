package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/minions-03/billing-system/internal/models"
	"github.com/minions-03/billing-system/internal/storage"
)

const productColumns = "id, name, price_minor, stock, bag_weight, category"

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}
	var priceMinor int64
	if err := row.Scan(&product.ID, &product.Name, &priceMinor, &product.Stock, &product.BagWeight, &product.Category); err != nil {
		return nil, err
	}
	product.Price = fromMinor(priceMinor)
	return product, nil
}

// CreateProduct persists a new product to the database.
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, s.q(
		"INSERT INTO products ("+productColumns+") VALUES (?, ?, ?, ?, ?, ?)"),
		product.ID, product.Name, toMinor(product.Price), product.Stock, product.BagWeight, product.Category,
	)
	if err != nil {
		return s.wrap(fmt.Errorf("failed to insert product: %w", err))
	}
	return nil
}

// GetProduct retrieves a product by ID.
func (s *Store) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	return s.getProduct(ctx, s.db, productID, false)
}

func (s *Store) getProduct(ctx context.Context, q querier, productID string, lock bool) (*models.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = ?"
	if lock {
		query += s.dialect.ForUpdate
	}

	product, err := scanProduct(q.QueryRowContext(ctx, s.q(query), productID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: product %s", storage.ErrNotFound, productID)
	}
	if err != nil {
		return nil, s.wrap(fmt.Errorf("failed to get product: %w", err))
	}
	return product, nil
}

// ListProducts returns products ordered by name.
func (s *Store) ListProducts(ctx context.Context, filter storage.ProductFilter) ([]*models.Product, error) {
	query := "SELECT " + productColumns + " FROM products"
	if filter.AvailableOnly {
		query += " WHERE stock > 0"
	}
	query += " ORDER BY name, id"

	rows, err := s.db.QueryContext(ctx, s.q(query))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// UpdateProduct updates an existing product.
func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	res, err := s.db.ExecContext(ctx, s.q(
		"UPDATE products SET name = ?, price_minor = ?, stock = ?, bag_weight = ?, category = ? WHERE id = ?"),
		product.Name, toMinor(product.Price), product.Stock, product.BagWeight, product.Category, product.ID,
	)
	if err != nil {
		return s.wrap(fmt.Errorf("failed to update product: %w", err))
	}
	return requireAffected(res, "product", product.ID)
}

// DeleteProduct removes a product by ID.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	res, err := s.db.ExecContext(ctx, s.q("DELETE FROM products WHERE id = ?"), productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return requireAffected(res, "product", productID)
}

// requireAffected turns a zero-row write into storage.ErrNotFound.
func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", storage.ErrNotFound, kind, id)
	}
	return nil
}
