package postgres

import (
	"context"
	"database/sql"
)

// schema mirrors the SQLite schema with PostgreSQL types.
// Money columns hold integer paise; timestamps hold unix seconds.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    name VARCHAR(60) NOT NULL,
    price_minor BIGINT NOT NULL CHECK (price_minor >= 0),
    stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
    bag_weight INTEGER NOT NULL DEFAULT 50 CHECK (bag_weight > 0),
    category TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    bill_number BIGINT NOT NULL UNIQUE,
    customer_name TEXT NOT NULL,
    customer_phone TEXT NOT NULL DEFAULT '',
    customer_address TEXT NOT NULL DEFAULT '',
    customer_type TEXT NOT NULL DEFAULT 'RETAILER',
    customer_gstin TEXT NOT NULL DEFAULT '',
    customer_cst TEXT NOT NULL DEFAULT '',
    customer_tin TEXT NOT NULL DEFAULT '',
    hsn_code TEXT NOT NULL DEFAULT '',
    vehicle_no TEXT NOT NULL DEFAULT '',
    supplier_ref TEXT NOT NULL DEFAULT '',
    book_no TEXT NOT NULL DEFAULT '',
    cgst_minor BIGINT NOT NULL DEFAULT 0,
    sgst_minor BIGINT NOT NULL DEFAULT 0,
    igst_minor BIGINT NOT NULL DEFAULT 0,
    total_minor BIGINT NOT NULL CHECK (total_minor >= 0),
    paid_minor BIGINT NOT NULL DEFAULT 0 CHECK (paid_minor >= 0),
    due_minor BIGINT NOT NULL DEFAULT 0 CHECK (due_minor >= 0),
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS bill_items (
    bill_id TEXT NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    product_id TEXT NOT NULL,
    product_name TEXT NOT NULL,
    hsn_code TEXT NOT NULL DEFAULT '',
    quantity INTEGER NOT NULL CHECK (quantity >= 1),
    price_minor BIGINT NOT NULL,
    bag_weight INTEGER,
    PRIMARY KEY (bill_id, position)
);

CREATE TABLE IF NOT EXISTS payments (
    id TEXT PRIMARY KEY,
    company_name TEXT NOT NULL,
    amount_minor BIGINT NOT NULL DEFAULT 0 CHECK (amount_minor >= 0),
    payment_mode TEXT NOT NULL DEFAULT 'ONLINE',
    status TEXT NOT NULL DEFAULT 'COMPLETED',
    reference_no TEXT,
    note TEXT,
    date BIGINT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS sequences (
    name TEXT PRIMARY KEY,
    value BIGINT NOT NULL
);

INSERT INTO sequences (name, value)
    SELECT 'bill', COALESCE(MAX(bill_number), 0) FROM bills
    ON CONFLICT (name) DO NOTHING;

CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock);
CREATE INDEX IF NOT EXISTS idx_bills_customer_type ON bills(customer_type);
CREATE INDEX IF NOT EXISTS idx_bill_items_product_id ON bill_items(product_id);
CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(date);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
