package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Money columns hold integer paise; timestamps hold unix seconds.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL CHECK (length(name) <= 60),
    price_minor INTEGER NOT NULL CHECK (price_minor >= 0),
    stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
    bag_weight INTEGER NOT NULL DEFAULT 50 CHECK (bag_weight > 0),
    category TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    bill_number INTEGER NOT NULL UNIQUE,
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
    cgst_minor INTEGER NOT NULL DEFAULT 0,
    sgst_minor INTEGER NOT NULL DEFAULT 0,
    igst_minor INTEGER NOT NULL DEFAULT 0,
    total_minor INTEGER NOT NULL CHECK (total_minor >= 0),
    paid_minor INTEGER NOT NULL DEFAULT 0 CHECK (paid_minor >= 0),
    due_minor INTEGER NOT NULL DEFAULT 0 CHECK (due_minor >= 0),
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bill_items (
    bill_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    product_id TEXT NOT NULL,
    product_name TEXT NOT NULL,
    hsn_code TEXT NOT NULL DEFAULT '',
    quantity INTEGER NOT NULL CHECK (quantity >= 1),
    price_minor INTEGER NOT NULL,
    bag_weight INTEGER,
    PRIMARY KEY (bill_id, position),
    FOREIGN KEY (bill_id) REFERENCES bills(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS payments (
    id TEXT PRIMARY KEY,
    company_name TEXT NOT NULL,
    amount_minor INTEGER NOT NULL DEFAULT 0 CHECK (amount_minor >= 0),
    payment_mode TEXT NOT NULL DEFAULT 'ONLINE',
    status TEXT NOT NULL DEFAULT 'COMPLETED',
    reference_no TEXT,
    note TEXT,
    date INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sequences (
    name TEXT PRIMARY KEY,
    value INTEGER NOT NULL
);

INSERT INTO sequences (name, value)
    SELECT 'bill', COALESCE(MAX(bill_number), 0) FROM bills WHERE true
    ON CONFLICT (name) DO NOTHING;

CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock);
CREATE INDEX IF NOT EXISTS idx_bills_customer_type ON bills(customer_type);
CREATE INDEX IF NOT EXISTS idx_bill_items_product_id ON bill_items(product_id);
CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(date);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
