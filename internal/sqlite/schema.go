package sqlite

// Schema DDL for the products table. Prices are stored as two-decimal text
// so no precision is lost through floating point.
const createProducts = `CREATE TABLE IF NOT EXISTS products (
    product_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    price TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    ordinal INTEGER NOT NULL
);`

// Column list shared by insert and select statements.
const productColumns = "product_id, name, quantity, price, created_at, updated_at, ordinal"
