// Package sqlite implements the SQLite storage backend for the inventory.
// The whole product set is replaced in one transaction on every save, which
// keeps the file consistent with the in-memory store at each checkpoint.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Compile-time interface check.
var _ types.Storage = (*Backend)(nil)

// timeLayout is the on-disk timestamp format.
const timeLayout = time.RFC3339Nano

// Backend is a Storage backed by a SQLite database file.
type Backend struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
}

// Open creates the database file's directory if needed, opens it, and
// ensures the products table exists.
func Open(path string) (*Backend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// A single connection keeps writes serialized through database/sql.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createProducts); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Backend{path: path, db: db}, nil
}

// Path returns the database file location.
func (b *Backend) Path() string { return b.path }

// Load returns every stored product in the order it was saved. An empty
// table loads as an empty slice, not ErrSourceNotFound, since Open always
// creates the table.
func (b *Backend) Load() ([]types.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil, types.ErrStorageClosed
	}

	rows, err := b.db.Query("SELECT " + productColumns + " FROM products ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		rec, err := hydrateRecord(rows)
		if err != nil {
			// Skip rows that no longer parse; the rest of the table is still usable.
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return records, nil
}

// hydrateRecord converts a products row into a Record.
func hydrateRecord(rows *sql.Rows) (types.Record, error) {
	var (
		rec                  types.Record
		priceStr             string
		createdAt, updatedAt string
		ordinal              int
	)
	if err := rows.Scan(&rec.ID, &rec.Name, &rec.Quantity, &priceStr, &createdAt, &updatedAt, &ordinal); err != nil {
		return rec, err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return rec, fmt.Errorf("parsing price for %s: %w", rec.ID, err)
	}
	rec.Price = types.RoundPrice(price)

	if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return rec, fmt.Errorf("parsing created_at for %s: %w", rec.ID, err)
	}
	if rec.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return rec, fmt.Errorf("parsing updated_at for %s: %w", rec.ID, err)
	}
	return rec, nil
}

// Save replaces the products table with records in a single transaction.
func (b *Backend) Save(records []types.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return types.ErrStorageClosed
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM products"); err != nil {
		return fmt.Errorf("clearing products: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO products (" + productColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.Exec(
			rec.ID,
			rec.Name,
			rec.Quantity,
			types.FormatPrice(rec.Price),
			rec.CreatedAt.UTC().Format(timeLayout),
			rec.UpdatedAt.UTC().Format(timeLayout),
			i,
		)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing products: %w", err)
	}
	return nil
}

// Close releases the database handle. Idempotent: multiple calls succeed.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
