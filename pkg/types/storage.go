package types

// Storage loads and saves the full product set. Implementations back the
// inventory with a file or database; the store itself never touches disk.
type Storage interface {
	// Load returns every persisted record. A missing source returns an error
	// wrapping ErrSourceNotFound.
	Load() ([]Record, error)

	// Save replaces the persisted contents with records.
	Save(records []Record) error

	// Close releases backend resources. Idempotent.
	Close() error
}
