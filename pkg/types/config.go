package types

import (
	"errors"
	"path/filepath"
)

// Config holds backend selection and parameters for opening a Storage.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	DataFile string `json:"data_file,omitempty" yaml:"data_file,omitempty"`
}

// Supported backend names.
const (
	BackendCSV    = "csv"
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// defaultDataFiles maps each backend to the file it uses when DataFile is empty.
var defaultDataFiles = map[string]string{
	BackendCSV:    "products.csv",
	BackendJSONL:  "products.jsonl",
	BackendSQLite: "stockroom.db",
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if _, ok := defaultDataFiles[c.Backend]; !ok {
		return ErrBackendUnknown
	}
	return nil
}

// Path returns the location of the backing file: DataDir joined with DataFile,
// or with the backend's default file name when DataFile is empty.
func (c Config) Path() string {
	name := c.DataFile
	if name == "" {
		name = defaultDataFiles[c.Backend]
	}
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}
