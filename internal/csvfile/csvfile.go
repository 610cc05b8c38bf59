// Package csvfile stores the inventory as a flat comma-delimited text file,
// one "id,name,quantity,price" line per product. Timestamps are not kept, so
// a reload resets every product's created and updated times.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/stockroom/internal/atomicfile"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Compile-time interface check.
var _ types.Storage = (*File)(nil)

// fieldCount is the number of columns in a product line.
const fieldCount = 4

// File is a Storage backed by a single delimited text file.
type File struct {
	path string
}

// New returns a File storage for path. The file is not touched until Load
// or Save.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the backing file location.
func (f *File) Path() string { return f.path }

// Load reads every well-formed product line. Empty lines, lines with fewer
// than four fields, and lines whose quantity or price does not parse are
// skipped.
func (f *File) Load() ([]types.Record, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrSourceNotFound, f.path)
		}
		return nil, fmt.Errorf("opening %s: %w", f.path, err)
	}
	defer file.Close()

	return parse(file)
}

func parse(r io.Reader) ([]types.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var records []types.Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			return nil, fmt.Errorf("reading records: %w", err)
		}
		rec, ok := parseRecord(fields)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(fields []string) (types.Record, bool) {
	if len(fields) < fieldCount {
		return types.Record{}, false
	}
	id := types.NormalizeToken(fields[0])
	if id == "" {
		return types.Record{}, false
	}
	// Stock may be negative after an unclamped decrease; keep it.
	qty, err := strconv.Atoi(types.NormalizeToken(fields[2]))
	if err != nil {
		return types.Record{}, false
	}
	price, err := types.ParsePrice(fields[3])
	if err != nil {
		return types.Record{}, false
	}
	return types.Record{
		ID:       id,
		Name:     types.SanitizeName(fields[1]),
		Quantity: qty,
		Price:    price,
	}, true
}

// Save atomically replaces the file with one line per record. Prices are
// written in plain two-decimal notation.
func (f *File) Save(records []types.Record) error {
	return atomicfile.Write(f.path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		for _, rec := range records {
			row := []string{
				rec.ID,
				strings.ReplaceAll(rec.Name, ",", " "),
				strconv.Itoa(rec.Quantity),
				types.FormatPrice(rec.Price),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// Close is a no-op; the file is opened only for the duration of each call.
func (f *File) Close() error { return nil }
