// Package jsonl stores the inventory as JSON Lines, one product object per
// line, including created and updated timestamps.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/stockroom/internal/atomicfile"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// maxLineSize is the longest line Load accepts; longer lines are skipped.
const maxLineSize = 1 << 20

// Compile-time interface check.
var _ types.Storage = (*File)(nil)

// File is a Storage backed by a JSONL file.
type File struct {
	path string
}

// New returns a JSONL storage for path.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the backing file location.
func (f *File) Path() string { return f.path }

// Load reads each non-empty, parseable line as a product record. Malformed
// or oversized lines and records without an ID are skipped; unknown fields
// are ignored.
func (f *File) Load() ([]types.Record, error) {
	lines, err := readJSONL(f.path)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(lines))
	for _, line := range lines {
		var rec types.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		rec.ID = types.NormalizeToken(rec.ID)
		if rec.ID == "" || rec.Price.IsNegative() {
			continue
		}
		rec.Name = types.SanitizeName(rec.Name)
		rec.Price = types.RoundPrice(rec.Price)
		records = append(records, rec)
	}
	return records, nil
}

// Save atomically replaces the file with one JSON object per record.
func (f *File) Save(records []types.Record) error {
	return atomicfile.Write(f.path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encoding %s: %w", rec.ID, err)
			}
		}
		return nil
	})
}

// Close is a no-op.
func (f *File) Close() error { return nil }

// readJSONL reads a JSONL file and returns each non-empty, valid line as a
// json.RawMessage.
func readJSONL(path string) ([]json.RawMessage, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	var records []json.RawMessage
	reader := bufio.NewReaderSize(file, maxLineSize)
	for {
		line, err := reader.ReadSlice('\n')
		oversized := false
		for errors.Is(err, bufio.ErrBufferFull) {
			oversized = true
			_, err = reader.ReadSlice('\n')
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if !oversized {
			if raw, ok := rawLine(line); ok {
				records = append(records, raw)
			}
		}
		if err != nil {
			return records, nil
		}
	}
}

// rawLine returns a copy of line without its terminator when it holds valid
// JSON.
func rawLine(line []byte) (json.RawMessage, bool) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 || !json.Valid(line) {
		return nil, false
	}
	cp := make([]byte, len(line))
	copy(cp, line)
	return json.RawMessage(cp), true
}
