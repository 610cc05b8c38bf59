package jsonl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "products.jsonl")).Load()
	assert.ErrorIs(t, err, types.ErrSourceNotFound)
}

func TestRoundTripKeepsTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.jsonl")
	created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	updated := created.Add(90 * time.Minute)

	want := []types.Record{
		{ID: "100001", Name: "Milk (500 mL)", Quantity: 12, Price: decimal.RequireFromString("42.20"), CreatedAt: created, UpdatedAt: updated},
		{ID: "100002", Name: "Bread Loaf", Quantity: 8, Price: decimal.RequireFromString("35.00"), CreatedAt: created, UpdatedAt: created},
	}

	f := New(path)
	require.NoError(t, f.Save(want))

	got, err := f.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.True(t, want[i].Price.Equal(got[i].Price))
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
		assert.True(t, want[i].UpdatedAt.Equal(got[i].UpdatedAt))
	}
}

func TestSaveOneObjectPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.jsonl")
	f := New(path)
	require.NoError(t, f.Save([]types.Record{
		{ID: "a", Name: "A", Quantity: 1, Price: decimal.RequireFromString("1.00")},
		{ID: "b", Name: "B", Quantity: 2, Price: decimal.RequireFromString("2.00")},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"id":"a"`)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.jsonl")
	content := strings.Join([]string{
		`{"id":"a","name":"Alpha","quantity":1,"price":"1.5","future_field":true}`,
		`not json`,
		``,
		`{"id":"","name":"No ID","quantity":1,"price":"1"}`,
		`{"id":"neg","name":"Negative","quantity":-2,"price":"1"}`,
		`{"id":"b","name":"Beta","quantity":"many","price":"1"}`,
		`{"id":"C","name":"Gamma","quantity":3,"price":"2"}`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := New(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "1.50", types.FormatPrice(got[0].Price))
	assert.Equal(t, "neg", got[1].ID)
	assert.Equal(t, -2, got[1].Quantity, "negative stock is kept")
	assert.Equal(t, "c", got[2].ID)
}

func TestLoadSkipsOversizedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.jsonl")
	huge := `{"id":"big","name":"` + strings.Repeat("x", 2*maxLineSize) + `","quantity":1,"price":"1"}`
	content := strings.Join([]string{
		`{"id":"a","name":"Alpha","quantity":1,"price":"1"}`,
		huge,
		`{"id":"b","name":"Beta","quantity":2,"price":"2"}`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := New(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestRoundTripNegativeQuantity(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "products.jsonl"))
	p := types.NewProduct("100001", "Milk (500 mL)", 15, decimal.RequireFromString("42.20"))
	require.True(t, p.DecreaseQuantity(20))
	other := types.NewProduct("100002", "Bread Loaf", 8, decimal.RequireFromString("35.00"))

	require.NoError(t, f.Save([]types.Record{p.Record(), other.Record()}))

	got, err := f.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "100001", got[0].ID)
	assert.Equal(t, -5, got[0].Quantity)
}
