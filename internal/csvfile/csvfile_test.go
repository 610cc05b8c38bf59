package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func rec(id, name string, qty int, price string) types.Record {
	return types.Record{ID: id, Name: name, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestLoadMissingFile(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "products.csv"))

	_, err := f.Load()
	assert.ErrorIs(t, err, types.ErrSourceNotFound)
}

func TestSaveWritesPlainLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "products.csv")
	f := New(path)

	err := f.Save([]types.Record{
		rec("100001", "Milk (500 mL)", 12, "42.2"),
		rec("100002", "Bread Loaf", 8, "35"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "100001,Milk (500 mL),12,42.20\n100002,Bread Loaf,8,35.00\n", string(data))
}

func TestRoundTrip(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "products.csv"))
	want := []types.Record{
		rec("a1", "Alpha [x]", 0, "0.00"),
		rec("b2", "Beta - Two", 7, "19.99"),
		rec("c3", "Gamma", 1000, "1234.50"),
	}
	require.NoError(t, f.Save(want))

	got, err := f.Load()
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.True(t, want[i].Price.Equal(got[i].Price), "price %s != %s", want[i].Price, got[i].Price)
		assert.True(t, got[i].CreatedAt.IsZero(), "timestamps are not persisted")
	}
}

func TestLoadSkipsBadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	content := "" +
		"100001,Milk (500 mL),12,42.20\n" +
		"\n" +
		"short,line\n" +
		"100002,Bad Qty,twelve,1.00\n" +
		"100003,Negative,-4,1.00\n" +
		"100004,Bad Price,3,abc\n" +
		"  ABC-9 , Eggs!!  (1 Dozen) , 15 , 89.5 \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := New(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "100001", got[0].ID)
	assert.Equal(t, "100003", got[1].ID)
	assert.Equal(t, -4, got[1].Quantity, "negative stock is kept")
	assert.Equal(t, "abc-9", got[2].ID, "IDs are normalized")
	assert.Equal(t, "Eggs (1 Dozen)", got[2].Name)
	assert.Equal(t, 15, got[2].Quantity)
	assert.Equal(t, "89.50", types.FormatPrice(got[2].Price))
}

func TestRoundTripNegativeQuantity(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "products.csv"))
	p := types.NewProduct("100001", "Milk (500 mL)", 15, decimal.RequireFromString("42.20"))
	require.True(t, p.DecreaseQuantity(20))

	require.NoError(t, f.Save([]types.Record{p.Record(), rec("100002", "Bread Loaf", 8, "35.00")}))

	got, err := f.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "100001", got[0].ID)
	assert.Equal(t, -5, got[0].Quantity)
}

func TestLoadKeepsDuplicatesForCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,One,1,1.00\na,Two,2,2.00\n"), 0o644))

	got, err := New(path).Load()
	require.NoError(t, err)
	assert.Len(t, got, 2, "duplicate handling belongs to the store")
}
