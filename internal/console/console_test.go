package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadLine(t *testing.T) {
	c, _ := newConsole("first\r\nsecond\nlast")

	for _, want := range []string{"first", "second", "last"} {
		got, err := c.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChoiceAndName(t *testing.T) {
	c, out := newConsole("  ABC-1  \n  Milk   (500 mL)!! \n")

	id, err := c.Choice("Enter ID: ")
	require.NoError(t, err)
	assert.Equal(t, "abc-1", id)

	name, err := c.Name("Enter Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Milk (500 mL)", name)

	assert.Contains(t, out.String(), "Enter ID: ")
	assert.Contains(t, out.String(), "Enter Name: ")
}

func TestQuantityRepromptsUntilValid(t *testing.T) {
	c, out := newConsole("ten\n-3\n7\n")

	n, ok, err := c.Quantity("Enter Quantity: ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid quantity"))
}

func TestQuantityEmptyAborts(t *testing.T) {
	c, _ := newConsole("\n")

	_, ok, err := c.Quantity("Enter Quantity: ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPriceRepromptsUntilValid(t *testing.T) {
	c, out := newConsole("abc\n-1\n19.999\n")

	p, ok, err := c.Price("Enter Price: ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "20.00", types.FormatPrice(p))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid price"))
}

func TestPriceEOF(t *testing.T) {
	c, _ := newConsole("")

	_, _, err := c.Price("Enter Price: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestConfirm(t *testing.T) {
	c, _ := newConsole("Y\nn\nyes\n")

	for _, want := range []bool{true, false, false} {
		got, err := c.Confirm("Are you sure (y/n): ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).Clear()
	assert.Empty(t, out.String(), "clearing is off by default")

	New(strings.NewReader(""), &out, WithClear(true)).Clear()
	assert.Equal(t, "\033[H\033[2J", out.String())

	out.Reset()
	New(strings.NewReader(""), &out, WithClear(false)).Clear()
	assert.Equal(t, strings.Repeat("\n", clearLines), out.String())
}

func TestBannerIsCentered(t *testing.T) {
	c, out := newConsole("")
	c.Banner("TITLE")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Len(t, lines[1], Width)
	assert.Equal(t, "TITLE", strings.TrimSpace(lines[1]))
}

func TestProductTable(t *testing.T) {
	c, out := newConsole("")
	p := types.NewProduct("100001", "Milk (500 mL)", 12, decimal.RequireFromString("42.2"))

	c.ProductTable([]*types.Product{p}, "CURRENT INVENTORY")

	text := out.String()
	assert.Contains(t, text, "CURRENT INVENTORY")
	assert.Contains(t, text, "100001")
	assert.Contains(t, text, "Milk (500 mL)")
	assert.Contains(t, text, "$42.20")
	assert.Contains(t, text, p.CreatedAt().Format(TimeFormat))
}

func TestProductDetails(t *testing.T) {
	c, out := newConsole("")
	p := types.NewProduct("p1", "Widget", 3, decimal.RequireFromString("1.5"))

	c.ProductDetails(p)

	assert.Contains(t, out.String(), "Product ID: p1")
	assert.Contains(t, out.String(), "Quantity: 3")
	assert.Contains(t, out.String(), "Price: $1.50")
}
