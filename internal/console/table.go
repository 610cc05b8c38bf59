package console

import (
	"fmt"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// TimeFormat renders product timestamps in tables and detail views.
const TimeFormat = "2006-01-02 15:04:05"

const (
	tableHeaderFormat = "%-10s | %-35s | %-6s | %-11s | %-19s | %-19s\n"
	tableRowFormat    = "%-10s | %-35s | %-6d | $%-10s | %-19s | %-19s\n"
)

// ProductTable writes products as a fixed-width table under header.
func (c *Console) ProductTable(products []*types.Product, header string) {
	c.Header(header)
	fmt.Fprintf(c.out, tableHeaderFormat, "ID", "Name", "Qty", "Price", "Created At", "Updated At")
	c.Separator('-')
	for _, p := range products {
		fmt.Fprintf(c.out, tableRowFormat,
			p.ID(),
			p.Name(),
			p.Quantity(),
			types.FormatPrice(p.Price()),
			p.CreatedAt().Format(TimeFormat),
			p.UpdatedAt().Format(TimeFormat),
		)
	}
	c.Separator('-')
}

// ProductDetails writes every field of p, one per line.
func (c *Console) ProductDetails(p *types.Product) {
	c.Header("Current Information:")
	fmt.Fprintf(c.out, "Product ID: %s\n", p.ID())
	fmt.Fprintf(c.out, "Product Name: %s\n", p.Name())
	fmt.Fprintf(c.out, "Quantity: %d\n", p.Quantity())
	fmt.Fprintf(c.out, "Price: $%s\n", types.FormatPrice(p.Price()))
	fmt.Fprintf(c.out, "Created At: %s\n", p.CreatedAt().Format(TimeFormat))
	fmt.Fprintf(c.out, "Updated At: %s\n", p.UpdatedAt().Format(TimeFormat))
	c.Separator('-')
}
