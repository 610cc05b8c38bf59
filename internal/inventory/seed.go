package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// seedProducts is the demo catalog used by --seed.
var seedProducts = []struct {
	id       string
	name     string
	quantity int
	price    string
}{
	{"100001", "Milk (500 mL)", 12, "42.20"},
	{"100002", "Bread Loaf", 8, "35.00"},
	{"100003", "Eggs (1 Dozen)", 15, "89.50"},
	{"100004", "Sugar (1 kg)", 10, "70.25"},
	{"100005", "Coffee Powder (250 g)", 5, "120.75"},
	{"100006", "Toothpaste (100 g)", 20, "65.00"},
	{"100007", "Shampoo (350 mL)", 9, "99.90"},
	{"100008", "Laundry Detergent (1 kg)", 6, "150.00"},
	{"100009", "Canned Tuna (155 g)", 25, "58.00"},
	{"100010", "Butter (200 g)", 7, "82.35"},
}

// Seed adds the demo catalog and returns how many products were inserted.
// IDs already present are left alone.
func (s *Store) Seed() int {
	added := 0
	for _, sp := range seedProducts {
		p := types.NewProduct(sp.id, sp.name, sp.quantity, decimal.RequireFromString(sp.price))
		if s.Add(p) {
			added++
		}
	}
	return added
}
