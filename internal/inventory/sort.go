package inventory

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// comparators holds one ascending comparator per sort field.
var comparators = map[types.SortField]func(a, b *types.Product) int{
	types.SortByID: func(a, b *types.Product) int {
		return strings.Compare(a.ID(), b.ID())
	},
	types.SortByName: func(a, b *types.Product) int {
		return strings.Compare(types.Fold(a.Name()), types.Fold(b.Name()))
	},
	types.SortByPrice: func(a, b *types.Product) int {
		return a.Price().Cmp(b.Price())
	},
	types.SortByCreatedAt: func(a, b *types.Product) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	},
	types.SortByUpdatedAt: func(a, b *types.Product) int {
		return a.UpdatedAt().Compare(b.UpdatedAt())
	},
}

// SortProducts returns a stably sorted copy of products. Products with equal
// keys keep their relative order from the input in both directions. An
// unknown field returns the copy unsorted.
func SortProducts(products []*types.Product, field types.SortField, ascending bool) []*types.Product {
	out := slices.Clone(products)
	compare, ok := comparators[field]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b *types.Product) int {
		c := compare(a, b)
		if !ascending {
			c = -c
		}
		return cmp.Compare(c, 0)
	})
	return out
}
