// Package inventory implements the in-memory product store: keyed storage
// with ID uniqueness, fragment search, comparator-based sorting, and
// aggregate totals.
package inventory

import (
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Store is the keyed collection of products. It is the sole owner of
// product lifetime; callers receive pointers to stored products but add and
// remove only through the Store.
//
// Iteration order is insertion order, so every listing that is not
// explicitly sorted is deterministic.
type Store struct {
	mu       sync.RWMutex
	products map[string]*types.Product
	order    []string
	log      zerolog.Logger
}

// New creates an empty store that reports through log.
func New(log zerolog.Logger) *Store {
	return &Store{
		products: make(map[string]*types.Product),
		log:      log.With().Str("component", "inventory").Logger(),
	}
}

// Add inserts p. It returns false without mutating the store when a product
// with the same ID is already present.
func (s *Store) Add(p *types.Product) bool {
	if p == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID()]; ok {
		return false
	}
	s.products[p.ID()] = p
	s.order = append(s.order, p.ID())
	return true
}

// Remove deletes the product with the given ID. An absent ID is logged and
// reported as false.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		s.log.Warn().Str("product_id", id).Msg("product does not exist in the inventory")
		return false
	}
	delete(s.products, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// FindByID returns the product with exactly this ID.
func (s *Store) FindByID(id string) (*types.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok
}

// Exists reports whether a product with this ID is stored.
func (s *Store) Exists(id string) bool {
	_, ok := s.FindByID(id)
	return ok
}

// Update runs fn against the stored product under the store lock. found is
// false when the ID is absent; applied is fn's result otherwise.
func (s *Store) Update(id string, fn func(p *types.Product) bool) (found, applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return false, false
	}
	return true, fn(p)
}

// SearchByID returns products whose ID contains fragment, ignoring case.
func (s *Store) SearchByID(fragment string) []*types.Product {
	return s.filter(fragment, (*types.Product).ID)
}

// SearchByName returns products whose name contains fragment, ignoring case.
func (s *Store) SearchByName(fragment string) []*types.Product {
	return s.filter(fragment, (*types.Product).Name)
}

func (s *Store) filter(fragment string, field func(*types.Product) string) []*types.Product {
	needle := types.Fold(fragment)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []*types.Product{}
	for _, id := range s.order {
		p := s.products[id]
		if strings.Contains(types.Fold(field(p)), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

// All returns a snapshot of the stored products in insertion order. The
// slice is a copy; reordering it does not affect the store.
func (s *Store) All() []*types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.products[id])
	}
	return out
}

// SortBy returns a new slice of all products ordered by field. The store's
// own order is untouched.
func (s *Store) SortBy(field types.SortField, ascending bool) []*types.Product {
	return SortProducts(s.All(), field, ascending)
}

// TotalProducts returns the number of distinct products.
func (s *Store) TotalProducts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// TotalStockQuantity returns the sum of all quantities.
func (s *Store) TotalStockQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// TotalInventoryValue returns the exact decimal sum of every product's
// TotalPrice.
func (s *Store) TotalInventoryValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.TotalPrice())
	}
	return types.RoundPrice(total)
}

// Records returns the persistence snapshot of every product in insertion
// order.
func (s *Store) Records() []types.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]types.Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.products[id].Record())
	}
	return records
}
