package types

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// now is the clock used for product timestamps. Tests replace it to pin time.
var now = time.Now

// Product is a single inventory item. Two products are the same product when
// their IDs match; the remaining fields are mutable state.
type Product struct {
	id        string
	name      string
	quantity  int
	price     decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

// NewProduct creates a product with CreatedAt and UpdatedAt set to now. The
// ID is normalized, the name sanitized, and the price rounded to two places.
func NewProduct(id, name string, quantity int, price decimal.Decimal) *Product {
	ts := now()
	return &Product{
		id:        NormalizeToken(id),
		name:      SanitizeName(name),
		quantity:  quantity,
		price:     RoundPrice(price),
		createdAt: ts,
		updatedAt: ts,
	}
}

// ID returns the immutable product identifier.
func (p *Product) ID() string { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Quantity returns the units in stock.
func (p *Product) Quantity() int { return p.quantity }

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal { return p.price }

// CreatedAt returns the construction time.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the time of the last applied mutation.
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// SetName replaces the name. A name that sanitizes to empty is rejected.
func (p *Product) SetName(name string) bool {
	name = SanitizeName(name)
	if name == "" {
		return false
	}
	p.name = name
	p.touch()
	return true
}

// SetPrice replaces the unit price, rounded to two places. Negative prices
// are rejected.
func (p *Product) SetPrice(price decimal.Decimal) bool {
	if price.IsNegative() {
		return false
	}
	p.price = RoundPrice(price)
	p.touch()
	return true
}

// SetQuantity replaces the stock count. Negative values are rejected and
// leave both quantity and UpdatedAt unchanged.
func (p *Product) SetQuantity(q int) bool {
	if q < 0 {
		return false
	}
	p.quantity = q
	p.touch()
	return true
}

// IncreaseQuantity adds n units. Negative n is rejected.
func (p *Product) IncreaseQuantity(n int) bool {
	if n < 0 {
		return false
	}
	p.quantity += n
	p.touch()
	return true
}

// DecreaseQuantity removes n units. Negative n is rejected. The result is
// not clamped at zero, so stock can go negative.
func (p *Product) DecreaseQuantity(n int) bool {
	if n < 0 {
		return false
	}
	p.quantity -= n
	p.touch()
	return true
}

// TotalPrice returns price * quantity rounded to two places.
func (p *Product) TotalPrice() decimal.Decimal {
	return RoundPrice(p.price.Mul(decimal.NewFromInt(int64(p.quantity))))
}

// Equal reports whether p and other share an ID.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.id == other.id
}

func (p *Product) String() string {
	return fmt.Sprintf("%s | %s | Qty: %d | $%s", p.id, p.name, p.quantity, FormatPrice(p.price))
}

func (p *Product) touch() {
	p.updatedAt = now()
}

// Record is the persistence shape of a product. Backends that do not keep
// timestamps leave CreatedAt and UpdatedAt zero.
type Record struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Record returns the persistence shape of p.
func (p *Product) Record() Record {
	return Record{
		ID:        p.id,
		Name:      p.name,
		Quantity:  p.quantity,
		Price:     p.price,
		CreatedAt: p.createdAt,
		UpdatedAt: p.updatedAt,
	}
}

// Product builds a Product from r. Zero timestamps reset to now; a zero
// UpdatedAt with a known CreatedAt takes the CreatedAt value.
func (r Record) Product() *Product {
	p := NewProduct(r.ID, r.Name, r.Quantity, r.Price)
	if !r.CreatedAt.IsZero() {
		p.createdAt = r.CreatedAt
		p.updatedAt = r.CreatedAt
	}
	if !r.UpdatedAt.IsZero() {
		p.updatedAt = r.UpdatedAt
	}
	return p
}

// ParseQuantity parses a non-negative integer stock count.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}
