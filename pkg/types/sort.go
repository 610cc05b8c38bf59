package types

import (
	"fmt"
	"strings"
)

// SortField names a product attribute that listings can be ordered by.
type SortField int

// Sort fields. Each maps to exactly one comparator in the inventory store.
const (
	SortByID SortField = iota
	SortByName
	SortByPrice
	SortByCreatedAt
	SortByUpdatedAt
)

var sortFieldNames = map[SortField]string{
	SortByID:        "id",
	SortByName:      "name",
	SortByPrice:     "price",
	SortByCreatedAt: "created_at",
	SortByUpdatedAt: "updated_at",
}

func (f SortField) String() string {
	if name, ok := sortFieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("SortField(%d)", int(f))
}

// ParseSortField maps a field name such as "price" or "created_at" to its
// SortField. Matching ignores case.
func ParseSortField(s string) (SortField, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range sortFieldNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown sort field %q", s)
}
