package types

import "errors"

// Input parsing errors.
var (
	ErrInvalidPrice    = errors.New("invalid price")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Storage errors.
var (
	ErrSourceNotFound = errors.New("data source not found")
	ErrStorageClosed  = errors.New("storage is closed")
)
