package portfolio

import "errors"

var (
	ErrUnknownSet      = errors.New("unknown catalog set")
	ErrInvalidSpending = errors.New("spending amounts must be non-negative")
	ErrInvalidProfile  = errors.New("invalid credit profile")
	ErrCatalogLoad     = errors.New("failed to load card catalog")
)
