package product

import "errors"

var (
	// ErrNotFound reports a missing category, item or pricing row.
	ErrNotFound = errors.New("product: not found")

	// ErrNameTaken reports a category name collision.
	ErrNameTaken = errors.New("product: category name already taken")

	// ErrSKUTaken reports an item SKU collision.
	ErrSKUTaken = errors.New("product: sku already taken")
)
