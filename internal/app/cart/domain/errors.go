package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrMissingIdentifier     = errors.New("cart line requires user and product identifiers")
	ErrInvalidQuantity       = errors.New("cart quantity must be positive")
	ErrQuantityLimitExceeded = errors.New("cart quantity exceeds the per-line limit")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrProductUnavailable    = errors.New("product is unavailable or out of stock")
)
