package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrEmptySlug       = errors.New("product slug cannot be empty")
	ErrSlugTaken       = errors.New("product slug is already in use")
	ErrInvalidPrice    = errors.New("product price must be positive")
	ErrInvalidCategory = errors.New("product category cannot be empty")
	ErrInvalidStock    = errors.New("product stock cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// Repricing errors
	ErrInvalidPercentage = errors.New("percentage must be a finite number greater than -100")
)

// InsufficientStockError reports a checkout line whose requested quantity
// exceeds the stock available at the instant of the transaction. It names
// the offending product so the caller can surface a corrective message.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q (%s): requested %d, available %d",
		e.Name, e.ProductID, e.Requested, e.Available)
}

// IsInsufficientStock reports whether err is an InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
