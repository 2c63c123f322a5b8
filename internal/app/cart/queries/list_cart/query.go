package list_cart

import (
	"context"

	"github.com/garasindo/sparepart-service/internal/app/cart/contracts"
)

// Result is the displayed cart: its lines and their summed subtotals.
// The total here is informational; checkout recomputes it transactionally.
type Result struct {
	Lines []*contracts.CartLineDTO
	Total int64
}

// Query handles the list cart read.
type Query struct {
	cartRepo contracts.CartRepository
}

// NewQuery creates a new list cart query.
func NewQuery(cartRepo contracts.CartRepository) *Query {
	return &Query{
		cartRepo: cartRepo,
	}
}

// Execute returns the user's cart lines with tier-resolved unit prices.
// An empty cart returns zero lines, not an error.
func (q *Query) Execute(ctx context.Context, userID string) (*Result, error) {
	lines, err := q.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, line := range lines {
		total += line.Subtotal
	}

	return &Result{
		Lines: lines,
		Total: total,
	}, nil
}
