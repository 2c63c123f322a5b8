package get_order

import (
	"context"

	"github.com/garasindo/sparepart-service/internal/app/order/contracts"
	"github.com/garasindo/sparepart-service/internal/app/order/domain"
)

// Query handles the get order read.
type Query struct {
	orderRepo contracts.OrderRepository
}

// NewQuery creates a new get order query.
func NewQuery(orderRepo contracts.OrderRepository) *Query {
	return &Query{
		orderRepo: orderRepo,
	}
}

// Execute returns one order with its lines. Callers pass the requesting
// user so one customer cannot read another's order.
func (q *Query) Execute(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := q.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID() != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
