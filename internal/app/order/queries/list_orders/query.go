package list_orders

import (
	"context"

	"github.com/garasindo/sparepart-service/internal/app/order/contracts"
	"github.com/garasindo/sparepart-service/internal/app/order/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Request pages a user's order history.
type Request struct {
	UserID   string
	PageSize int64
	Offset   int64
}

// Query handles the list orders read.
type Query struct {
	orderRepo contracts.OrderRepository
}

// NewQuery creates a new list orders query.
func NewQuery(orderRepo contracts.OrderRepository) *Query {
	return &Query{
		orderRepo: orderRepo,
	}
}

// Execute returns one page of the user's order history, newest first. A
// user with no orders gets an empty slice, not an error.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Order, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return q.orderRepo.ListByUser(ctx, req.UserID, pageSize, req.Offset)
}
