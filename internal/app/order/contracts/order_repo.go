package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/garasindo/sparepart-service/internal/app/order/domain"
)

// OrderRepository defines order persistence. Mutation methods return
// mutations for the caller's commit plan; checkout buffers them in its own
// read-write transaction.
type OrderRepository interface {
	// InsertMuts creates the mutations writing an order and its lines
	InsertMuts(order *domain.Order) []*spanner.Mutation

	// UpdateStatusMut creates a mutation changing only the order status
	UpdateStatusMut(orderID string, status domain.Status) *spanner.Mutation

	// NumberExistsInTxn checks order number uniqueness inside an open
	// read-write transaction
	NumberExistsInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, number string) (bool, error)

	// GetByID retrieves an order with its lines; ErrOrderNotFound when absent
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)

	// GetInTxn retrieves an order with its lines inside an open read-write
	// transaction; ErrOrderNotFound when absent
	GetInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, orderID string) (*domain.Order, error)

	// ListByUser retrieves one page of a user's orders, newest first,
	// lines included
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]*domain.Order, error)
}
