package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/garasindo/sparepart-service/internal/app/catalog/domain"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them; use cases collect
// mutations into a commit plan and apply the plan atomically.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation for updating a product (only dirty fields)
	UpdateMut(product *domain.Product) *spanner.Mutation

	// RepriceMut creates a mutation that sets a new price and stamps
	// last_price_update with the commit timestamp
	RepriceMut(productID string, newPrice int64) *spanner.Mutation

	// StockMut creates a mutation that writes an absolute stock value
	StockMut(productID string, stock int64) *spanner.Mutation

	// GetInTxn retrieves a product inside an open read-write transaction.
	// The read locks the row, serializing concurrent checkouts that touch
	// the same product.
	GetInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (*domain.Product, error)

	// ListAllInTxn reads every product row inside an open read-write
	// transaction (bulk repricing scope)
	ListAllInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction) ([]*domain.Product, error)

	// SlugExists checks whether a slug is already taken
	SlugExists(ctx context.Context, slug string) (bool, error)
}
