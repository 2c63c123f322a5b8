package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/garasindo/sparepart-service/internal/app/cart/domain"
)

// CartLineDTO is the read-side representation of a cart line, joined with
// the current product row for display. UnitPrice is tier-resolved for the
// line's quantity; checkout re-reads everything transactionally and may
// differ if the catalog changed in between.
type CartLineDTO struct {
	ProductID string
	Name      string
	Slug      string
	Quantity  int64
	UnitPrice int64
	Subtotal  int64
}

// CartRepository defines cart line persistence.
// Mutation methods return mutations for the caller's commit plan.
type CartRepository interface {
	// UpsertMut creates a mutation writing a cart line's quantity
	UpsertMut(item *domain.CartItem) *spanner.Mutation

	// DeleteMut creates a mutation removing one cart line
	DeleteMut(userID, productID string) *spanner.Mutation

	// ClearMut creates a mutation removing every line of a user's cart.
	// Checkout buffers this in the order transaction.
	ClearMut(userID string) *spanner.Mutation

	// GetItem reads one cart line; ErrCartItemNotFound when absent
	GetItem(ctx context.Context, userID, productID string) (*domain.CartItem, error)

	// GetItemInTxn reads one cart line inside an open read-write
	// transaction so a read-modify-write of the line serializes against
	// concurrent writers; ErrCartItemNotFound when absent
	GetItemInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, userID, productID string) (*domain.CartItem, error)

	// ListInTxn reads all of a user's cart lines inside an open
	// read-write transaction, ordered by product ID
	ListInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, userID string) ([]*domain.CartItem, error)

	// ListLines reads the user's cart joined with product data for display
	ListLines(ctx context.Context, userID string) ([]*CartLineDTO, error)
}
