package m_cart_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the cart_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation that inserts a cart line or replaces
// the quantity of an existing one.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			UserID,
			ProductID,
			Quantity,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.UserID,
			data.ProductID,
			data.Quantity,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for removing one cart line.
func (m *Model) DeleteMut(userID, productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{userID, productID})
}

// DeleteAllMut creates a Spanner mutation that clears a user's entire cart.
// Checkout buffers this in the same transaction as the order insert.
func (m *Model) DeleteAllMut(userID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{userID}.AsPrefix())
}

// ReadColumns lists every column in row order for full-row reads.
func ReadColumns() []string {
	return []string{
		UserID,
		ProductID,
		Quantity,
		CreatedAt,
		UpdatedAt,
	}
}
