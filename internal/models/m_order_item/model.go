package m_order_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the order_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order item.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OrderID,
			ProductID,
			Quantity,
			PriceAtPurchase,
		},
		[]interface{}{
			data.OrderID,
			data.ProductID,
			data.Quantity,
			data.PriceAtPurchase,
		},
	)
}

// ReadColumns lists every column in row order for full-row reads.
func ReadColumns() []string {
	return []string{
		OrderID,
		ProductID,
		Quantity,
		PriceAtPurchase,
	}
}
