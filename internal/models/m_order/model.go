package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the orders table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OrderID,
			UserID,
			OrderNumber,
			Courier,
			ShippingCost,
			TotalPrice,
			Status,
			CreatedAt,
		},
		[]interface{}{
			data.OrderID,
			data.UserID,
			data.OrderNumber,
			data.Courier,
			data.ShippingCost,
			data.TotalPrice,
			data.Status,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateStatusMut creates a Spanner mutation that changes only the status
// column. Everything else on an order is immutable once written.
func (m *Model) UpdateStatusMut(orderID, status string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{OrderID, Status},
		[]interface{}{orderID, status},
	)
}

// ReadColumns lists every column in row order for full-row reads.
func ReadColumns() []string {
	return []string{
		OrderID,
		UserID,
		OrderNumber,
		Courier,
		ShippingCost,
		TotalPrice,
		Status,
		CreatedAt,
	}
}
