package m_order

import "time"

// Data represents the database model for the orders table.
// Rows are immutable snapshots after creation except for the status column.
type Data struct {
	OrderID      string    `spanner:"order_id"`
	UserID       string    `spanner:"user_id"`
	OrderNumber  string    `spanner:"order_number"`
	Courier      string    `spanner:"courier"`
	ShippingCost int64     `spanner:"shipping_cost"`
	TotalPrice   int64     `spanner:"total_price"`
	Status       string    `spanner:"status"`
	CreatedAt    time.Time `spanner:"created_at"`
}
