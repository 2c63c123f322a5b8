package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID      = "order_id"
	UserID       = "user_id"
	OrderNumber  = "order_number"
	Courier      = "courier"
	ShippingCost = "shipping_cost"
	TotalPrice   = "total_price"
	Status       = "status"
	CreatedAt    = "created_at"
)

// NumberIndex is the unique secondary index on order_number.
const NumberIndex = "idx_orders_number"
