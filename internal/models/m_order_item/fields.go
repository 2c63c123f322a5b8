package m_order_item

// Field name constants for the order_items table.
// The table is interleaved in orders on order_id.
const (
	TableName = "order_items"

	OrderID         = "order_id"
	ProductID       = "product_id"
	Quantity        = "quantity"
	PriceAtPurchase = "price_at_purchase"
)
