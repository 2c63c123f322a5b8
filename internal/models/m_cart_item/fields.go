package m_cart_item

// Field name constants for the cart_items table.
const (
	TableName = "cart_items"

	UserID    = "user_id"
	ProductID = "product_id"
	Quantity  = "quantity"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)
