package m_cart_item

import "time"

// Data represents the database model for the cart_items table.
// A row exists per (user, product) pair; repeat adds bump the quantity.
type Data struct {
	UserID    string    `spanner:"user_id"`
	ProductID string    `spanner:"product_id"`
	Quantity  int64     `spanner:"quantity"`
	CreatedAt time.Time `spanner:"created_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
