package m_order_item

// Data represents the database model for the order_items table.
// PriceAtPurchase is the tier-resolved unit price captured at checkout;
// it is never recomputed, even when the product is repriced later.
type Data struct {
	OrderID         string `spanner:"order_id"`
	ProductID       string `spanner:"product_id"`
	Quantity        int64  `spanner:"quantity"`
	PriceAtPurchase int64  `spanner:"price_at_purchase"`
}
