package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
// Prices are IDR minor units; tier columns are NULL when the product has no
// quantity discount at that threshold.
type Data struct {
	ProductID       string            `spanner:"product_id"`
	Name            string            `spanner:"name"`
	Slug            string            `spanner:"slug"`
	Category        string            `spanner:"category"`
	Price           int64             `spanner:"price"`
	Price3Items     spanner.NullInt64 `spanner:"price_3_items"`
	Price5Items     spanner.NullInt64 `spanner:"price_5_items"`
	Stock           int64             `spanner:"stock"`
	LastPriceUpdate spanner.NullTime  `spanner:"last_price_update"`
	CreatedAt       time.Time         `spanner:"created_at"`
	UpdatedAt       time.Time         `spanner:"updated_at"`
}
