package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID       = "product_id"
	Name            = "name"
	Slug            = "slug"
	Category        = "category"
	Price           = "price"
	Price3Items     = "price_3_items"
	Price5Items     = "price_5_items"
	Stock           = "stock"
	LastPriceUpdate = "last_price_update"
	CreatedAt       = "created_at"
	UpdatedAt       = "updated_at"
)

// SlugIndex is the unique secondary index used for slug lookups.
const SlugIndex = "idx_products_slug"
