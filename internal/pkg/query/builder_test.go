package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "category").
		Build()

	assert.Equal(t, "SELECT product_id, name, category FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("orders").Build()

	assert.Equal(t, "SELECT * FROM orders", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("category", "brake")).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE category = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "brake",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("orders").
		Select("order_id", "order_number").
		Where(Eq("user_id", "user-1")).
		Where(Eq("status", "pending")).
		Build()

	assert.Equal(t, "SELECT order_id, order_number FROM orders WHERE user_id = @p0 AND status = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "user-1",
		"p1": "pending",
	}, stmt.Params)
}

func TestBuilder_StartsWith(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(StartsWith("name", "kampas")).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE STARTS_WITH(LOWER(name), LOWER(@p0))", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "kampas",
	}, stmt.Params)
}

func TestBuilder_NullConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(IsNotNull("price_3_items")).
		Where(IsNull("last_price_update")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE price_3_items IS NOT NULL AND last_price_update IS NULL", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("orders").
		Select("order_id").
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT order_id FROM orders ORDER BY created_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Limit(20).
		Offset(40).
		Build()

	assert.Equal(t, "SELECT product_id FROM products LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(20),
		"offset": int64(40),
	}, stmt.Params)
}

func TestBuilder_CountDropsPagination(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("category", "filter")).
		OrderBy("created_at", Desc).
		Limit(10).
		Offset(30).
		Count().
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE category = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "filter",
	}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	withCategory := base.Where(Eq("category", "brake"))
	withName := base.Where(StartsWith("name", "oli"))

	assert.Equal(t, "SELECT product_id FROM products WHERE category = @p0", withCategory.Build().SQL)
	assert.Equal(t, "SELECT product_id FROM products WHERE STARTS_WITH(LOWER(name), LOWER(@p0))", withName.Build().SQL)
	assert.Equal(t, "SELECT product_id FROM products", base.Build().SQL)
}
