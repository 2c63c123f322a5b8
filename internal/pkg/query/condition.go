package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("category", "brake") generates "category = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// startsWithCondition implements prefix matching on STRING columns.
type startsWithCondition struct {
	field  string
	prefix string
}

// StartsWith creates a WHERE condition for case-insensitive prefix search.
// Example: StartsWith("name", "kampas") generates
// "STARTS_WITH(LOWER(name), LOWER(@p0))". Used by the catalog listing's
// name search.
func StartsWith(field, prefix string) Condition {
	return &startsWithCondition{field: field, prefix: prefix}
}

func (c *startsWithCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("STARTS_WITH(LOWER(%s), LOWER(@%s))", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.prefix,
	}
	return sql, params
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("last_price_update") generates "last_price_update IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

type isNullCondition struct {
	field string
}

func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	sql := fmt.Sprintf("%s IS NULL", c.field)
	return sql, map[string]interface{}{}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
// Example: IsNotNull("price_3_items") generates "price_3_items IS NOT NULL"
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

type isNotNullCondition struct {
	field string
}

func (c *isNotNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	sql := fmt.Sprintf("%s IS NOT NULL", c.field)
	return sql, map[string]interface{}{}
}
