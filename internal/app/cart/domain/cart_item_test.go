package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartItem(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		item, err := NewCartItem("user-1", "prod-1", 2)
		require.NoError(t, err)
		assert.Equal(t, "user-1", item.UserID())
		assert.Equal(t, "prod-1", item.ProductID())
		assert.Equal(t, int64(2), item.Quantity())
	})

	t.Run("missing identifiers", func(t *testing.T) {
		_, err := NewCartItem("", "prod-1", 2)
		assert.ErrorIs(t, err, ErrMissingIdentifier)

		_, err = NewCartItem("user-1", "", 2)
		assert.ErrorIs(t, err, ErrMissingIdentifier)
	})

	t.Run("invalid quantities", func(t *testing.T) {
		_, err := NewCartItem("user-1", "prod-1", 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = NewCartItem("user-1", "prod-1", MaxQuantityPerLine+1)
		assert.ErrorIs(t, err, ErrQuantityLimitExceeded)
	})
}

func TestCartItem_AddQuantity(t *testing.T) {
	t.Run("repeat add accumulates", func(t *testing.T) {
		item, err := NewCartItem("user-1", "prod-1", 2)
		require.NoError(t, err)

		require.NoError(t, item.AddQuantity(3))
		assert.Equal(t, int64(5), item.Quantity())
	})

	t.Run("accumulated total respects the cap", func(t *testing.T) {
		item, err := NewCartItem("user-1", "prod-1", MaxQuantityPerLine-1)
		require.NoError(t, err)

		err = item.AddQuantity(2)
		assert.ErrorIs(t, err, ErrQuantityLimitExceeded)
		// Quantity unchanged on failure.
		assert.Equal(t, int64(MaxQuantityPerLine-1), item.Quantity())
	})

	t.Run("rejects non-positive increments", func(t *testing.T) {
		item, err := NewCartItem("user-1", "prod-1", 1)
		require.NoError(t, err)

		assert.ErrorIs(t, item.AddQuantity(0), ErrInvalidQuantity)
	})
}
