package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/garasindo/sparepart-service/internal/app/cart/domain"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/add_item"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/remove_item"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/update_item"
	"github.com/garasindo/sparepart-service/tests/testutil"
)

func TestAddToCartAccumulates(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Busi NGK",
		Price: 25000,
		Stock: 20,
	})

	qty, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), qty)

	// Repeat add bumps the same line instead of creating a second one.
	qty, err = suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), qty)

	cart, err := suite.ListCart.Execute(ctx(), "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(5), cart.Lines[0].Quantity)
}

func TestAddToCartUnavailableProduct(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: "no-such-product", Quantity: 1})
	assert.ErrorIs(t, err, cartdomain.ErrProductUnavailable)

	outOfStockID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Filter Habis",
		Price: 42000,
		Stock: 0,
	})
	_, err = suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: outOfStockID, Quantity: 1})
	assert.ErrorIs(t, err, cartdomain.ErrProductUnavailable)
}

func TestCartQuantityCap(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Busi NGK",
		Price: 25000,
		Stock: 500,
	})

	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: cartdomain.MaxQuantityPerLine})
	require.NoError(t, err)

	_, err = suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, cartdomain.ErrQuantityLimitExceeded)
}

func TestUpdateAndRemoveCartLine(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Busi NGK",
		Price: 25000,
		Stock: 20,
	})

	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	err = suite.UpdateCartItem.Execute(ctx(), &update_item.Request{UserID: "user-1", ProductID: productID, Quantity: 7})
	require.NoError(t, err)

	cart, err := suite.ListCart.Execute(ctx(), "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(7), cart.Lines[0].Quantity)

	err = suite.RemoveCartItem.Execute(ctx(), &remove_item.Request{UserID: "user-1", ProductID: productID})
	require.NoError(t, err)

	cart, err = suite.ListCart.Execute(ctx(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	// Removing again reports the missing line.
	err = suite.RemoveCartItem.Execute(ctx(), &remove_item.Request{UserID: "user-1", ProductID: productID})
	assert.ErrorIs(t, err, cartdomain.ErrCartItemNotFound)

	err = suite.UpdateCartItem.Execute(ctx(), &update_item.Request{UserID: "user-1", ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, cartdomain.ErrCartItemNotFound)
}

func TestCartDisplayUsesTierPricing(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:        "Kampas Rem",
		Price:       85000,
		Price3Items: testutil.IntPtr(80000),
		Price5Items: testutil.IntPtr(76000),
		Stock:       20,
	})

	tests := []struct {
		quantity  int64
		unitPrice int64
	}{
		{quantity: 1, unitPrice: 85000},
		{quantity: 3, unitPrice: 80000},
		{quantity: 4, unitPrice: 80000},
		{quantity: 5, unitPrice: 76000},
		{quantity: 9, unitPrice: 76000},
	}

	for _, tt := range tests {
		err := suite.UpdateCartItem.Execute(ctx(), &update_item.Request{UserID: "user-1", ProductID: productID, Quantity: tt.quantity})
		if err != nil {
			// First pass has no line yet.
			_, err = suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: tt.quantity})
			require.NoError(t, err)
		}

		cart, err := suite.ListCart.Execute(ctx(), "user-1")
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, tt.unitPrice, cart.Lines[0].UnitPrice, "quantity %d", tt.quantity)
		assert.Equal(t, tt.unitPrice*tt.quantity, cart.Lines[0].Subtotal, "quantity %d", tt.quantity)
		assert.Equal(t, cart.Lines[0].Subtotal, cart.Total)
	}
}
