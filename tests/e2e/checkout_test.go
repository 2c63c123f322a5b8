package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/add_item"
	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/update_product"
	orderdomain "github.com/garasindo/sparepart-service/internal/app/order/domain"
	"github.com/garasindo/sparepart-service/internal/app/order/queries/list_orders"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/place_order"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/update_order_status"
	"github.com/garasindo/sparepart-service/tests/testutil"
)

func TestCheckoutHappyPath(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	// Brake pads with quantity tiers, engine oil without.
	padsID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:        "Kampas Rem Depan",
		Price:       85000,
		Price3Items: testutil.IntPtr(80000),
		Price5Items: testutil.IntPtr(76000),
		Stock:       10,
	})
	oilID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Oli Mesin 10W-30",
		Price: 55000,
		Stock: 4,
	})

	userID := "user-1"
	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: userID, ProductID: padsID, Quantity: 3})
	require.NoError(t, err)
	_, err = suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: userID, ProductID: oilID, Quantity: 1})
	require.NoError(t, err)

	result, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: userID, Courier: "jne"})
	require.NoError(t, err)

	// 3 pads at the 3-item tier, 1 oil at base price, plus flat JNE shipping.
	assert.Equal(t, int64(3*80000+55000+20000), result.TotalPrice)
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{8}$`, result.OrderNumber)

	order, err := suite.GetOrder.Execute(ctx(), userID, result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPending, order.Status())
	assert.Equal(t, int64(20000), order.ShippingCost())
	require.Len(t, order.Items(), 2)

	// Stock was decremented.
	assert.Equal(t, int64(7), testutil.GetProductByID(t, suite.Client, padsID).Stock)
	assert.Equal(t, int64(3), testutil.GetProductByID(t, suite.Client, oilID).Stock)

	// Cart was cleared in the same transaction.
	cart, err := suite.ListCart.Execute(ctx(), userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	testutil.AssertOutboxEvent(t, suite.Client, "order.placed")
}

func TestCheckoutInsufficientStockRollsBackEverything(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	okID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Busi NGK",
		Price: 25000,
		Stock: 50,
	})
	scarceID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Filter Udara",
		Price: 42000,
		Stock: 2,
	})

	userID := "user-1"
	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: userID, ProductID: okID, Quantity: 1})
	require.NoError(t, err)
	_, err = suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: userID, ProductID: scarceID, Quantity: 2})
	require.NoError(t, err)

	// Another customer takes the scarce stock first.
	otherUser := "user-2"
	_, err = suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: otherUser, ProductID: scarceID, Quantity: 2})
	require.NoError(t, err)
	_, err = suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: otherUser, Courier: "tiki"})
	require.NoError(t, err)

	_, err = suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: userID, Courier: "jne"})
	require.Error(t, err)
	assert.True(t, catalogdomain.IsInsufficientStock(err), "expected insufficient stock, got %v", err)

	// Nothing from the failed checkout stuck: stock for the in-stock item is
	// untouched and the cart still holds both lines.
	assert.Equal(t, int64(50), testutil.GetProductByID(t, suite.Client, okID).Stock)

	cart, err := suite.ListCart.Execute(ctx(), userID)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)

	orders, err := suite.ListOrders.Execute(ctx(), &list_orders.Request{UserID: userID})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutEmptyCart(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	_, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: "user-1", Courier: "jne"})
	assert.ErrorIs(t, err, orderdomain.ErrEmptyCart)
}

func TestCheckoutUnknownCourier(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Busi NGK",
		Price: 25000,
		Stock: 5,
	})
	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	_, err = suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: "user-1", Courier: "gojek"})
	assert.ErrorIs(t, err, orderdomain.ErrUnknownCourier)

	// Cart is untouched by the rejected request.
	cart, err := suite.ListCart.Execute(ctx(), "user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestOrderSnapshotsPriceAtPurchase(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Kampas Rem",
		Price: 85000,
		Stock: 10,
	})

	userID := "user-1"
	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: userID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	result, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: userID, Courier: "sicepat"})
	require.NoError(t, err)

	// Reprice the catalog after the order committed.
	newPrice := int64(99000)
	err = suite.UpdateProduct.Execute(ctx(), &update_product.Request{ProductID: productID, Price: &newPrice})
	require.NoError(t, err)

	order, err := suite.GetOrder.Execute(ctx(), userID, result.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items(), 1)
	assert.Equal(t, int64(85000), order.Items()[0].PriceAtPurchase())
	assert.Equal(t, int64(85000+18000), order.TotalPrice())
}

func TestOrderStatusLifecycle(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Busi NGK",
		Price: 25000,
		Stock: 5,
	})
	userID := "user-1"
	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: userID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	result, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: userID, Courier: "jne"})
	require.NoError(t, err)

	err = suite.UpdateOrderStatus.Execute(ctx(), &update_order_status.Request{OrderID: result.OrderID, Status: "completed"})
	require.NoError(t, err)

	order, err := suite.GetOrder.Execute(ctx(), userID, result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusCompleted, order.Status())

	// Completed is terminal.
	err = suite.UpdateOrderStatus.Execute(ctx(), &update_order_status.Request{OrderID: result.OrderID, Status: "cancelled"})
	assert.ErrorIs(t, err, orderdomain.ErrIllegalStatusChange)

	testutil.AssertOutboxEvent(t, suite.Client, "order.status_changed")
}

func TestGetOrderScopedToOwner(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Busi NGK",
		Price: 25000,
		Stock: 5,
	})
	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	result, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: "user-1", Courier: "jne"})
	require.NoError(t, err)

	_, err = suite.GetOrder.Execute(ctx(), "user-2", result.OrderID)
	assert.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
}
