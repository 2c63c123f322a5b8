package e2e

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/add_item"
	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	orderdomain "github.com/garasindo/sparepart-service/internal/app/order/domain"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/place_order"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/update_order_status"
	"github.com/garasindo/sparepart-service/tests/testutil"
)

// TestConcurrentCheckoutsCannotOversell races two users over the last unit
// of a product. The transactional stock read serializes the checkouts, so
// exactly one wins and stock never goes negative.
func TestConcurrentCheckoutsCannotOversell(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Kampas Rem Langka",
		Price: 85000,
		Stock: 1,
	})

	users := []string{"user-1", "user-2"}
	for _, user := range users {
		_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: user, ProductID: productID, Quantity: 1})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(users))

	for i, user := range users {
		wg.Add(1)
		go func(idx int, userID string) {
			defer wg.Done()
			_, errs[idx] = suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: userID, Courier: "jne"})
		}(i, user)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.True(t, catalogdomain.IsInsufficientStock(err), "loser should fail on stock, got %v", err)
		}
	}
	assert.Equal(t, 1, winners, "exactly one checkout should win the last unit")

	assert.Equal(t, int64(0), testutil.GetProductByID(t, suite.Client, productID).Stock)
	testutil.AssertRowCount(t, suite.Client, "orders", 1)
}

// TestConcurrentCheckoutsBothFit verifies that two checkouts which together
// fit in stock both commit.
func TestConcurrentCheckoutsBothFit(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Busi NGK",
		Price: 25000,
		Stock: 5,
	})

	users := []string{"user-1", "user-2"}
	for _, user := range users {
		_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: user, ProductID: productID, Quantity: 2})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(users))

	for i, user := range users {
		wg.Add(1)
		go func(idx int, userID string) {
			defer wg.Done()
			_, errs[idx] = suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: userID, Courier: "tiki"})
		}(i, user)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "checkout %d should succeed", i)
	}

	assert.Equal(t, int64(1), testutil.GetProductByID(t, suite.Client, productID).Stock)
	testutil.AssertRowCount(t, suite.Client, "orders", 2)
}

// TestConcurrentAddsToSameLineAccumulate races two adds onto the same cart
// line. The line read and the upsert share one read-write transaction, so
// the adds serialize and neither increment is lost.
func TestConcurrentAddsToSameLineAccumulate(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Oli Mesin 10W-40",
		Price: 55000,
		Stock: 50,
	})

	const writers = 4

	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: 1})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "add %d should succeed", i)
	}

	cart, err := suite.ListCart.Execute(ctx(), "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(writers), cart.Lines[0].Quantity, "every concurrent increment should land")
}

// TestConcurrentStatusTransitionsOnlyOneWins races a completion against a
// cancellation of the same pending order. Terminal states are final, so
// exactly one transition commits.
func TestConcurrentStatusTransitionsOnlyOneWins(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Rantai Keteng",
		Price: 95000,
		Stock: 5,
	})

	_, err := suite.AddCartItem.Execute(ctx(), &add_item.Request{UserID: "user-1", ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	result, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{UserID: "user-1", Courier: "jne"})
	require.NoError(t, err)

	targets := []string{"completed", "cancelled"}

	var wg sync.WaitGroup
	errs := make([]error, len(targets))

	for i, target := range targets {
		wg.Add(1)
		go func(idx int, status string) {
			defer wg.Done()
			errs[idx] = suite.UpdateOrderStatus.Execute(ctx(), &update_order_status.Request{OrderID: result.OrderID, Status: status})
		}(i, target)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, orderdomain.ErrIllegalStatusChange)
		}
	}
	assert.Equal(t, 1, winners, "exactly one transition out of pending should commit")
}
