package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/bulk_update_price"
	"github.com/garasindo/sparepart-service/tests/testutil"
)

func TestBulkRepriceRoundsUpToHundreds(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	ids := map[string]int64{
		testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{Name: "A", Price: 15000, Stock: 1}):  15800,
		testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{Name: "B", Price: 100000, Stock: 1}): 105000,
		testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{Name: "C", Price: 15050, Stock: 1}):  15900,
	}

	updated, err := suite.BulkUpdatePrices.Execute(ctx(), &bulk_update_price.Request{Percentage: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	for id, want := range ids {
		data := testutil.GetProductByID(t, suite.Client, id)
		assert.Equal(t, want, data.Price, "product %s", data.Name)
		assert.True(t, data.LastPriceUpdate.Valid, "last_price_update should be stamped")
	}

	testutil.AssertOutboxEvent(t, suite.Client, "catalog.prices.bulk_updated")
}

func TestBulkRepriceZeroPercentStillRoundsUp(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	id := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{Name: "A", Price: 15050, Stock: 1})

	updated, err := suite.BulkUpdatePrices.Execute(ctx(), &bulk_update_price.Request{Percentage: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
	assert.Equal(t, int64(15100), testutil.GetProductByID(t, suite.Client, id).Price)
}

func TestBulkRepriceRejectsImpossiblePercentage(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	id := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{Name: "A", Price: 15000, Stock: 1})

	for _, pct := range []float64{-100, -250} {
		_, err := suite.BulkUpdatePrices.Execute(ctx(), &bulk_update_price.Request{Percentage: pct})
		assert.ErrorIs(t, err, catalogdomain.ErrInvalidPercentage, "percentage %v", pct)
	}

	// Nothing changed.
	assert.Equal(t, int64(15000), testutil.GetProductByID(t, suite.Client, id).Price)
}

func TestBulkRepriceEmptyCatalog(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	updated, err := suite.BulkUpdatePrices.Execute(ctx(), &bulk_update_price.Request{Percentage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestBulkRepriceWithDecrease(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	// -10% of 15000 is 13500, already a multiple of 100.
	id := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{Name: "A", Price: 15000, Stock: 1})

	updated, err := suite.BulkUpdatePrices.Execute(ctx(), &bulk_update_price.Request{Percentage: -10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
	assert.Equal(t, int64(13500), testutil.GetProductByID(t, suite.Client, id).Price)
}
