package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/app/catalog/queries/get_product"
	"github.com/garasindo/sparepart-service/internal/app/catalog/queries/list_products"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/create_product"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/update_product"
	"github.com/garasindo/sparepart-service/tests/testutil"
)

func TestCreateProductGeneratesUniqueSlug(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	firstID, err := suite.CreateProduct.Execute(ctx(), &create_product.Request{
		Name:     "Kampas Rem Depan",
		Category: "brake",
		Price:    85000,
		Stock:    10,
	})
	require.NoError(t, err)

	first, err := suite.GetProduct.Execute(ctx(), &get_product.Request{ProductID: firstID})
	require.NoError(t, err)
	assert.Equal(t, "kampas-rem-depan", first.Slug)

	// Same name gets a numbered slug instead of a conflict.
	secondID, err := suite.CreateProduct.Execute(ctx(), &create_product.Request{
		Name:     "Kampas Rem Depan",
		Category: "brake",
		Price:    90000,
		Stock:    5,
	})
	require.NoError(t, err)

	second, err := suite.GetProduct.Execute(ctx(), &get_product.Request{ProductID: secondID})
	require.NoError(t, err)
	assert.Equal(t, "kampas-rem-depan-1", second.Slug)

	// Slug lookup resolves to the right product.
	bySlug, err := suite.GetProduct.Execute(ctx(), &get_product.Request{Slug: "kampas-rem-depan-1"})
	require.NoError(t, err)
	assert.Equal(t, secondID, bySlug.ProductID)
}

func TestGetProductNotFound(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	_, err := suite.GetProduct.Execute(ctx(), &get_product.Request{ProductID: "missing"})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)

	_, err = suite.GetProduct.Execute(ctx(), &get_product.Request{Slug: "missing-slug"})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestListProductsFiltersAndPages(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	fixtures := []testutil.ProductFixture{
		{Name: "Kampas Rem Depan", Category: "brake", Price: 85000, Stock: 10},
		{Name: "Kampas Rem Belakang", Category: "brake", Price: 78000, Stock: 10},
		{Name: "Oli Mesin 10W-30", Category: "oil", Price: 55000, Stock: 10},
		{Name: "Oli Gardan", Category: "oil", Price: 28000, Stock: 10},
	}
	for _, f := range fixtures {
		testutil.CreateTestProduct(t, suite.Client, f)
	}

	brakes, err := suite.ListProducts.Execute(ctx(), &list_products.Request{Category: "brake"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), brakes.TotalCount)
	assert.Len(t, brakes.Products, 2)

	// Prefix search is scoped by the category filter when both are set.
	oliKampas, err := suite.ListProducts.Execute(ctx(), &list_products.Request{Category: "oil", NamePrefix: "Oli"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), oliKampas.TotalCount)

	paged, err := suite.ListProducts.Execute(ctx(), &list_products.Request{PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), paged.TotalCount)
	assert.Len(t, paged.Products, 3)

	rest, err := suite.ListProducts.Execute(ctx(), &list_products.Request{PageSize: 3, Offset: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), rest.TotalCount)
	assert.Len(t, rest.Products, 1)
}

func TestUpdateProductTierPrices(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, testutil.ProductFixture{
		Name:  "Kampas Rem",
		Price: 85000,
		Stock: 10,
	})

	err := suite.UpdateProduct.Execute(ctx(), &update_product.Request{
		ProductID:     productID,
		SetTierPrices: true,
		Price3Items:   testutil.IntPtr(80000),
		Price5Items:   testutil.IntPtr(76000),
	})
	require.NoError(t, err)

	dto, err := suite.GetProduct.Execute(ctx(), &get_product.Request{ProductID: productID})
	require.NoError(t, err)
	require.NotNil(t, dto.Price3Items)
	require.NotNil(t, dto.Price5Items)
	assert.Equal(t, int64(80000), *dto.Price3Items)
	assert.Equal(t, int64(76000), *dto.Price5Items)

	// Clearing tiers drops the product back to base pricing only.
	err = suite.UpdateProduct.Execute(ctx(), &update_product.Request{
		ProductID:     productID,
		SetTierPrices: true,
	})
	require.NoError(t, err)

	dto, err = suite.GetProduct.Execute(ctx(), &get_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.Nil(t, dto.Price3Items)
	assert.Nil(t, dto.Price5Items)

	err = suite.UpdateProduct.Execute(ctx(), &update_product.Request{ProductID: "missing", Price: testutil.IntPtr(1000)})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}
