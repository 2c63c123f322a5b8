package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/prometheus/client_golang/prometheus"

	cartrepo "github.com/garasindo/sparepart-service/internal/app/cart/repo"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/add_item"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/remove_item"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/update_item"
	catalogrepo "github.com/garasindo/sparepart-service/internal/app/catalog/repo"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/bulk_update_price"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/create_product"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/update_product"
	bannerrepo "github.com/garasindo/sparepart-service/internal/app/banner/repo"
	"github.com/garasindo/sparepart-service/internal/app/banner/usecases/delete_banner"
	"github.com/garasindo/sparepart-service/internal/app/banner/usecases/save_banner"
	orderrepo "github.com/garasindo/sparepart-service/internal/app/order/repo"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/place_order"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/update_order_status"
	"github.com/garasindo/sparepart-service/internal/app/outbox"

	bannerqueries "github.com/garasindo/sparepart-service/internal/app/banner/queries/list_banners"
	"github.com/garasindo/sparepart-service/internal/app/cart/queries/list_cart"
	"github.com/garasindo/sparepart-service/internal/app/catalog/queries/get_product"
	"github.com/garasindo/sparepart-service/internal/app/catalog/queries/list_products"
	"github.com/garasindo/sparepart-service/internal/app/order/queries/get_order"
	"github.com/garasindo/sparepart-service/internal/app/order/queries/list_orders"

	cartcontracts "github.com/garasindo/sparepart-service/internal/app/cart/contracts"
	catalogcontracts "github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	ordercontracts "github.com/garasindo/sparepart-service/internal/app/order/contracts"

	"github.com/garasindo/sparepart-service/internal/pkg/clock"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
	"github.com/garasindo/sparepart-service/internal/pkg/metrics"
	"github.com/garasindo/sparepart-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateProduct     *create_product.Interactor
	UpdateProduct     *update_product.Interactor
	BulkUpdatePrices  *bulk_update_price.Interactor
	AddCartItem       *add_item.Interactor
	UpdateCartItem    *update_item.Interactor
	RemoveCartItem    *remove_item.Interactor
	PlaceOrder        *place_order.Interactor
	UpdateOrderStatus *update_order_status.Interactor
	SaveBanner        *save_banner.Interactor
	DeleteBanner      *delete_banner.Interactor

	// Queries
	GetProduct   *get_product.Query
	ListProducts *list_products.Query
	ListCart     *list_cart.Query
	GetOrder     *get_order.Query
	ListOrders   *list_orders.Query
	ListBanners  *bannerqueries.Query

	// Repositories for direct verification
	ProductRepo catalogcontracts.ProductRepository
	CartRepo    cartcontracts.CartRepository
	OrderRepo   ordercontracts.OrderRepository

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	storeMetrics := metrics.NewStoreMetricsWith(prometheus.NewRegistry())

	productRepo := catalogrepo.NewProductRepository(client, clk)
	readModel := catalogrepo.NewReadModel(client)
	cartRepository := cartrepo.NewCartRepository(client)
	orderRepository := orderrepo.NewOrderRepository(client)
	bannerRepository := bannerrepo.NewBannerRepository(client)
	outboxRepo := outbox.NewRepo(client)

	services := &Services{
		CreateProduct:     create_product.NewInteractor(productRepo, outboxRepo, comm, clk),
		UpdateProduct:     update_product.NewInteractor(productRepo, outboxRepo, comm, clk),
		BulkUpdatePrices:  bulk_update_price.NewInteractor(productRepo, outboxRepo, comm, clk, storeMetrics),
		AddCartItem:       add_item.NewInteractor(cartRepository, productRepo, comm),
		UpdateCartItem:    update_item.NewInteractor(cartRepository, comm),
		RemoveCartItem:    remove_item.NewInteractor(cartRepository, comm),
		PlaceOrder:        place_order.NewInteractor(orderRepository, cartRepository, productRepo, outboxRepo, comm, clk, storeMetrics),
		UpdateOrderStatus: update_order_status.NewInteractor(orderRepository, outboxRepo, comm, clk),
		SaveBanner:        save_banner.NewInteractor(bannerRepository, comm),
		DeleteBanner:      delete_banner.NewInteractor(bannerRepository, comm),
		GetProduct:        get_product.NewQuery(readModel),
		ListProducts:      list_products.NewQuery(readModel),
		ListCart:          list_cart.NewQuery(cartRepository),
		GetOrder:          get_order.NewQuery(orderRepository),
		ListOrders:        list_orders.NewQuery(orderRepository),
		ListBanners:       bannerqueries.NewQuery(bannerRepository),
		ProductRepo:       productRepo,
		CartRepo:          cartRepository,
		OrderRepo:         orderRepository,
		Clock:             clk,
		Client:            client,
	}

	return services, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}
