package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	bannerrepo "github.com/garasindo/sparepart-service/internal/app/banner/repo"
	"github.com/garasindo/sparepart-service/internal/app/banner/usecases/delete_banner"
	"github.com/garasindo/sparepart-service/internal/app/banner/usecases/save_banner"
	cartrepo "github.com/garasindo/sparepart-service/internal/app/cart/repo"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/add_item"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/remove_item"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/update_item"
	catalogrepo "github.com/garasindo/sparepart-service/internal/app/catalog/repo"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/bulk_update_price"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/create_product"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/update_product"
	orderrepo "github.com/garasindo/sparepart-service/internal/app/order/repo"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/place_order"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/update_order_status"
	"github.com/garasindo/sparepart-service/internal/app/outbox"

	"github.com/garasindo/sparepart-service/internal/app/banner/queries/list_banners"
	"github.com/garasindo/sparepart-service/internal/app/cart/queries/list_cart"
	"github.com/garasindo/sparepart-service/internal/app/catalog/queries/get_product"
	"github.com/garasindo/sparepart-service/internal/app/catalog/queries/list_products"
	"github.com/garasindo/sparepart-service/internal/app/order/queries/get_order"
	"github.com/garasindo/sparepart-service/internal/app/order/queries/list_orders"

	"github.com/garasindo/sparepart-service/internal/pkg/clock"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
	"github.com/garasindo/sparepart-service/internal/pkg/metrics"
	"github.com/garasindo/sparepart-service/internal/transport/grpc/store"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	StoreHandler  *store.Handler
	Metrics       *metrics.StoreMetrics
	OutboxRepo    outbox.Repository
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	storeMetrics := metrics.NewStoreMetrics()

	// 3. Create repositories
	productRepo := catalogrepo.NewProductRepository(spannerClient, clk)
	readModel := catalogrepo.NewReadModel(spannerClient)
	cartRepository := cartrepo.NewCartRepository(spannerClient)
	orderRepository := orderrepo.NewOrderRepository(spannerClient)
	bannerRepository := bannerrepo.NewBannerRepository(spannerClient)
	outboxRepo := outbox.NewRepo(spannerClient)

	// 4. Create command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, outboxRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(productRepo, outboxRepo, comm, clk)
	bulkUpdatePricesUseCase := bulk_update_price.NewInteractor(productRepo, outboxRepo, comm, clk, storeMetrics)
	addCartItemUseCase := add_item.NewInteractor(cartRepository, productRepo, comm)
	updateCartItemUseCase := update_item.NewInteractor(cartRepository, comm)
	removeCartItemUseCase := remove_item.NewInteractor(cartRepository, comm)
	placeOrderUseCase := place_order.NewInteractor(orderRepository, cartRepository, productRepo, outboxRepo, comm, clk, storeMetrics)
	updateOrderStatusUseCase := update_order_status.NewInteractor(orderRepository, outboxRepo, comm, clk)
	saveBannerUseCase := save_banner.NewInteractor(bannerRepository, comm)
	deleteBannerUseCase := delete_banner.NewInteractor(bannerRepository, comm)

	// 5. Create query use cases (read operations)
	getProductQuery := get_product.NewQuery(readModel)
	listProductsQuery := list_products.NewQuery(readModel)
	listCartQuery := list_cart.NewQuery(cartRepository)
	getOrderQuery := get_order.NewQuery(orderRepository)
	listOrdersQuery := list_orders.NewQuery(orderRepository)
	listBannersQuery := list_banners.NewQuery(bannerRepository)

	// 6. Create gRPC handler
	storeHandler := store.NewHandler(
		createProductUseCase,
		updateProductUseCase,
		bulkUpdatePricesUseCase,
		addCartItemUseCase,
		updateCartItemUseCase,
		removeCartItemUseCase,
		placeOrderUseCase,
		updateOrderStatusUseCase,
		saveBannerUseCase,
		deleteBannerUseCase,
		getProductQuery,
		listProductsQuery,
		listCartQuery,
		getOrderQuery,
		listOrdersQuery,
		listBannersQuery,
	)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		StoreHandler:  storeHandler,
		Metrics:       storeMetrics,
		OutboxRepo:    outboxRepo,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
