package store

import (
	"context"

	bannerqueries "github.com/garasindo/sparepart-service/internal/app/banner/queries/list_banners"
	"github.com/garasindo/sparepart-service/internal/app/banner/usecases/delete_banner"
	"github.com/garasindo/sparepart-service/internal/app/banner/usecases/save_banner"
	"github.com/garasindo/sparepart-service/internal/app/cart/queries/list_cart"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/add_item"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/remove_item"
	"github.com/garasindo/sparepart-service/internal/app/cart/usecases/update_item"
	"github.com/garasindo/sparepart-service/internal/app/catalog/queries/get_product"
	"github.com/garasindo/sparepart-service/internal/app/catalog/queries/list_products"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/bulk_update_price"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/create_product"
	"github.com/garasindo/sparepart-service/internal/app/catalog/usecases/update_product"
	"github.com/garasindo/sparepart-service/internal/app/order/queries/get_order"
	"github.com/garasindo/sparepart-service/internal/app/order/queries/list_orders"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/place_order"
	"github.com/garasindo/sparepart-service/internal/app/order/usecases/update_order_status"
	pb "github.com/garasindo/sparepart-service/proto/store/v1"
)

// Handler implements the gRPC StoreService interface.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	pb.UnimplementedStoreServiceServer

	// Commands
	createProduct     *create_product.Interactor
	updateProduct     *update_product.Interactor
	bulkUpdatePrices  *bulk_update_price.Interactor
	addCartItem       *add_item.Interactor
	updateCartItem    *update_item.Interactor
	removeCartItem    *remove_item.Interactor
	placeOrder        *place_order.Interactor
	updateOrderStatus *update_order_status.Interactor
	saveBanner        *save_banner.Interactor
	deleteBanner      *delete_banner.Interactor

	// Queries
	getProduct   *get_product.Query
	listProducts *list_products.Query
	listCart     *list_cart.Query
	getOrder     *get_order.Query
	listOrders   *list_orders.Query
	listBanners  *bannerqueries.Query
}

// NewHandler creates a new gRPC store handler.
func NewHandler(
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	bulkUpdatePrices *bulk_update_price.Interactor,
	addCartItem *add_item.Interactor,
	updateCartItem *update_item.Interactor,
	removeCartItem *remove_item.Interactor,
	placeOrder *place_order.Interactor,
	updateOrderStatus *update_order_status.Interactor,
	saveBanner *save_banner.Interactor,
	deleteBanner *delete_banner.Interactor,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	listCart *list_cart.Query,
	getOrder *get_order.Query,
	listOrders *list_orders.Query,
	listBanners *bannerqueries.Query,
) *Handler {
	return &Handler{
		createProduct:     createProduct,
		updateProduct:     updateProduct,
		bulkUpdatePrices:  bulkUpdatePrices,
		addCartItem:       addCartItem,
		updateCartItem:    updateCartItem,
		removeCartItem:    removeCartItem,
		placeOrder:        placeOrder,
		updateOrderStatus: updateOrderStatus,
		saveBanner:        saveBanner,
		deleteBanner:      deleteBanner,
		getProduct:        getProduct,
		listProducts:      listProducts,
		listCart:          listCart,
		getOrder:          getOrder,
		listOrders:        listOrders,
		listBanners:       listBanners,
	}
}

// CreateProduct creates a new catalog product.
func (h *Handler) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.CreateProductReply, error) {
	if err := validateCreateProductRequest(req); err != nil {
		return nil, err
	}

	appReq := &create_product.Request{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Price3Items: req.Price_3Items,
		Price5Items: req.Price_5Items,
		Stock:       req.Stock,
	}

	productID, err := h.createProduct.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.CreateProductReply{ProductId: productID}, nil
}

// UpdateProduct updates product details.
func (h *Handler) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.UpdateProductReply, error) {
	if err := validateUpdateProductRequest(req); err != nil {
		return nil, err
	}

	appReq := &update_product.Request{
		ProductID:     req.ProductId,
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		Stock:         req.Stock,
		SetTierPrices: req.SetTierPrices,
		Price3Items:   req.Price_3Items,
		Price5Items:   req.Price_5Items,
	}

	if err := h.updateProduct.Execute(ctx, appReq); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.UpdateProductReply{}, nil
}

// BulkUpdatePrices reprices the entire catalog by a percentage.
func (h *Handler) BulkUpdatePrices(ctx context.Context, req *pb.BulkUpdatePricesRequest) (*pb.BulkUpdatePricesReply, error) {
	updated, err := h.bulkUpdatePrices.Execute(ctx, &bulk_update_price.Request{
		Percentage: req.Percentage,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.BulkUpdatePricesReply{ProductsUpdated: updated}, nil
}

// GetProduct retrieves a product by ID or slug.
func (h *Handler) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductReply, error) {
	queryReq := &get_product.Request{}
	switch key := req.Key.(type) {
	case *pb.GetProductRequest_ProductId:
		queryReq.ProductID = key.ProductId
	case *pb.GetProductRequest_Slug:
		queryReq.Slug = key.Slug
	default:
		return nil, errMissingField("product_id or slug")
	}

	dto, err := h.getProduct.Execute(ctx, queryReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.GetProductReply{Product: dtoToProtoProduct(dto)}, nil
}

// ListProducts retrieves a filtered, paginated product listing.
func (h *Handler) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsReply, error) {
	result, err := h.listProducts.Execute(ctx, &list_products.Request{
		Category:   req.Category,
		NamePrefix: req.NamePrefix,
		PageSize:   req.PageSize,
		Offset:     req.Offset,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	products := make([]*pb.Product, 0, len(result.Products))
	for _, dto := range result.Products {
		products = append(products, dtoToProtoProduct(dto))
	}

	return &pb.ListProductsReply{
		Products:   products,
		TotalCount: result.TotalCount,
	}, nil
}

// AddCartItem adds a product to the user's cart.
func (h *Handler) AddCartItem(ctx context.Context, req *pb.AddCartItemRequest) (*pb.AddCartItemReply, error) {
	if err := validateCartLineRequest(req.UserId, req.ProductId, req.Quantity); err != nil {
		return nil, err
	}

	quantity, err := h.addCartItem.Execute(ctx, &add_item.Request{
		UserID:    req.UserId,
		ProductID: req.ProductId,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.AddCartItemReply{Quantity: quantity}, nil
}

// UpdateCartItem replaces a cart line's quantity.
func (h *Handler) UpdateCartItem(ctx context.Context, req *pb.UpdateCartItemRequest) (*pb.UpdateCartItemReply, error) {
	if err := validateCartLineRequest(req.UserId, req.ProductId, req.Quantity); err != nil {
		return nil, err
	}

	err := h.updateCartItem.Execute(ctx, &update_item.Request{
		UserID:    req.UserId,
		ProductID: req.ProductId,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.UpdateCartItemReply{}, nil
}

// RemoveCartItem removes one line from the user's cart.
func (h *Handler) RemoveCartItem(ctx context.Context, req *pb.RemoveCartItemRequest) (*pb.RemoveCartItemReply, error) {
	if req.UserId == "" {
		return nil, errMissingField("user_id")
	}
	if req.ProductId == "" {
		return nil, errMissingField("product_id")
	}

	err := h.removeCartItem.Execute(ctx, &remove_item.Request{
		UserID:    req.UserId,
		ProductID: req.ProductId,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.RemoveCartItemReply{}, nil
}

// GetCart returns the user's cart with tier-resolved prices.
func (h *Handler) GetCart(ctx context.Context, req *pb.GetCartRequest) (*pb.GetCartReply, error) {
	if req.UserId == "" {
		return nil, errMissingField("user_id")
	}

	result, err := h.listCart.Execute(ctx, req.UserId)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	lines := make([]*pb.CartLine, 0, len(result.Lines))
	for _, line := range result.Lines {
		lines = append(lines, &pb.CartLine{
			ProductId: line.ProductID,
			Name:      line.Name,
			Slug:      line.Slug,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	return &pb.GetCartReply{
		Lines: lines,
		Total: result.Total,
	}, nil
}

// PlaceOrder turns the user's cart into an order.
func (h *Handler) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.PlaceOrderReply, error) {
	if req.UserId == "" {
		return nil, errMissingField("user_id")
	}
	if req.Courier == "" {
		return nil, errMissingField("courier")
	}

	result, err := h.placeOrder.Execute(ctx, &place_order.Request{
		UserID:  req.UserId,
		Courier: req.Courier,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.PlaceOrderReply{
		OrderId:     result.OrderID,
		OrderNumber: result.OrderNumber,
		TotalPrice:  result.TotalPrice,
	}, nil
}

// GetOrder retrieves one of the user's orders with its lines.
func (h *Handler) GetOrder(ctx context.Context, req *pb.GetOrderRequest) (*pb.GetOrderReply, error) {
	if req.UserId == "" {
		return nil, errMissingField("user_id")
	}
	if req.OrderId == "" {
		return nil, errMissingField("order_id")
	}

	order, err := h.getOrder.Execute(ctx, req.UserId, req.OrderId)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.GetOrderReply{Order: orderToProto(order)}, nil
}

// ListOrders retrieves the user's order history.
func (h *Handler) ListOrders(ctx context.Context, req *pb.ListOrdersRequest) (*pb.ListOrdersReply, error) {
	if req.UserId == "" {
		return nil, errMissingField("user_id")
	}

	orders, err := h.listOrders.Execute(ctx, &list_orders.Request{
		UserID:   req.UserId,
		PageSize: req.PageSize,
		Offset:   req.Offset,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	protoOrders := make([]*pb.Order, 0, len(orders))
	for _, order := range orders {
		protoOrders = append(protoOrders, orderToProto(order))
	}

	return &pb.ListOrdersReply{Orders: protoOrders}, nil
}

// UpdateOrderStatus moves an order to a new lifecycle state.
func (h *Handler) UpdateOrderStatus(ctx context.Context, req *pb.UpdateOrderStatusRequest) (*pb.UpdateOrderStatusReply, error) {
	if req.OrderId == "" {
		return nil, errMissingField("order_id")
	}
	if req.Status == "" {
		return nil, errMissingField("status")
	}

	err := h.updateOrderStatus.Execute(ctx, &update_order_status.Request{
		OrderID: req.OrderId,
		Status:  req.Status,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.UpdateOrderStatusReply{}, nil
}

// SaveBanner creates or replaces a storefront banner.
func (h *Handler) SaveBanner(ctx context.Context, req *pb.SaveBannerRequest) (*pb.SaveBannerReply, error) {
	if req.Title == "" {
		return nil, errMissingField("title")
	}
	if req.ImageUrl == "" {
		return nil, errMissingField("image_url")
	}

	bannerID, err := h.saveBanner.Execute(ctx, &save_banner.Request{
		BannerID:  req.BannerId,
		Title:     req.Title,
		ImageURL:  req.ImageUrl,
		TargetURL: req.TargetUrl,
		Position:  req.Position,
		Active:    req.Active,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.SaveBannerReply{BannerId: bannerID}, nil
}

// DeleteBanner removes a storefront banner.
func (h *Handler) DeleteBanner(ctx context.Context, req *pb.DeleteBannerRequest) (*pb.DeleteBannerReply, error) {
	if req.BannerId == "" {
		return nil, errMissingField("banner_id")
	}

	if err := h.deleteBanner.Execute(ctx, req.BannerId); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.DeleteBannerReply{}, nil
}

// ListBanners retrieves the active banners in display order.
func (h *Handler) ListBanners(ctx context.Context, req *pb.ListBannersRequest) (*pb.ListBannersReply, error) {
	banners, err := h.listBanners.Execute(ctx, req.IncludeInactive)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	protoBanners := make([]*pb.Banner, 0, len(banners))
	for _, banner := range banners {
		protoBanners = append(protoBanners, bannerToProto(banner))
	}

	return &pb.ListBannersReply{Banners: protoBanners}, nil
}
