package store

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	bannerdomain "github.com/garasindo/sparepart-service/internal/app/banner/domain"
	catalogcontracts "github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	orderdomain "github.com/garasindo/sparepart-service/internal/app/order/domain"
	pb "github.com/garasindo/sparepart-service/proto/store/v1"
)

// dtoToProtoProduct converts a read-model product DTO to its proto shape.
func dtoToProtoProduct(dto *catalogcontracts.ProductDTO) *pb.Product {
	product := &pb.Product{
		ProductId:    dto.ProductID,
		Name:         dto.Name,
		Slug:         dto.Slug,
		Category:     dto.Category,
		Price:        dto.Price,
		Price_3Items: dto.Price3Items,
		Price_5Items: dto.Price5Items,
		Stock:        dto.Stock,
		CreatedAt:    timestamppb.New(dto.CreatedAt),
		UpdatedAt:    timestamppb.New(dto.UpdatedAt),
	}
	if dto.LastPriceUpdate != nil {
		product.LastPriceUpdate = timestamppb.New(*dto.LastPriceUpdate)
	}
	return product
}

// orderToProto converts an order aggregate to its proto shape.
func orderToProto(order *orderdomain.Order) *pb.Order {
	items := make([]*pb.OrderItem, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, &pb.OrderItem{
			ProductId:       item.ProductID(),
			Quantity:        item.Quantity(),
			PriceAtPurchase: item.PriceAtPurchase(),
			Subtotal:        item.Subtotal(),
		})
	}

	return &pb.Order{
		OrderId:      order.ID(),
		UserId:       order.UserID(),
		OrderNumber:  order.Number(),
		Courier:      order.Courier().String(),
		ShippingCost: order.ShippingCost(),
		TotalPrice:   order.TotalPrice(),
		Status:       order.Status().String(),
		Items:        items,
		CreatedAt:    timestamppb.New(order.CreatedAt()),
	}
}

// bannerToProto converts a banner to its proto shape.
func bannerToProto(banner *bannerdomain.Banner) *pb.Banner {
	return &pb.Banner{
		BannerId:  banner.ID(),
		Title:     banner.Title(),
		ImageUrl:  banner.ImageURL(),
		TargetUrl: banner.TargetURL(),
		Position:  banner.Position(),
		Active:    banner.Active(),
	}
}
