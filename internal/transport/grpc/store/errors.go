package store

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	bannerdomain "github.com/garasindo/sparepart-service/internal/app/banner/domain"
	cartdomain "github.com/garasindo/sparepart-service/internal/app/cart/domain"
	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	orderdomain "github.com/garasindo/sparepart-service/internal/app/order/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
// Validation failures map to InvalidArgument, state conflicts to
// FailedPrecondition, missing aggregates to NotFound; anything else is
// an opaque Internal.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	var stockErr *catalogdomain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return status.Errorf(codes.FailedPrecondition,
			"insufficient stock for %q: requested %d, available %d",
			stockErr.Name, stockErr.Requested, stockErr.Available)
	}

	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")
	case errors.Is(err, orderdomain.ErrOrderNotFound):
		return status.Error(codes.NotFound, "order not found")
	case errors.Is(err, cartdomain.ErrCartItemNotFound):
		return status.Error(codes.NotFound, "cart item not found")
	case errors.Is(err, bannerdomain.ErrBannerNotFound):
		return status.Error(codes.NotFound, "banner not found")

	case errors.Is(err, catalogdomain.ErrEmptyName):
		return status.Error(codes.InvalidArgument, "product name cannot be empty")
	case errors.Is(err, catalogdomain.ErrInvalidCategory):
		return status.Error(codes.InvalidArgument, "product category cannot be empty")
	case errors.Is(err, catalogdomain.ErrInvalidPrice):
		return status.Error(codes.InvalidArgument, "product price must be positive")
	case errors.Is(err, catalogdomain.ErrInvalidStock):
		return status.Error(codes.InvalidArgument, "product stock cannot be negative")
	case errors.Is(err, catalogdomain.ErrInvalidPercentage):
		return status.Error(codes.InvalidArgument, "percentage must be greater than -100")
	case errors.Is(err, catalogdomain.ErrInvalidQuantity):
		return status.Error(codes.InvalidArgument, "quantity must be positive")

	case errors.Is(err, cartdomain.ErrInvalidQuantity):
		return status.Error(codes.InvalidArgument, "cart quantity must be positive")
	case errors.Is(err, cartdomain.ErrQuantityLimitExceeded):
		return status.Error(codes.InvalidArgument, "cart quantity exceeds the per-line limit")
	case errors.Is(err, cartdomain.ErrMissingIdentifier):
		return status.Error(codes.InvalidArgument, "user_id and product_id are required")

	case errors.Is(err, orderdomain.ErrUnknownCourier):
		return status.Error(codes.InvalidArgument, "unknown courier code")
	case errors.Is(err, orderdomain.ErrUnknownStatus):
		return status.Error(codes.InvalidArgument, "unknown order status")
	case errors.Is(err, orderdomain.ErrEmptyCart):
		return status.Error(codes.InvalidArgument, "cart is empty")

	case errors.Is(err, bannerdomain.ErrEmptyTitle):
		return status.Error(codes.InvalidArgument, "banner title cannot be empty")
	case errors.Is(err, bannerdomain.ErrEmptyImageURL):
		return status.Error(codes.InvalidArgument, "banner image URL cannot be empty")
	case errors.Is(err, bannerdomain.ErrInvalidPosition):
		return status.Error(codes.InvalidArgument, "banner position cannot be negative")

	case errors.Is(err, catalogdomain.ErrSlugTaken):
		return status.Error(codes.AlreadyExists, "a product with this name already exists")

	case errors.Is(err, cartdomain.ErrProductUnavailable):
		return status.Error(codes.FailedPrecondition, "product is unavailable or out of stock")
	case errors.Is(err, orderdomain.ErrIllegalStatusChange):
		return status.Error(codes.FailedPrecondition, "illegal order status transition")

	case errors.Is(err, orderdomain.ErrOrderNumberExhausted):
		return status.Error(codes.Aborted, "could not allocate an order number, retry the request")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

// errMissingField builds the InvalidArgument status for an absent field.
func errMissingField(field string) error {
	return status.Error(codes.InvalidArgument, field+" is required")
}
