package store

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/garasindo/sparepart-service/proto/store/v1"
)

// validateCreateProductRequest validates the CreateProduct request.
func validateCreateProductRequest(req *pb.CreateProductRequest) error {
	if req.Name == "" {
		return errMissingField("name")
	}
	if req.Category == "" {
		return errMissingField("category")
	}
	if req.Price <= 0 {
		return status.Error(codes.InvalidArgument, "price must be positive")
	}
	if req.Stock < 0 {
		return status.Error(codes.InvalidArgument, "stock cannot be negative")
	}
	return nil
}

// validateUpdateProductRequest validates the UpdateProduct request.
func validateUpdateProductRequest(req *pb.UpdateProductRequest) error {
	if req.ProductId == "" {
		return errMissingField("product_id")
	}
	// At least one field must be provided for update
	if req.Name == nil && req.Category == nil && req.Price == nil && req.Stock == nil && !req.SetTierPrices {
		return status.Error(codes.InvalidArgument, "at least one field must be provided for update")
	}
	return nil
}

// validateCartLineRequest validates the shared shape of cart line writes.
func validateCartLineRequest(userID, productID string, quantity int64) error {
	if userID == "" {
		return errMissingField("user_id")
	}
	if productID == "" {
		return errMissingField("product_id")
	}
	if quantity <= 0 {
		return status.Error(codes.InvalidArgument, "quantity must be positive")
	}
	return nil
}
