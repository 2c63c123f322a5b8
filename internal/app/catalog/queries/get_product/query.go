package get_product

import (
	"context"

	"github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	"github.com/garasindo/sparepart-service/internal/app/catalog/domain"
)

// Request identifies the product to fetch, by ID or by slug.
type Request struct {
	ProductID string
	Slug      string
}

// Query handles product detail lookups.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the product DTO for the requested identifier.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	switch {
	case req.ProductID != "":
		return q.readModel.GetProductByID(ctx, req.ProductID)
	case req.Slug != "":
		return q.readModel.GetProductBySlug(ctx, req.Slug)
	default:
		return nil, domain.ErrProductNotFound
	}
}
