package list_products

import (
	"context"

	"github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
)

// Request filters and pages the product listing. NamePrefix backs the
// storefront's search box.
type Request struct {
	Category   string
	NamePrefix string
	PageSize   int64
	Offset     int64
}

// Query handles paginated catalog listings.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns one page of products plus the total count.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	return q.readModel.ListProducts(ctx, &contracts.ListFilter{
		Category:   req.Category,
		NamePrefix: req.NamePrefix,
		PageSize:   req.PageSize,
		Offset:     req.Offset,
	})
}
