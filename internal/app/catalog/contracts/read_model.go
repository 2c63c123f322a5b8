package contracts

import (
	"context"
	"time"
)

// ProductDTO is the read-side representation of a product.
type ProductDTO struct {
	ProductID       string
	Name            string
	Slug            string
	Category        string
	Price           int64
	Price3Items     *int64
	Price5Items     *int64
	Stock           int64
	LastPriceUpdate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ListFilter narrows and pages the product listing.
type ListFilter struct {
	Category   string
	NamePrefix string
	PageSize   int64
	Offset     int64
}

// ListResult carries one page of products plus the unpaged total.
type ListResult struct {
	Products   []*ProductDTO
	TotalCount int64
}

// ReadModel defines read-only catalog queries for the presentation layer.
type ReadModel interface {
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)
	GetProductBySlug(ctx context.Context, slug string) (*ProductDTO, error)
	ListProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)
}
