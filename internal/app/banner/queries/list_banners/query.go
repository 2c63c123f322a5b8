package list_banners

import (
	"context"

	"github.com/garasindo/sparepart-service/internal/app/banner/contracts"
	"github.com/garasindo/sparepart-service/internal/app/banner/domain"
)

// Query handles the list banners read.
type Query struct {
	repo contracts.BannerRepository
}

// NewQuery creates a new list banners query.
func NewQuery(repo contracts.BannerRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute returns banners in display order. The storefront passes
// includeInactive false; admin tooling may ask for everything.
func (q *Query) Execute(ctx context.Context, includeInactive bool) ([]*domain.Banner, error) {
	return q.repo.List(ctx, includeInactive)
}
