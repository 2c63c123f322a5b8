package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/garasindo/sparepart-service/internal/app/banner/domain"
)

// BannerRepository defines banner persistence.
type BannerRepository interface {
	// UpsertMut creates a mutation inserting or replacing a banner
	UpsertMut(banner *domain.Banner) *spanner.Mutation

	// DeleteMut creates a mutation removing a banner
	DeleteMut(bannerID string) *spanner.Mutation

	// Exists checks whether a banner row is present
	Exists(ctx context.Context, bannerID string) (bool, error)

	// List retrieves banners ordered by position, optionally including
	// inactive ones
	List(ctx context.Context, includeInactive bool) ([]*domain.Banner, error)
}
