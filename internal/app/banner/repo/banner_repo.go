package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/garasindo/sparepart-service/internal/app/banner/contracts"
	"github.com/garasindo/sparepart-service/internal/app/banner/domain"
	"github.com/garasindo/sparepart-service/internal/models/m_banner"
	"github.com/garasindo/sparepart-service/internal/pkg/query"
)

// BannerRepositoryImpl implements the BannerRepository interface for Spanner.
type BannerRepositoryImpl struct {
	client *spanner.Client
	model  *m_banner.Model
}

// NewBannerRepository creates a new BannerRepository implementation.
func NewBannerRepository(client *spanner.Client) contracts.BannerRepository {
	return &BannerRepositoryImpl{
		client: client,
		model:  m_banner.NewModel(),
	}
}

// UpsertMut creates a mutation inserting or replacing a banner.
func (r *BannerRepositoryImpl) UpsertMut(banner *domain.Banner) *spanner.Mutation {
	data := &m_banner.Data{
		BannerID: banner.ID(),
		Title:    banner.Title(),
		ImageURL: banner.ImageURL(),
		Position: banner.Position(),
		Active:   banner.Active(),
	}
	if target := banner.TargetURL(); target != nil {
		data.TargetURL = spanner.NullString{StringVal: *target, Valid: true}
	}
	return r.model.UpsertMut(data)
}

// DeleteMut creates a mutation removing a banner.
func (r *BannerRepositoryImpl) DeleteMut(bannerID string) *spanner.Mutation {
	return r.model.DeleteMut(bannerID)
}

// Exists checks whether a banner row is present.
func (r *BannerRepositoryImpl) Exists(ctx context.Context, bannerID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_banner.TableName, spanner.Key{bannerID}, []string{m_banner.BannerID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to probe banner: %w", err)
	}
	return true, nil
}

// List retrieves banners ordered by position. The storefront asks for
// active banners only; admin listings include inactive ones.
func (r *BannerRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]*domain.Banner, error) {
	base := query.From(m_banner.TableName).Select(m_banner.ReadColumns()...)
	if !includeInactive {
		base = base.Where(query.Eq(m_banner.Active, true))
	}
	stmt := base.OrderBy(m_banner.Position, query.Asc).Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	banners := make([]*domain.Banner, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate banners: %w", err)
		}

		var data m_banner.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse banner: %w", err)
		}

		var target *string
		if data.TargetURL.Valid {
			target = &data.TargetURL.StringVal
		}
		banners = append(banners, domain.ReconstructBanner(
			data.BannerID,
			data.Title,
			data.ImageURL,
			target,
			data.Position,
			data.Active,
		))
	}

	return banners, nil
}
