package save_banner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/garasindo/sparepart-service/internal/app/banner/contracts"
	"github.com/garasindo/sparepart-service/internal/app/banner/domain"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
)

// Request contains the data needed to create or replace a banner. A blank
// BannerID creates a new banner.
type Request struct {
	BannerID  string
	Title     string
	ImageURL  string
	TargetURL *string
	Position  int64
	Active    bool
}

// Interactor handles the save banner use case.
type Interactor struct {
	repo      contracts.BannerRepository
	committer *committer.Committer
}

// NewInteractor creates a new save banner interactor.
func NewInteractor(repo contracts.BannerRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute writes the banner and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	bannerID := req.BannerID
	if bannerID == "" {
		bannerID = uuid.New().String()
	}

	banner, err := domain.NewBanner(bannerID, req.Title, req.ImageURL, req.TargetURL, req.Position, req.Active)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpsertMut(banner))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return bannerID, nil
}
