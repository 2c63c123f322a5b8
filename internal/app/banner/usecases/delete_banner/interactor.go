package delete_banner

import (
	"context"
	"fmt"

	"github.com/garasindo/sparepart-service/internal/app/banner/contracts"
	"github.com/garasindo/sparepart-service/internal/app/banner/domain"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
)

// Interactor handles the delete banner use case.
type Interactor struct {
	repo      contracts.BannerRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete banner interactor.
func NewInteractor(repo contracts.BannerRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute removes a banner. Deleting an absent banner fails with
// ErrBannerNotFound.
func (i *Interactor) Execute(ctx context.Context, bannerID string) error {
	exists, err := i.repo.Exists(ctx, bannerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrBannerNotFound
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(bannerID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
