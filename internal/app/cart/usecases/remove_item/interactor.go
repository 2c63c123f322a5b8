package remove_item

import (
	"context"
	"fmt"

	"github.com/garasindo/sparepart-service/internal/app/cart/contracts"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
)

// Request identifies the cart line to remove.
type Request struct {
	UserID    string
	ProductID string
}

// Interactor handles the remove cart item use case.
type Interactor struct {
	cartRepo  contracts.CartRepository
	committer *committer.Committer
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(cartRepo contracts.CartRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		cartRepo:  cartRepo,
		committer: committer,
	}
}

// Execute removes one line from the user's cart. Removing a line that does
// not exist fails with ErrCartItemNotFound so callers can surface it.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if _, err := i.cartRepo.GetItem(ctx, req.UserID, req.ProductID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.cartRepo.DeleteMut(req.UserID, req.ProductID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
