package update_item

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/garasindo/sparepart-service/internal/app/cart/contracts"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
)

// Request contains the data needed to change a cart line's quantity.
type Request struct {
	UserID    string
	ProductID string
	Quantity  int64
}

// Interactor handles the update cart item use case.
type Interactor struct {
	cartRepo  contracts.CartRepository
	committer *committer.Committer
}

// NewInteractor creates a new update item interactor.
func NewInteractor(cartRepo contracts.CartRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		cartRepo:  cartRepo,
		committer: committer,
	}
}

// Execute replaces the quantity of an existing cart line. The existence
// check and the write share one read-write transaction so the line cannot
// vanish between them.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		item, err := i.cartRepo.GetItemInTxn(ctx, txn, req.UserID, req.ProductID)
		if err != nil {
			return err
		}

		if err := item.SetQuantity(req.Quantity); err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.cartRepo.UpsertMut(item))
		return plan.Buffer(txn)
	})
}
