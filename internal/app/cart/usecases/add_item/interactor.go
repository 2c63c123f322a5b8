package add_item

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"

	cartcontracts "github.com/garasindo/sparepart-service/internal/app/cart/contracts"
	"github.com/garasindo/sparepart-service/internal/app/cart/domain"
	catalogcontracts "github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
)

// Request contains the data needed to add a product to a cart.
type Request struct {
	UserID    string
	ProductID string
	Quantity  int64
}

// Interactor handles the add-to-cart use case.
type Interactor struct {
	cartRepo    cartcontracts.CartRepository
	productRepo catalogcontracts.ProductRepository
	committer   *committer.Committer
}

// NewInteractor creates a new add item interactor.
func NewInteractor(
	cartRepo cartcontracts.CartRepository,
	productRepo catalogcontracts.ProductRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		committer:   committer,
	}
}

// Execute adds quantity units of a product to the user's cart. A repeat
// add of the same product accumulates onto the existing line. The read and
// the write share one read-write transaction, so two concurrent adds of the
// same line serialize and both increments land. The product must exist and
// have stock on hand; the definitive stock check happens at checkout.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	var quantity int64

	err := i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		product, err := i.productRepo.GetInTxn(ctx, txn, req.ProductID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrProductNotFound) {
				return domain.ErrProductUnavailable
			}
			return err
		}
		if product.Stock() <= 0 {
			return domain.ErrProductUnavailable
		}

		item, err := i.resolveLine(ctx, txn, req)
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.cartRepo.UpsertMut(item))

		quantity = item.Quantity()
		return plan.Buffer(txn)
	})
	if err != nil {
		return 0, err
	}

	return quantity, nil
}

func (i *Interactor) resolveLine(ctx context.Context, txn *spanner.ReadWriteTransaction, req *Request) (*domain.CartItem, error) {
	existing, err := i.cartRepo.GetItemInTxn(ctx, txn, req.UserID, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			return domain.NewCartItem(req.UserID, req.ProductID, req.Quantity)
		}
		return nil, err
	}

	if err := existing.AddQuantity(req.Quantity); err != nil {
		return nil, err
	}
	return existing, nil
}
