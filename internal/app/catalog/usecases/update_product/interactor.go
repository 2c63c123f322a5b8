package update_product

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	"github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/app/outbox"
	"github.com/garasindo/sparepart-service/internal/pkg/clock"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
)

// Request contains the data needed to update a product. Nil pointer fields
// are left untouched; SetTierPrices replaces both tiers when true.
type Request struct {
	ProductID string

	Name     *string
	Category *string
	Price    *int64
	Stock    *int64

	SetTierPrices bool
	Price3Items   *int64
	Price5Items   *int64
}

// Interactor handles the update product use case (admin edits).
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo outbox.Repository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo outbox.Repository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute applies the requested field changes to a product. The read and
// the dirty-field write share one read-write transaction, so concurrent
// edits of the same product serialize instead of overwriting each other.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return fmt.Errorf("product ID is required: %w", domain.ErrProductNotFound)
	}

	return i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		product, err := i.repo.GetInTxn(ctx, txn, req.ProductID)
		if err != nil {
			return err
		}

		// Clear events on function exit to prevent duplicates on retry
		defer product.ClearEvents()

		if req.Name != nil {
			if err := product.SetName(*req.Name); err != nil {
				return err
			}
		}

		if req.Category != nil {
			if err := product.SetCategory(*req.Category); err != nil {
				return err
			}
		}

		if req.Price != nil {
			if err := product.SetPrice(*req.Price); err != nil {
				return err
			}
		}

		if req.SetTierPrices {
			if err := product.SetTierPrices(req.Price3Items, req.Price5Items); err != nil {
				return err
			}
		}

		if req.Stock != nil {
			if err := product.SetStock(*req.Stock); err != nil {
				return err
			}
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.UpdateMut(product))

		for _, event := range product.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
		}

		if plan.IsEmpty() {
			return nil // No changes
		}

		return plan.Buffer(txn)
	})
}
