package bulk_update_price

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
	"github.com/garasindo/sparepart-service/internal/pkg/metrics"
)

// Request contains the repricing parameters.
type Request struct {
	// Percentage is the relative price change, e.g. 5 for a 5% increase.
	// Values at or below -100 are rejected.
	Percentage float64
}

// Interactor handles the bulk price update use case. Every product row is
// repriced with domain.RoundPriceUp in one transaction; either all rows
// update or none do.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo outbox.Repository
	committer  *committer.Committer
	clock      clock.Clock
	metrics    *metrics.StoreMetrics
}

// NewInteractor creates a new bulk price update interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo outbox.Repository,
	committer *committer.Committer,
	clock clock.Clock,
	storeMetrics *metrics.StoreMetrics,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
		metrics:    storeMetrics,
	}
}

// Execute applies the percentage change to the whole catalog and returns
// the number of rows updated.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	// Validate before touching storage.
	pct, err := domain.PercentageRat(req.Percentage)
	if err != nil {
		return 0, err
	}

	var updated int64
	err = i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		// The transaction function can re-run on aborts; reset the count.
		updated = 0

		products, err := i.repo.ListAllInTxn(ctx, txn)
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		for _, product := range products {
			newPrice := domain.RoundPriceUp(product.Price(), pct)
			plan.Add(i.repo.RepriceMut(product.ID(), newPrice))
			updated++
		}

		event := &domain.PricesBulkUpdatedEvent{
			Percentage:  req.Percentage,
			RowsUpdated: updated,
			AppliedAt:   i.clock.Now(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))

		return plan.Buffer(txn)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to commit bulk price update: %w", err)
	}

	i.metrics.PricesUpdated.Add(float64(updated))
	return updated, nil
}
