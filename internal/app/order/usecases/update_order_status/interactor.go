package update_order_status

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/garasindo/sparepart-service/internal/app/order/contracts"
	"github.com/garasindo/sparepart-service/internal/app/order/domain"
	"github.com/garasindo/sparepart-service/internal/app/outbox"
	"github.com/garasindo/sparepart-service/internal/pkg/clock"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
)

// Request identifies the order and its target status.
type Request struct {
	OrderID string
	Status  string
}

// Interactor handles the update order status use case.
type Interactor struct {
	orderRepo  contracts.OrderRepository
	outboxRepo outbox.Repository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new update order status interactor.
func NewInteractor(
	orderRepo contracts.OrderRepository,
	outboxRepo outbox.Repository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute moves an order to a new status. Only the transitions the aggregate
// allows go through; anything else fails with ErrIllegalStatusChange. The
// status read and write share one read-write transaction, so two racing
// transitions out of pending cannot both win.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	return i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		order, err := i.orderRepo.GetInTxn(ctx, txn, req.OrderID)
		if err != nil {
			return err
		}
		defer order.ClearEvents()

		if err := order.ChangeStatus(target, i.clock.Now()); err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.orderRepo.UpdateStatusMut(order.ID(), order.Status()))

		for _, event := range order.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
		}

		return plan.Buffer(txn)
	})
}
