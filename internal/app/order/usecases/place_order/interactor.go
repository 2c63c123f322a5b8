package place_order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	cartcontracts "github.com/garasindo/sparepart-service/internal/app/cart/contracts"
	cartdomain "github.com/garasindo/sparepart-service/internal/app/cart/domain"
	catalogcontracts "github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/app/order/contracts"
	"github.com/garasindo/sparepart-service/internal/app/order/domain"
	"github.com/garasindo/sparepart-service/internal/app/outbox"
	"github.com/garasindo/sparepart-service/internal/pkg/clock"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
	"github.com/garasindo/sparepart-service/internal/pkg/metrics"
)

// maxNumberAttempts bounds the regeneration loop for a unique order number.
const maxNumberAttempts = 5

// Request contains the data needed to place an order.
type Request struct {
	UserID  string
	Courier string
}

// Result reports the committed order back to the caller.
type Result struct {
	OrderID     string
	OrderNumber string
	TotalPrice  int64
}

// Interactor handles checkout. Everything it does happens inside one
// Spanner read-write transaction: cart read, stock validation, order and
// order line inserts, stock decrements and the cart clear commit together
// or not at all.
type Interactor struct {
	orderRepo   contracts.OrderRepository
	cartRepo    cartcontracts.CartRepository
	productRepo catalogcontracts.ProductRepository
	outboxRepo  outbox.Repository
	committer   *committer.Committer
	clock       clock.Clock
	metrics     *metrics.StoreMetrics
}

// NewInteractor creates a new place order interactor.
func NewInteractor(
	orderRepo contracts.OrderRepository,
	cartRepo cartcontracts.CartRepository,
	productRepo catalogcontracts.ProductRepository,
	outboxRepo outbox.Repository,
	committer *committer.Committer,
	clock clock.Clock,
	storeMetrics *metrics.StoreMetrics,
) *Interactor {
	return &Interactor{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
		metrics:     storeMetrics,
	}
}

// Execute turns the user's cart into an order. Unit prices are tier-resolved
// from the product rows as read inside the transaction, so the price charged
// matches the stock that was reserved. A failure at any point rolls back the
// whole checkout and leaves the cart untouched.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	courier, err := domain.ParseCourier(req.Courier)
	if err != nil {
		i.metrics.OrdersPlaced.WithLabelValues("invalid_courier").Inc()
		return nil, err
	}

	start := i.clock.Now()
	var result *Result

	err = i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		// Spanner may re-run this function on aborts; everything below is
		// derived from transactional reads, so a re-run starts clean.
		lines, err := i.cartRepo.ListInTxn(ctx, txn, req.UserID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}

		plan := committer.NewPlan()
		items, err := i.reserveStock(ctx, txn, plan, lines)
		if err != nil {
			return err
		}

		number, err := i.resolveNumber(ctx, txn)
		if err != nil {
			return err
		}

		order, err := domain.NewOrder(uuid.New().String(), req.UserID, number, courier, items, i.clock.Now())
		if err != nil {
			return err
		}
		defer order.ClearEvents()

		plan.AddMultiple(i.orderRepo.InsertMuts(order))
		plan.Add(i.cartRepo.ClearMut(req.UserID))

		for _, event := range order.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
		}

		result = &Result{
			OrderID:     order.ID(),
			OrderNumber: order.Number(),
			TotalPrice:  order.TotalPrice(),
		}
		return plan.Buffer(txn)
	})

	i.metrics.CheckoutLatency.Observe(i.clock.Now().Sub(start).Seconds())
	i.metrics.OrdersPlaced.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		return nil, err
	}
	return result, nil
}

// reserveStock prices and reserves each cart line in one pass. The product
// read locks the row, the aggregate's DecrementStock validates availability,
// and the absolute stock value is buffered onto the plan. Insufficient stock
// on any line rolls back the checkout.
func (i *Interactor) reserveStock(ctx context.Context, txn *spanner.ReadWriteTransaction, plan *committer.CommitPlan, lines []*cartdomain.CartItem) ([]*domain.OrderItem, error) {
	items := make([]*domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, err := i.productRepo.GetInTxn(ctx, txn, line.ProductID())
		if err != nil {
			if errors.Is(err, catalogdomain.ErrProductNotFound) {
				return nil, cartdomain.ErrProductUnavailable
			}
			return nil, err
		}

		if err := product.DecrementStock(line.Quantity()); err != nil {
			return nil, err
		}
		plan.Add(i.productRepo.StockMut(product.ID(), product.Stock()))

		item, err := domain.NewOrderItem(product.ID(), line.Quantity(), product.UnitPriceFor(line.Quantity()))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (i *Interactor) resolveNumber(ctx context.Context, txn *spanner.ReadWriteTransaction) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		candidate := domain.NewOrderNumber(i.clock.Now())
		taken, err := i.orderRepo.NumberExistsInTxn(ctx, txn, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", domain.ErrOrderNumberExhausted
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case catalogdomain.IsInsufficientStock(err):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	default:
		return "error"
	}
}
