package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/garasindo/sparepart-service/internal/app/order/contracts"
	"github.com/garasindo/sparepart-service/internal/app/order/domain"
	"github.com/garasindo/sparepart-service/internal/models/m_order"
	"github.com/garasindo/sparepart-service/internal/models/m_order_item"
	"github.com/garasindo/sparepart-service/internal/pkg/query"
)

// OrderRepositoryImpl implements the OrderRepository interface for Spanner.
type OrderRepositoryImpl struct {
	client    *spanner.Client
	model     *m_order.Model
	itemModel *m_order_item.Model
}

// NewOrderRepository creates a new OrderRepository implementation.
func NewOrderRepository(client *spanner.Client) contracts.OrderRepository {
	return &OrderRepositoryImpl{
		client:    client,
		model:     m_order.NewModel(),
		itemModel: m_order_item.NewModel(),
	}
}

// InsertMuts creates the mutations writing an order header and its lines.
// The order_items table is interleaved in orders, so one commit carries all
// of them.
func (r *OrderRepositoryImpl) InsertMuts(order *domain.Order) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0, len(order.Items())+1)
	muts = append(muts, r.model.InsertMut(&m_order.Data{
		OrderID:      order.ID(),
		UserID:       order.UserID(),
		OrderNumber:  order.Number(),
		Courier:      order.Courier().String(),
		ShippingCost: order.ShippingCost(),
		TotalPrice:   order.TotalPrice(),
		Status:       order.Status().String(),
	}))

	for _, item := range order.Items() {
		muts = append(muts, r.itemModel.InsertMut(&m_order_item.Data{
			OrderID:         order.ID(),
			ProductID:       item.ProductID(),
			Quantity:        item.Quantity(),
			PriceAtPurchase: item.PriceAtPurchase(),
		}))
	}

	return muts
}

// UpdateStatusMut creates a mutation changing only the order status.
func (r *OrderRepositoryImpl) UpdateStatusMut(orderID string, status domain.Status) *spanner.Mutation {
	return r.model.UpdateStatusMut(orderID, status.String())
}

// NumberExistsInTxn checks order number uniqueness through the unique index,
// inside the checkout transaction so two commits cannot race past it.
func (r *OrderRepositoryImpl) NumberExistsInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, number string) (bool, error) {
	_, err := txn.ReadRowUsingIndex(ctx, m_order.TableName, m_order.NumberIndex, spanner.Key{number}, []string{m_order.OrderNumber})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to probe order number: %w", err)
	}
	return true, nil
}

// rowReader is satisfied by both single-use read-only transactions and
// open read-write transactions.
type rowReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Read(ctx context.Context, table string, keys spanner.KeySet, columns []string) *spanner.RowIterator
}

// GetByID retrieves an order with its lines. Both reads share one
// read-only transaction so the header and the lines come from the same
// snapshot.
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()
	return r.get(ctx, txn, orderID)
}

// GetInTxn retrieves an order with its lines inside an open read-write
// transaction so a status transition serializes against concurrent ones.
func (r *OrderRepositoryImpl) GetInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, orderID string) (*domain.Order, error) {
	return r.get(ctx, txn, orderID)
}

func (r *OrderRepositoryImpl) get(ctx context.Context, reader rowReader, orderID string) (*domain.Order, error) {
	row, err := reader.ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var data m_order.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}

	items, err := r.readItems(ctx, reader, orderID)
	if err != nil {
		return nil, err
	}

	return toDomain(&data, items), nil
}

// ListByUser retrieves one page of a user's orders, newest first.
func (r *OrderRepositoryImpl) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]*domain.Order, error) {
	stmt := query.From(m_order.TableName).
		Select(m_order.ReadColumns()...).
		Where(query.Eq(m_order.UserID, userID)).
		OrderBy(m_order.CreatedAt, query.Desc).
		Limit(limit).
		Offset(offset).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	orders := make([]*domain.Order, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}

		items, err := r.readItems(ctx, r.client.Single(), data.OrderID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, toDomain(&data, items))
	}

	return orders, nil
}

func (r *OrderRepositoryImpl) readItems(ctx context.Context, reader rowReader, orderID string) ([]*domain.OrderItem, error) {
	iter := reader.Read(ctx, m_order_item.TableName, spanner.Key{orderID}.AsPrefix(), m_order_item.ReadColumns())
	defer iter.Stop()

	items := make([]*domain.OrderItem, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate order items: %w", err)
		}

		var data m_order_item.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order item: %w", err)
		}
		items = append(items, domain.ReconstructOrderItem(data.ProductID, data.Quantity, data.PriceAtPurchase))
	}

	return items, nil
}

func toDomain(data *m_order.Data, items []*domain.OrderItem) *domain.Order {
	return domain.ReconstructOrder(
		data.OrderID,
		data.UserID,
		data.OrderNumber,
		domain.Courier(data.Courier),
		items,
		data.ShippingCost,
		data.TotalPrice,
		domain.Status(data.Status),
		data.CreatedAt,
	)
}
