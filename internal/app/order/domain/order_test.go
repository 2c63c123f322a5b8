package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productID string, qty, price int64) *OrderItem {
	t.Helper()
	item, err := NewOrderItem(productID, qty, price)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("total is items plus flat shipping", func(t *testing.T) {
		items := []*OrderItem{
			mustItem(t, "prod-1", 2, 15000),
			mustItem(t, "prod-2", 5, 9000),
		}

		order, err := NewOrder("order-1", "user-1", "ORD-20250601-AB12CD34", CourierJNE, items, now)
		require.NoError(t, err)

		// 2*15000 + 5*9000 + 20000 shipping
		assert.Equal(t, int64(95000), order.TotalPrice())
		assert.Equal(t, int64(20000), order.ShippingCost())
		assert.Equal(t, StatusPending, order.Status())
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := NewOrder("order-1", "user-1", "ORD-20250601-AB12CD34", CourierJNE, nil, now)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("unknown courier is rejected", func(t *testing.T) {
		items := []*OrderItem{mustItem(t, "prod-1", 1, 15000)}
		_, err := NewOrder("order-1", "user-1", "ORD-20250601-AB12CD34", Courier("gojek"), items, now)
		assert.ErrorIs(t, err, ErrUnknownCourier)
	})

	t.Run("records a placed event", func(t *testing.T) {
		items := []*OrderItem{mustItem(t, "prod-1", 1, 15000)}
		order, err := NewOrder("order-1", "user-1", "ORD-20250601-AB12CD34", CourierSiCepat, items, now)
		require.NoError(t, err)

		events := order.DomainEvents()
		require.Len(t, events, 1)
		placed, ok := events[0].(*OrderPlacedEvent)
		require.True(t, ok)
		assert.Equal(t, "order.placed", placed.EventType())
		assert.Equal(t, "order-1", placed.AggregateID())
		assert.Equal(t, int64(33000), placed.TotalPrice)
	})
}

func TestNewOrderItem(t *testing.T) {
	t.Run("rejects invalid lines", func(t *testing.T) {
		_, err := NewOrderItem("", 1, 100)
		assert.ErrorIs(t, err, ErrInvalidOrderItem)

		_, err = NewOrderItem("prod-1", 0, 100)
		assert.ErrorIs(t, err, ErrInvalidOrderItem)

		_, err = NewOrderItem("prod-1", 1, 0)
		assert.ErrorIs(t, err, ErrInvalidOrderItem)
	})

	t.Run("subtotal", func(t *testing.T) {
		item := mustItem(t, "prod-1", 3, 14000)
		assert.Equal(t, int64(42000), item.Subtotal())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	newPending := func(t *testing.T) *Order {
		items := []*OrderItem{mustItem(t, "prod-1", 1, 15000)}
		order, err := NewOrder("order-1", "user-1", "ORD-20250601-AB12CD34", CourierJNE, items, now)
		require.NoError(t, err)
		order.ClearEvents()
		return order
	}

	t.Run("pending to completed", func(t *testing.T) {
		order := newPending(t)
		require.NoError(t, order.ChangeStatus(StatusCompleted, now))
		assert.Equal(t, StatusCompleted, order.Status())

		events := order.DomainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(*OrderStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, "pending", changed.From)
		assert.Equal(t, "completed", changed.To)
	})

	t.Run("pending to cancelled", func(t *testing.T) {
		order := newPending(t)
		assert.NoError(t, order.ChangeStatus(StatusCancelled, now))
	})

	t.Run("terminal states are final", func(t *testing.T) {
		order := newPending(t)
		require.NoError(t, order.ChangeStatus(StatusCompleted, now))

		err := order.ChangeStatus(StatusCancelled, now)
		assert.ErrorIs(t, err, ErrIllegalStatusChange)
		assert.Equal(t, StatusCompleted, order.Status())
	})
}

func TestCourier(t *testing.T) {
	tests := []struct {
		code    string
		cost    int64
		wantErr bool
	}{
		{code: "jne", cost: 20000},
		{code: "tiki", cost: 25000},
		{code: "sicepat", cost: 18000},
		{code: "gojek", wantErr: true},
		{code: "", wantErr: true},
		{code: "JNE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			courier, err := ParseCourier(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCourier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cost, courier.ShippingCost())
		})
	}
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^ORD-20250601-[0-9A-F]{8}$`)

	t.Run("format", func(t *testing.T) {
		number := NewOrderNumber(now)
		assert.Regexp(t, pattern, number)
	})

	t.Run("successive numbers differ", func(t *testing.T) {
		assert.NotEqual(t, NewOrderNumber(now), NewOrderNumber(now))
	})
}
