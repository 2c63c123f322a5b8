package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garasindo/sparepart-service/internal/pkg/clock"
)

func int64Ptr(v int64) *int64 { return &v }

func newTestProduct(t *testing.T, price int64, price3, price5 *int64, stock int64) *Product {
	t.Helper()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	p, err := NewProduct("prod-1", "Kampas Rem Depan", "kampas-rem-depan", "brake", price, price3, price5, stock, now, clk)
	require.NoError(t, err)
	p.ClearEvents()
	return p
}

func TestNewProduct_Validation(t *testing.T) {
	now := time.Now()
	clk := clock.NewRealClock()

	tests := []struct {
		name    string
		product func() (*Product, error)
		wantErr error
	}{
		{
			"empty name",
			func() (*Product, error) {
				return NewProduct("id", "", "slug", "brake", 1000, nil, nil, 5, now, clk)
			},
			ErrEmptyName,
		},
		{
			"empty slug",
			func() (*Product, error) {
				return NewProduct("id", "Name", "", "brake", 1000, nil, nil, 5, now, clk)
			},
			ErrEmptySlug,
		},
		{
			"empty category",
			func() (*Product, error) {
				return NewProduct("id", "Name", "slug", "", 1000, nil, nil, 5, now, clk)
			},
			ErrInvalidCategory,
		},
		{
			"zero price",
			func() (*Product, error) {
				return NewProduct("id", "Name", "slug", "brake", 0, nil, nil, 5, now, clk)
			},
			ErrInvalidPrice,
		},
		{
			"non-positive tier price",
			func() (*Product, error) {
				return NewProduct("id", "Name", "slug", "brake", 1000, int64Ptr(0), nil, 5, now, clk)
			},
			ErrInvalidPrice,
		},
		{
			"negative stock",
			func() (*Product, error) {
				return NewProduct("id", "Name", "slug", "brake", 1000, nil, nil, -1, now, clk)
			},
			ErrInvalidStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.product()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewProduct_EmitsCreatedEvent(t *testing.T) {
	now := time.Now()
	p, err := NewProduct("prod-9", "Busi Iridium", "busi-iridium", "ignition", 95000, nil, nil, 20, now, clock.NewRealClock())
	require.NoError(t, err)

	require.Len(t, p.DomainEvents(), 1)
	assert.Equal(t, "catalog.product.created", p.DomainEvents()[0].EventType())
	assert.Equal(t, "prod-9", p.DomainEvents()[0].AggregateID())
}

func TestProduct_UnitPriceFor(t *testing.T) {
	t.Run("both tiers present", func(t *testing.T) {
		p := newTestProduct(t, 50000, int64Ptr(48000), int64Ptr(45000), 100)

		assert.Equal(t, int64(50000), p.UnitPriceFor(1))
		assert.Equal(t, int64(50000), p.UnitPriceFor(2))
		assert.Equal(t, int64(48000), p.UnitPriceFor(3))
		assert.Equal(t, int64(48000), p.UnitPriceFor(4))
		assert.Equal(t, int64(45000), p.UnitPriceFor(5))
		assert.Equal(t, int64(45000), p.UnitPriceFor(12))
	})

	t.Run("five tier missing falls back to three tier", func(t *testing.T) {
		p := newTestProduct(t, 50000, int64Ptr(48000), nil, 100)

		assert.Equal(t, int64(48000), p.UnitPriceFor(5))
		assert.Equal(t, int64(48000), p.UnitPriceFor(7))
	})

	t.Run("no tiers uses base price", func(t *testing.T) {
		p := newTestProduct(t, 50000, nil, nil, 100)

		assert.Equal(t, int64(50000), p.UnitPriceFor(10))
	})
}

func TestProduct_DecrementStock(t *testing.T) {
	t.Run("consumes stock", func(t *testing.T) {
		p := newTestProduct(t, 50000, nil, nil, 10)

		require.NoError(t, p.DecrementStock(4))
		assert.Equal(t, int64(6), p.Stock())
		assert.True(t, p.Changes().Dirty(FieldStock))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 50000, nil, nil, 10)

		assert.ErrorIs(t, p.DecrementStock(0), ErrInvalidQuantity)
	})

	t.Run("fails when requested exceeds available", func(t *testing.T) {
		p := newTestProduct(t, 50000, nil, nil, 3)

		err := p.DecrementStock(5)
		require.Error(t, err)
		assert.True(t, IsInsufficientStock(err))

		var stockErr *InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, "prod-1", stockErr.ProductID)
		assert.Equal(t, int64(5), stockErr.Requested)
		assert.Equal(t, int64(3), stockErr.Available)

		// Stock unchanged after a failed decrement.
		assert.Equal(t, int64(3), p.Stock())
	})
}

func TestProduct_SettersTrackChanges(t *testing.T) {
	p := newTestProduct(t, 50000, nil, nil, 10)

	require.NoError(t, p.SetPrice(60000))
	require.NoError(t, p.SetCategory("filter"))

	assert.True(t, p.Changes().Dirty(FieldPrice))
	assert.True(t, p.Changes().Dirty(FieldCategory))
	assert.False(t, p.Changes().Dirty(FieldName))
	assert.NotEmpty(t, p.DomainEvents())
}
