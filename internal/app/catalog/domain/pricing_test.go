package domain

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPct(t *testing.T, pct float64) *big.Rat {
	t.Helper()
	rat, err := PercentageRat(pct)
	require.NoError(t, err)
	return rat
}

func TestRoundPriceUp(t *testing.T) {
	tests := []struct {
		name       string
		price      int64
		percentage float64
		want       int64
	}{
		{"5 percent on 15000 rounds up", 15000, 5, 15800},
		{"5 percent on 100000 is exact", 100000, 5, 105000},
		{"10 percent on 50000 is exact", 50000, 10, 55000},
		{"zero percent keeps multiples of 100", 15000, 0, 15000},
		{"zero percent rounds stray price up", 15050, 0, 15100},
		{"negative percent still rounds up", 15050, -10, 13600},
		{"negative percent exact", 15000, -10, 13500},
		{"fractional percent", 10000, 2.5, 10300},
		{"one rupiah over boundary", 10001, 0, 10100},
		{"zero price stays zero", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundPriceUp(tt.price, mustPct(t, tt.percentage))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundPriceUp_AlwaysMultipleOfHundred(t *testing.T) {
	for _, price := range []int64{1, 99, 101, 12345, 15000, 99999, 1000000} {
		for _, pct := range []float64{-50, -1, 0, 0.5, 3, 5, 17.5, 100} {
			got := RoundPriceUp(price, mustPct(t, pct))
			assert.Zerof(t, got%100, "price=%d pct=%v got=%d", price, pct, got)
			assert.GreaterOrEqualf(t, got, int64(0), "price=%d pct=%v", price, pct)
		}
	}
}

func TestPercentageRat_Validation(t *testing.T) {
	t.Run("rejects minus one hundred and below", func(t *testing.T) {
		_, err := PercentageRat(-100)
		assert.ErrorIs(t, err, ErrInvalidPercentage)

		_, err = PercentageRat(-150)
		assert.ErrorIs(t, err, ErrInvalidPercentage)
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		_, err := PercentageRat(math.NaN())
		assert.ErrorIs(t, err, ErrInvalidPercentage)

		_, err = PercentageRat(math.Inf(1))
		assert.ErrorIs(t, err, ErrInvalidPercentage)
	})

	t.Run("accepts values just above the floor", func(t *testing.T) {
		rat, err := PercentageRat(-99.9)
		require.NoError(t, err)
		assert.NotNil(t, rat)
	})
}
