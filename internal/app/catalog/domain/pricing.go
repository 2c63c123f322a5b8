package domain

import (
	"math"
	"math/big"
)

// RoundPriceUp applies a percentage increase to a price and rounds the
// result up to the nearest 100 minor units:
//
//	new_price = ceil(price * (1 + percentage/100) / 100) * 100
//
// The round-up direction is business policy and must not change. A 5%
// increase on 15000 yields 15800, not 15700. Arithmetic is exact
// (big.Rat), never floating point.
func RoundPriceUp(price int64, percentage *big.Rat) int64 {
	factor := new(big.Rat).Add(
		big.NewRat(1, 1),
		new(big.Rat).Quo(percentage, big.NewRat(100, 1)),
	)

	raw := new(big.Rat).Mul(new(big.Rat).SetInt64(price), factor)
	hundreds := new(big.Rat).Quo(raw, big.NewRat(100, 1))

	// ceil of a big.Rat: floor division plus one when a remainder exists.
	// Denominators are always positive, so Div/Mod give floor semantics.
	quo := new(big.Int).Div(hundreds.Num(), hundreds.Denom())
	rem := new(big.Int).Mod(hundreds.Num(), hundreds.Denom())
	if rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}

	return quo.Int64() * 100
}

// TierUnitPrice resolves the unit price for qty units given a base price
// and the optional 3-item and 5-item tier prices. The highest threshold met
// wins; a missing tier falls through to the next one.
func TierUnitPrice(basePrice int64, price3Items, price5Items *int64, qty int64) int64 {
	if qty >= TierFiveQty && price5Items != nil {
		return *price5Items
	}
	if qty >= TierThreeQty && price3Items != nil {
		return *price3Items
	}
	return basePrice
}

// PercentageRat converts a caller-supplied percentage to exact rational
// form after validation. Percentages at or below -100 would produce
// non-positive prices and are rejected, as are NaN and infinities.
func PercentageRat(percentage float64) (*big.Rat, error) {
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		return nil, ErrInvalidPercentage
	}
	if percentage <= -100 {
		return nil, ErrInvalidPercentage
	}

	rat := new(big.Rat)
	if _, ok := rat.SetString(big.NewFloat(percentage).Text('f', -1)); !ok {
		return nil, ErrInvalidPercentage
	}
	return rat, nil
}
