package domain

// Courier identifies a supported shipping carrier. Shipping is a flat fee
// per order, not per item.
type Courier string

const (
	CourierJNE     Courier = "jne"
	CourierTIKI    Courier = "tiki"
	CourierSiCepat Courier = "sicepat"
)

// shippingCosts maps each carrier to its flat fee in IDR minor units.
var shippingCosts = map[Courier]int64{
	CourierJNE:     20000,
	CourierTIKI:    25000,
	CourierSiCepat: 18000,
}

// ParseCourier validates a caller-supplied courier code.
func ParseCourier(code string) (Courier, error) {
	c := Courier(code)
	if _, ok := shippingCosts[c]; !ok {
		return "", ErrUnknownCourier
	}
	return c, nil
}

// ShippingCost returns the flat fee for the carrier. Callers must hold a
// parsed Courier; unknown values cost zero.
func (c Courier) ShippingCost() int64 {
	return shippingCosts[c]
}

// String implements fmt.Stringer.
func (c Courier) String() string {
	return string(c)
}
