package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrEmptyCart            = errors.New("cannot place an order from an empty cart")
	ErrUnknownCourier       = errors.New("unknown courier code")
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrIllegalStatusChange  = errors.New("illegal order status transition")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNumberExhausted = errors.New("could not generate a unique order number")
	ErrInvalidOrderItem     = errors.New("order item requires a product, positive quantity and price")
)
