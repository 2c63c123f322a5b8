package domain

import (
	"time"
)

// OrderItem is one immutable line of a placed order. PriceAtPurchase is the
// tier-resolved unit price captured at checkout; later catalog changes never
// touch it.
type OrderItem struct {
	productID       string
	quantity        int64
	priceAtPurchase int64
}

// NewOrderItem creates a validated order line.
func NewOrderItem(productID string, quantity, priceAtPurchase int64) (*OrderItem, error) {
	if productID == "" || quantity <= 0 || priceAtPurchase <= 0 {
		return nil, ErrInvalidOrderItem
	}
	return &OrderItem{
		productID:       productID,
		quantity:        quantity,
		priceAtPurchase: priceAtPurchase,
	}, nil
}

// ReconstructOrderItem reconstitutes an order line from storage.
func ReconstructOrderItem(productID string, quantity, priceAtPurchase int64) *OrderItem {
	return &OrderItem{
		productID:       productID,
		quantity:        quantity,
		priceAtPurchase: priceAtPurchase,
	}
}

func (oi *OrderItem) ProductID() string      { return oi.productID }
func (oi *OrderItem) Quantity() int64        { return oi.quantity }
func (oi *OrderItem) PriceAtPurchase() int64 { return oi.priceAtPurchase }

// Subtotal is the line total.
func (oi *OrderItem) Subtotal() int64 {
	return oi.priceAtPurchase * oi.quantity
}

// Order is the aggregate root for a placed order. All money fields are IDR
// minor units. Everything but the status is immutable once the order is
// written.
type Order struct {
	id           string
	userID       string
	number       string
	courier      Courier
	items        []*OrderItem
	shippingCost int64
	totalPrice   int64
	status       Status
	createdAt    time.Time

	// Domain events to be published
	events []DomainEvent
}

// NewOrder creates an order from checkout lines. The total is derived from
// the lines plus the courier's flat fee, never taken from the caller.
func NewOrder(id, userID, number string, courier Courier, items []*OrderItem, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if _, ok := shippingCosts[courier]; !ok {
		return nil, ErrUnknownCourier
	}

	shipping := courier.ShippingCost()
	var itemsTotal int64
	for _, item := range items {
		itemsTotal += item.Subtotal()
	}

	o := &Order{
		id:           id,
		userID:       userID,
		number:       number,
		courier:      courier,
		items:        items,
		shippingCost: shipping,
		totalPrice:   itemsTotal + shipping,
		status:       StatusPending,
		createdAt:    now,
		events:       make([]DomainEvent, 0),
	}

	o.recordEvent(&OrderPlacedEvent{
		OrderID:     o.id,
		UserID:      o.userID,
		OrderNumber: o.number,
		Courier:     o.courier.String(),
		TotalPrice:  o.totalPrice,
		ItemCount:   len(o.items),
		PlacedAt:    now,
	})

	return o, nil
}

// ReconstructOrder reconstitutes an order from database rows.
func ReconstructOrder(
	id, userID, number string,
	courier Courier,
	items []*OrderItem,
	shippingCost, totalPrice int64,
	status Status,
	createdAt time.Time,
) *Order {
	return &Order{
		id:           id,
		userID:       userID,
		number:       number,
		courier:      courier,
		items:        items,
		shippingCost: shippingCost,
		totalPrice:   totalPrice,
		status:       status,
		createdAt:    createdAt,
		events:       make([]DomainEvent, 0),
	}
}

// Getters
func (o *Order) ID() string                  { return o.id }
func (o *Order) UserID() string              { return o.userID }
func (o *Order) Number() string              { return o.number }
func (o *Order) Courier() Courier            { return o.courier }
func (o *Order) Items() []*OrderItem         { return o.items }
func (o *Order) ShippingCost() int64         { return o.shippingCost }
func (o *Order) TotalPrice() int64           { return o.totalPrice }
func (o *Order) Status() Status              { return o.status }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) DomainEvents() []DomainEvent { return o.events }

// ChangeStatus moves the order along its lifecycle. Only transitions out of
// pending are legal.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	if !o.status.CanTransitionTo(target) {
		return ErrIllegalStatusChange
	}

	from := o.status
	o.status = target
	o.recordEvent(&OrderStatusChangedEvent{
		OrderID:     o.id,
		OrderNumber: o.number,
		From:        from.String(),
		To:          target.String(),
		ChangedAt:   now,
	})
	return nil
}

// recordEvent adds a domain event to the list of events.
func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (o *Order) ClearEvents() {
	o.events = make([]DomainEvent, 0)
}
