package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OrderPlacedEvent is emitted when checkout commits an order.
type OrderPlacedEvent struct {
	OrderID     string
	UserID      string
	OrderNumber string
	Courier     string
	TotalPrice  int64
	ItemCount   int
	PlacedAt    time.Time
}

func (e *OrderPlacedEvent) EventType() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) AggregateID() string {
	return e.OrderID
}

// OrderStatusChangedEvent is emitted when an order moves along its lifecycle.
type OrderStatusChangedEvent struct {
	OrderID     string
	OrderNumber string
	From        string
	To          string
	ChangedAt   time.Time
}

func (e *OrderStatusChangedEvent) EventType() string {
	return "order.status_changed"
}

func (e *OrderStatusChangedEvent) AggregateID() string {
	return e.OrderID
}
