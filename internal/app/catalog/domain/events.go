package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a product is created.
type ProductCreatedEvent struct {
	ProductID string
	Name      string
	Slug      string
	Category  string
	Price     int64
	Stock     int64
	CreatedAt time.Time
}

func (e *ProductCreatedEvent) EventType() string {
	return "catalog.product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductUpdatedEvent is emitted when product details change.
type ProductUpdatedEvent struct {
	ProductID string
	Name      string
	Category  string
	Price     int64
	Stock     int64
	UpdatedAt time.Time
}

func (e *ProductUpdatedEvent) EventType() string {
	return "catalog.product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return e.ProductID
}

// PricesBulkUpdatedEvent is emitted once per bulk repricing pass.
type PricesBulkUpdatedEvent struct {
	Percentage  float64
	RowsUpdated int64
	AppliedAt   time.Time
}

func (e *PricesBulkUpdatedEvent) EventType() string {
	return "catalog.prices.bulk_updated"
}

func (e *PricesBulkUpdatedEvent) AggregateID() string {
	return "catalog"
}
