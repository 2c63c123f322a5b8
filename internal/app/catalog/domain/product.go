package domain

import (
	"time"

	"github.com/garasindo/sparepart-service/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldTierPrices  = "tier_prices"
	FieldStock       = "stock"
	FieldPriceUpdate = "last_price_update"
)

// Tier thresholds for quantity pricing.
const (
	TierThreeQty = 3
	TierFiveQty  = 5
)

// Product is the aggregate root for the spare-parts catalog.
// Prices are IDR minor units. A product may carry up to two tiered prices
// that replace the base price once the ordered quantity reaches the
// threshold.
type Product struct {
	id          string
	name        string
	slug        string
	category    string
	price       int64
	price3Items *int64
	price5Items *int64
	stock       int64

	lastPriceUpdate *time.Time
	createdAt       time.Time
	updatedAt       time.Time

	// Clock for time operations (injected for testability)
	clock clock.Clock

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(id, name, slug, category string, price int64, price3Items, price5Items *int64, stock int64, now time.Time, clk clock.Clock) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if slug == "" {
		return nil, ErrEmptySlug
	}

	if category == "" {
		return nil, ErrInvalidCategory
	}

	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	if err := validateTierPrices(price3Items, price5Items); err != nil {
		return nil, err
	}

	if stock < 0 {
		return nil, ErrInvalidStock
	}

	p := &Product{
		id:          id,
		name:        name,
		slug:        slug,
		category:    category,
		price:       price,
		price3Items: copyTier(price3Items),
		price5Items: copyTier(price5Items),
		stock:       stock,
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldCategory)
	p.changes.MarkDirty(FieldPrice)
	p.changes.MarkDirty(FieldTierPrices)
	p.changes.MarkDirty(FieldStock)

	p.recordEvent(&ProductCreatedEvent{
		ProductID: p.id,
		Name:      p.name,
		Slug:      p.slug,
		Category:  p.category,
		Price:     p.price,
		Stock:     p.stock,
		CreatedAt: p.createdAt,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from database rows.
func ReconstructProduct(
	id, name, slug, category string,
	price int64,
	price3Items, price5Items *int64,
	stock int64,
	lastPriceUpdate *time.Time,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:              id,
		name:            name,
		slug:            slug,
		category:        category,
		price:           price,
		price3Items:     price3Items,
		price5Items:     price5Items,
		stock:           stock,
		lastPriceUpdate: lastPriceUpdate,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		clock:           clk,
		changes:         NewChangeTracker(),
		events:          make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Slug() string                { return p.slug }
func (p *Product) Category() string            { return p.category }
func (p *Product) Price() int64                { return p.price }
func (p *Product) Price3Items() *int64         { return copyTier(p.price3Items) }
func (p *Product) Price5Items() *int64         { return copyTier(p.price5Items) }
func (p *Product) Stock() int64                { return p.stock }
func (p *Product) LastPriceUpdate() *time.Time { return p.lastPriceUpdate }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// UnitPriceFor resolves the unit price that applies to an order of qty
// units. The highest tier threshold met wins: the 5-item tier is preferred
// over the 3-item tier when quantity is 5 or more; a missing tier falls
// through to the next one.
func (p *Product) UnitPriceFor(qty int64) int64 {
	return TierUnitPrice(p.price, p.price3Items, p.price5Items, qty)
}

// SetName updates the product name. The slug stays stable so stored links
// keep working.
func (p *Product) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	p.name = name
	p.changes.MarkDirty(FieldName)
	p.recordUpdated()
	return nil
}

// SetCategory updates the product category.
func (p *Product) SetCategory(category string) error {
	if category == "" {
		return ErrInvalidCategory
	}

	p.category = category
	p.changes.MarkDirty(FieldCategory)
	p.recordUpdated()
	return nil
}

// SetPrice updates the base price.
func (p *Product) SetPrice(price int64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}

	p.price = price
	p.changes.MarkDirty(FieldPrice)
	p.recordUpdated()
	return nil
}

// SetTierPrices updates the quantity-discount prices. Nil clears a tier.
func (p *Product) SetTierPrices(price3Items, price5Items *int64) error {
	if err := validateTierPrices(price3Items, price5Items); err != nil {
		return err
	}

	p.price3Items = copyTier(price3Items)
	p.price5Items = copyTier(price5Items)
	p.changes.MarkDirty(FieldTierPrices)
	p.recordUpdated()
	return nil
}

// SetStock replaces the stock quantity (admin restock).
func (p *Product) SetStock(stock int64) error {
	if stock < 0 {
		return ErrInvalidStock
	}

	p.stock = stock
	p.changes.MarkDirty(FieldStock)
	p.recordUpdated()
	return nil
}

// DecrementStock consumes qty units of stock during checkout. It fails with
// InsufficientStockError when the request exceeds what is available, which
// aborts the enclosing transaction.
func (p *Product) DecrementStock(qty int64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	if qty > p.stock {
		return &InsufficientStockError{
			ProductID: p.id,
			Name:      p.name,
			Requested: qty,
			Available: p.stock,
		}
	}

	p.stock -= qty
	p.changes.MarkDirty(FieldStock)
	return nil
}

func (p *Product) recordUpdated() {
	p.recordEvent(&ProductUpdatedEvent{
		ProductID: p.id,
		Name:      p.name,
		Category:  p.category,
		Price:     p.price,
		Stock:     p.stock,
		UpdatedAt: p.clock.Now(),
	})
}

// recordEvent adds a domain event to the list of events.
func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

func validateTierPrices(price3Items, price5Items *int64) error {
	if price3Items != nil && *price3Items <= 0 {
		return ErrInvalidPrice
	}
	if price5Items != nil && *price5Items <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func copyTier(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
