package create_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	"github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/app/outbox"
	"github.com/garasindo/sparepart-service/internal/pkg/clock"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
)

// maxSlugAttempts bounds the numbered-suffix search for a free slug.
const maxSlugAttempts = 5

// Request contains the data needed to create a product.
type Request struct {
	Name        string
	Category    string
	Price       int64
	Price3Items *int64
	Price5Items *int64
	Stock       int64
}

// Interactor handles the create product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo outbox.Repository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo outbox.Repository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute creates a product and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	slug, err := i.resolveSlug(ctx, req.Name)
	if err != nil {
		return "", err
	}

	productID := uuid.New().String()
	now := i.clock.Now()

	product, err := domain.NewProduct(
		productID,
		req.Name,
		slug,
		req.Category,
		req.Price,
		req.Price3Items,
		req.Price5Items,
		req.Stock,
		now,
		i.clock,
	)
	if err != nil {
		return "", err
	}
	defer product.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(product))

	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return productID, nil
}

// resolveSlug derives a slug from the name and probes numbered variants
// until a free one is found.
func (i *Interactor) resolveSlug(ctx context.Context, name string) (string, error) {
	base := domain.Slugify(name)
	if base == "" {
		return "", domain.ErrEmptyName
	}

	candidate := base
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		taken, err := i.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = domain.NumberedSlug(base, attempt)
	}

	return "", domain.ErrSlugTaken
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
