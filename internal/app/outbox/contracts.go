package outbox

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
)

// DomainEvent is the minimal surface an aggregate event must expose to be
// written to the outbox. Catalog and order events both satisfy it.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// Event represents an enriched domain event ready for persistence.
type Event struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string // JSON
	Status      string
	RetryCount  int64
}

// Repository defines the interface for outbox event persistence.
type Repository interface {
	// InsertMut creates a mutation for inserting an outbox event
	InsertMut(event *Event) *spanner.Mutation

	// EnrichEvent converts a domain event to an outbox event with metadata
	EnrichEvent(event DomainEvent, payload string) *Event

	// ListPending returns up to limit unprocessed events, oldest first
	ListPending(ctx context.Context, limit int64) ([]*Event, error)

	// MarkCompletedMut creates a mutation recording a successful publish
	MarkCompletedMut(eventID string, processedAt time.Time) *spanner.Mutation

	// MarkFailedMut creates a mutation recording a failed publish attempt
	MarkFailedMut(event *Event, errMsg string) *spanner.Mutation
}
