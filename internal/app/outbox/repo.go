package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/garasindo/sparepart-service/internal/models/m_outbox"
	"github.com/garasindo/sparepart-service/internal/pkg/query"
)

// Repo implements Repository for Spanner.
type Repo struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewRepo creates a new outbox Repo.
func NewRepo(client *spanner.Client) Repository {
	return &Repo{
		client: client,
		model:  m_outbox.NewModel(),
	}
}

// InsertMut creates a mutation for inserting an outbox event. The payload
// is stored as JSON, not as a JSON-encoded string.
func (r *Repo) InsertMut(event *Event) *spanner.Mutation {
	payload := spanner.NullJSON{Value: json.RawMessage(event.Payload), Valid: event.Payload != ""}

	data := &m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     payload,
		Status:      event.Status,
		RetryCount:  event.RetryCount,
	}

	return r.model.InsertMut(data)
}

// EnrichEvent converts a domain event to an outbox event with metadata.
func (r *Repo) EnrichEvent(event DomainEvent, payload string) *Event {
	return &Event{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

// ListPending returns up to limit pending events, oldest first. The relay
// polls this and publishes each event to the broker.
func (r *Repo) ListPending(ctx context.Context, limit int64) ([]*Event, error) {
	stmt := query.From(m_outbox.TableName).
		Select(m_outbox.EventID, m_outbox.EventType, m_outbox.AggregateID, m_outbox.Payload, m_outbox.Status, m_outbox.RetryCount).
		Where(query.Eq(m_outbox.Status, m_outbox.StatusPending)).
		OrderBy(m_outbox.CreatedAt, query.Asc).
		Limit(limit).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	events := make([]*Event, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate outbox events: %w", err)
		}

		var (
			event   Event
			payload spanner.NullJSON
		)
		if err := row.Columns(&event.EventID, &event.EventType, &event.AggregateID, &payload, &event.Status, &event.RetryCount); err != nil {
			return nil, fmt.Errorf("failed to parse outbox event: %w", err)
		}
		if payload.Valid {
			event.Payload = payload.String()
		}

		events = append(events, &event)
	}

	return events, nil
}

// MarkCompletedMut creates a mutation recording a successful publish.
func (r *Repo) MarkCompletedMut(eventID string, processedAt time.Time) *spanner.Mutation {
	return r.model.MarkCompletedMut(eventID, processedAt)
}

// MarkFailedMut creates a mutation recording a failed publish attempt.
func (r *Repo) MarkFailedMut(event *Event, errMsg string) *spanner.Mutation {
	return r.model.MarkFailedMut(event.EventID, event.RetryCount+1, errMsg)
}
