package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an outbox event.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			EventID,
			EventType,
			AggregateID,
			Payload,
			Status,
			CreatedAt,
			ProcessedAt,
			RetryCount,
			ErrorMessage,
		},
		[]interface{}{
			data.EventID,
			data.EventType,
			data.AggregateID,
			data.Payload,
			data.Status,
			spanner.CommitTimestamp,
			data.ProcessedAt,
			data.RetryCount,
			data.ErrorMessage,
		},
	)
}

// MarkCompletedMut creates a mutation recording a successful publish.
func (m *Model) MarkCompletedMut(eventID string, processedAt time.Time) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{EventID, Status, ProcessedAt},
		[]interface{}{eventID, StatusCompleted, processedAt},
	)
}

// MarkFailedMut creates a mutation recording a failed publish attempt.
func (m *Model) MarkFailedMut(eventID string, retryCount int64, errMsg string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{EventID, Status, RetryCount, ErrorMessage},
		[]interface{}{eventID, StatusFailed, retryCount, spanner.NullString{StringVal: errMsg, Valid: errMsg != ""}},
	)
}

// DeleteMut creates a Spanner mutation for deleting an outbox event.
func (m *Model) DeleteMut(eventID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{eventID})
}
