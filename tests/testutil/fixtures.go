package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/garasindo/sparepart-service/internal/models/m_cart_item"
	"github.com/garasindo/sparepart-service/internal/models/m_product"
)

// ProductFixture describes a product row to seed directly into the database.
type ProductFixture struct {
	Name        string
	Slug        string
	Category    string
	Price       int64
	Price3Items *int64
	Price5Items *int64
	Stock       int64
}

// CreateTestProduct seeds a product row and returns its ID.
func CreateTestProduct(t *testing.T, client *spanner.Client, fixture ProductFixture) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	if fixture.Slug == "" {
		fixture.Slug = "test-" + productID[:8]
	}
	if fixture.Category == "" {
		fixture.Category = "brake"
	}

	data := &m_product.Data{
		ProductID: productID,
		Name:      fixture.Name,
		Slug:      fixture.Slug,
		Category:  fixture.Category,
		Price:     fixture.Price,
		Stock:     fixture.Stock,
	}
	if fixture.Price3Items != nil {
		data.Price3Items = spanner.NullInt64{Int64: *fixture.Price3Items, Valid: true}
	}
	if fixture.Price5Items != nil {
		data.Price5Items = spanner.NullInt64{Int64: *fixture.Price5Items, Valid: true}
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{m_product.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// AddCartLine seeds a cart line directly.
func AddCartLine(t *testing.T, client *spanner.Client, userID, productID string, quantity int64) {
	t.Helper()

	ctx := context.Background()
	mut := m_cart_item.NewModel().UpsertMut(&m_cart_item.Data{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})

	_, err := client.Apply(ctx, []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to add cart line")
}

// GetProductByID retrieves a product row for verification.
func GetProductByID(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.ReadColumns())
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse product data")

	return &data
}

// AssertOutboxEvent verifies at least one outbox event exists with the given
// event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// IntPtr returns a pointer to v, for optional tier prices in fixtures.
func IntPtr(v int64) *int64 {
	return &v
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
