package m_banner

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the banners table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation for inserting or replacing a banner.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			BannerID,
			Title,
			ImageURL,
			TargetURL,
			Position,
			Active,
			CreatedAt,
		},
		[]interface{}{
			data.BannerID,
			data.Title,
			data.ImageURL,
			data.TargetURL,
			data.Position,
			data.Active,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a banner.
func (m *Model) DeleteMut(bannerID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{bannerID})
}

// ReadColumns lists every column in row order for full-row reads.
func ReadColumns() []string {
	return []string{
		BannerID,
		Title,
		ImageURL,
		TargetURL,
		Position,
		Active,
		CreatedAt,
	}
}
