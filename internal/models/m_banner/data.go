package m_banner

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the banners table.
type Data struct {
	BannerID  string             `spanner:"banner_id"`
	Title     string             `spanner:"title"`
	ImageURL  string             `spanner:"image_url"`
	TargetURL spanner.NullString `spanner:"target_url"`
	Position  int64              `spanner:"position"`
	Active    bool               `spanner:"active"`
	CreatedAt time.Time          `spanner:"created_at"`
}
