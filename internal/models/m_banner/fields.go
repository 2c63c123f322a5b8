package m_banner

// Field name constants for the banners table.
const (
	TableName = "banners"

	BannerID  = "banner_id"
	Title     = "title"
	ImageURL  = "image_url"
	TargetURL = "target_url"
	Position  = "position"
	Active    = "active"
	CreatedAt = "created_at"
)
