package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrEmptyTitle      = errors.New("banner title is required")
	ErrEmptyImageURL   = errors.New("banner image URL is required")
	ErrInvalidPosition = errors.New("banner position must be non-negative")
	ErrBannerNotFound  = errors.New("banner not found")
)

// Banner is a promotional slot on the storefront home page. Banners are
// plain content, they carry no pricing or stock semantics.
type Banner struct {
	id        string
	title     string
	imageURL  string
	targetURL *string
	position  int64
	active    bool
}

// NewBanner creates a validated banner.
func NewBanner(id, title, imageURL string, targetURL *string, position int64, active bool) (*Banner, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if imageURL == "" {
		return nil, ErrEmptyImageURL
	}
	if position < 0 {
		return nil, ErrInvalidPosition
	}

	return &Banner{
		id:        id,
		title:     title,
		imageURL:  imageURL,
		targetURL: targetURL,
		position:  position,
		active:    active,
	}, nil
}

// ReconstructBanner reconstitutes a banner from storage.
func ReconstructBanner(id, title, imageURL string, targetURL *string, position int64, active bool) *Banner {
	return &Banner{
		id:        id,
		title:     title,
		imageURL:  imageURL,
		targetURL: targetURL,
		position:  position,
		active:    active,
	}
}

// Getters
func (b *Banner) ID() string         { return b.id }
func (b *Banner) Title() string      { return b.title }
func (b *Banner) ImageURL() string   { return b.imageURL }
func (b *Banner) TargetURL() *string { return b.targetURL }
func (b *Banner) Position() int64    { return b.position }
func (b *Banner) Active() bool       { return b.active }
