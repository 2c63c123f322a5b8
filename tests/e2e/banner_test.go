package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bannerdomain "github.com/garasindo/sparepart-service/internal/app/banner/domain"
	"github.com/garasindo/sparepart-service/internal/app/banner/usecases/save_banner"
)

func TestBannerLifecycle(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	target := "/promo/oli-murah"
	firstID, err := suite.SaveBanner.Execute(ctx(), &save_banner.Request{
		Title:     "Promo Oli September",
		ImageURL:  "https://cdn.example.com/banners/oli.png",
		TargetURL: &target,
		Position:  2,
		Active:    true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, firstID)

	secondID, err := suite.SaveBanner.Execute(ctx(), &save_banner.Request{
		Title:    "Gratis Ongkir",
		ImageURL: "https://cdn.example.com/banners/ongkir.png",
		Position: 1,
		Active:   true,
	})
	require.NoError(t, err)

	// Inactive banners never surface on the storefront.
	_, err = suite.SaveBanner.Execute(ctx(), &save_banner.Request{
		Title:    "Draft",
		ImageURL: "https://cdn.example.com/banners/draft.png",
		Position: 0,
		Active:   false,
	})
	require.NoError(t, err)

	banners, err := suite.ListBanners.Execute(ctx(), false)
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, secondID, banners[0].ID(), "banners should come back in position order")
	assert.Equal(t, firstID, banners[1].ID())
	require.NotNil(t, banners[1].TargetURL())
	assert.Equal(t, target, *banners[1].TargetURL())

	// Admin listings see the draft too.
	all, err := suite.ListBanners.Execute(ctx(), true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Saving with an existing ID replaces the banner in place.
	_, err = suite.SaveBanner.Execute(ctx(), &save_banner.Request{
		BannerID: firstID,
		Title:    "Promo Oli Oktober",
		ImageURL: "https://cdn.example.com/banners/oli-v2.png",
		Position: 2,
		Active:   true,
	})
	require.NoError(t, err)

	banners, err = suite.ListBanners.Execute(ctx(), false)
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, "Promo Oli Oktober", banners[1].Title())

	err = suite.DeleteBanner.Execute(ctx(), firstID)
	require.NoError(t, err)

	banners, err = suite.ListBanners.Execute(ctx(), false)
	require.NoError(t, err)
	assert.Len(t, banners, 1)

	err = suite.DeleteBanner.Execute(ctx(), firstID)
	assert.ErrorIs(t, err, bannerdomain.ErrBannerNotFound)
}

func TestSaveBannerValidation(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	_, err := suite.SaveBanner.Execute(ctx(), &save_banner.Request{ImageURL: "https://cdn.example.com/b.png"})
	assert.ErrorIs(t, err, bannerdomain.ErrEmptyTitle)

	_, err = suite.SaveBanner.Execute(ctx(), &save_banner.Request{Title: "Promo"})
	assert.ErrorIs(t, err, bannerdomain.ErrEmptyImageURL)

	_, err = suite.SaveBanner.Execute(ctx(), &save_banner.Request{Title: "Promo", ImageURL: "https://cdn.example.com/b.png", Position: -1})
	assert.ErrorIs(t, err, bannerdomain.ErrInvalidPosition)
}
