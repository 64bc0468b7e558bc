package normalizer_test

import (
	"testing"
	"time"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/normalizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(n int64) *int64       { return &n }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestToRow_MinimalPost(t *testing.T) {
	row := normalizer.ToRow(domain.RawPost{
		ID: strPtr("123_456"),
		PK: strPtr("123"),
	})

	assert.Equal(t, "123_456", *row.ID)
	assert.Equal(t, "123", *row.PK)

	assert.Nil(t, row.Shortcode)
	assert.Nil(t, row.URL)
	assert.Nil(t, row.TakenAt)
	assert.Nil(t, row.MediaType)
	assert.Nil(t, row.ProductType)
	assert.Nil(t, row.LikeCount)
	assert.Nil(t, row.CommentCount)
	assert.Nil(t, row.ViewCount)
	assert.Nil(t, row.PlayCount)
	assert.Nil(t, row.Caption)
	assert.Nil(t, row.DurationSec)
	assert.Nil(t, row.Width)
	assert.Nil(t, row.Height)
	assert.Nil(t, row.Location)
	assert.Nil(t, row.IsPaidPartnership)
	assert.Nil(t, row.IsCommentsDisabled)
	assert.Nil(t, row.ThumbnailURL)
	assert.Nil(t, row.VideoURL)
	assert.Nil(t, row.CarouselCount)

	assert.Equal(t, "", row.Hashtags)
	assert.Equal(t, "", row.Mentions)
}

func TestToRow_URLOnlyWithShortcode(t *testing.T) {
	row := normalizer.ToRow(domain.RawPost{Shortcode: strPtr("Cx1abc")})
	require.NotNil(t, row.URL)
	assert.Equal(t, "https://www.instagram.com/p/Cx1abc/", *row.URL)

	row = normalizer.ToRow(domain.RawPost{})
	assert.Nil(t, row.URL)
}

func TestToRow_TakenAtISO(t *testing.T) {
	taken := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	row := normalizer.ToRow(domain.RawPost{TakenAt: &taken})
	require.NotNil(t, row.TakenAt)
	assert.Equal(t, "2024-06-01T12:30:00Z", *row.TakenAt)
}

func TestToRow_ViewCountFallsBackToPlayCount(t *testing.T) {
	row := normalizer.ToRow(domain.RawPost{PlayCount: intPtr(900)})
	require.NotNil(t, row.ViewCount)
	assert.Equal(t, int64(900), *row.ViewCount)
	assert.Equal(t, int64(900), *row.PlayCount)

	row = normalizer.ToRow(domain.RawPost{ViewCount: intPtr(100), PlayCount: intPtr(900)})
	assert.Equal(t, int64(100), *row.ViewCount)
}

func TestToRow_DimensionsPreferThumbnail(t *testing.T) {
	row := normalizer.ToRow(domain.RawPost{
		ThumbnailWidth: intPtr(320),
		Width:          intPtr(1080),
		Height:         intPtr(1350),
	})
	assert.Equal(t, int64(320), *row.Width)
	assert.Equal(t, int64(1350), *row.Height)
}

func TestToRow_LocationNameFallsBackToSlug(t *testing.T) {
	row := normalizer.ToRow(domain.RawPost{
		Location: &domain.RawLocation{Name: strPtr("Lisbon"), Slug: strPtr("lisbon-pt")},
	})
	require.NotNil(t, row.Location)
	assert.Equal(t, "Lisbon", *row.Location)

	row = normalizer.ToRow(domain.RawPost{
		Location: &domain.RawLocation{Slug: strPtr("lisbon-pt")},
	})
	require.NotNil(t, row.Location)
	assert.Equal(t, "lisbon-pt", *row.Location)

	row = normalizer.ToRow(domain.RawPost{})
	assert.Nil(t, row.Location)
}

func TestToRow_CarouselCount(t *testing.T) {
	row := normalizer.ToRow(domain.RawPost{
		Resources: []domain.RawResource{{}, {}, {}},
	})
	require.NotNil(t, row.CarouselCount)
	assert.Equal(t, int64(3), *row.CarouselCount)

	// Single-media posts carry no resources list at all.
	row = normalizer.ToRow(domain.RawPost{})
	assert.Nil(t, row.CarouselCount)
}

func TestToRow_CaptionEntities(t *testing.T) {
	row := normalizer.ToRow(domain.RawPost{
		Caption: strPtr("golden hour #sunset #beach #sunset with @zoe and @adam"),
	})
	assert.Equal(t, "beach, sunset", row.Hashtags)
	assert.Equal(t, "adam, zoe", row.Mentions)
	assert.Equal(t, "golden hour #sunset #beach #sunset with @zoe and @adam", *row.Caption)
}

func TestToRow_PassthroughFields(t *testing.T) {
	row := normalizer.ToRow(domain.RawPost{
		MediaType:         intPtr(2),
		ProductType:       strPtr("clips"),
		DurationSec:       floatPtr(14.5),
		IsPaidPartnership: boolPtr(true),
		CommentsDisabled:  boolPtr(false),
		ThumbnailURL:      strPtr("https://cdn.example/t.jpg"),
		VideoURL:          strPtr("https://cdn.example/v.mp4"),
	})
	assert.Equal(t, int64(2), *row.MediaType)
	assert.Equal(t, "clips", *row.ProductType)
	assert.Equal(t, 14.5, *row.DurationSec)
	assert.True(t, *row.IsPaidPartnership)
	assert.False(t, *row.IsCommentsDisabled)
	assert.Equal(t, "https://cdn.example/t.jpg", *row.ThumbnailURL)
	assert.Equal(t, "https://cdn.example/v.mp4", *row.VideoURL)
}
