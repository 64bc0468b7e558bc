// Package normalizer flattens raw post objects into canonical export rows.
package normalizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/orgball2608/insta-virality-exporter/internal/caption"
	"github.com/orgball2608/insta-virality-exporter/internal/domain"
)

const postURLTemplate = "https://www.instagram.com/p/%s/"

// ToRow converts one raw post into the canonical row. Every derivation
// degrades to nil on missing input; no post shape may make this fail.
//
// Fallback rules:
//   - url exists only when the shortcode does
//   - view_count falls back to play_count (reels report plays, not views)
//   - width/height prefer the thumbnail-specific values
//   - location resolves name, then slug
//   - carousel_count counts the resources list only when the list exists
func ToRow(p domain.RawPost) domain.PostRow {
	row := domain.PostRow{
		ID:                 p.ID,
		PK:                 p.PK,
		Shortcode:          p.Shortcode,
		MediaType:          p.MediaType,
		ProductType:        p.ProductType,
		LikeCount:          p.LikeCount,
		CommentCount:       p.CommentCount,
		ViewCount:          firstInt(p.ViewCount, p.PlayCount),
		PlayCount:          p.PlayCount,
		Caption:            p.Caption,
		DurationSec:        p.DurationSec,
		Width:              firstInt(p.ThumbnailWidth, p.Width),
		Height:             firstInt(p.ThumbnailHeight, p.Height),
		IsPaidPartnership:  p.IsPaidPartnership,
		IsCommentsDisabled: p.CommentsDisabled,
		ThumbnailURL:       p.ThumbnailURL,
		VideoURL:           p.VideoURL,
	}

	if p.Shortcode != nil {
		u := fmt.Sprintf(postURLTemplate, *p.Shortcode)
		row.URL = &u
	}

	if p.TakenAt != nil {
		ts := p.TakenAt.Format(time.RFC3339)
		row.TakenAt = &ts
	}

	if p.Location != nil {
		if p.Location.Name != nil {
			row.Location = p.Location.Name
		} else {
			row.Location = p.Location.Slug
		}
	}

	if p.Resources != nil {
		n := int64(len(p.Resources))
		row.CarouselCount = &n
	}

	var text string
	if p.Caption != nil {
		text = *p.Caption
	}
	row.Hashtags = strings.Join(caption.Hashtags(text), ", ")
	row.Mentions = strings.Join(caption.Mentions(text), ", ")

	return row
}

func firstInt(values ...*int64) *int64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
