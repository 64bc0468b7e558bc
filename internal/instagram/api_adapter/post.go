// Package api_adapter converts opaque API media objects into the typed
// optional-field RawPost the pipeline consumes.
package api_adapter

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
)

// ToRawPost flattens one media item into a RawPost. The item is round-tripped
// through its JSON form so every attribute lookup is total: a missing field,
// a wrong type or an unexpected shape yields nil for that field, never an
// error. Post objects differ across media kinds (image, video, carousel,
// clip), so nothing here may assume a field exists.
func ToRawPost(item any) domain.RawPost {
	obj := asObject(item)

	p := domain.RawPost{
		ID:                getID(obj, "id"),
		PK:                getID(obj, "pk"),
		Shortcode:         getString(obj, "code"),
		MediaType:         getInt(obj, "media_type"),
		ProductType:       getString(obj, "product_type"),
		LikeCount:         getInt(obj, "like_count"),
		CommentCount:      getInt(obj, "comment_count"),
		ViewCount:         getInt(obj, "view_count"),
		PlayCount:         getInt(obj, "play_count"),
		DurationSec:       getFloat(obj, "video_duration"),
		Width:             getInt(obj, "original_width"),
		Height:            getInt(obj, "original_height"),
		IsPaidPartnership: getBool(obj, "is_paid_partnership"),
		CommentsDisabled:  getBool(obj, "commenting_disabled_for_viewer"),
	}

	if ts := getInt(obj, "taken_at"); ts != nil && *ts > 0 {
		t := time.Unix(*ts, 0).UTC()
		p.TakenAt = &t
	}

	if capt := getObject(obj, "caption"); capt != nil {
		p.Caption = getString(capt, "text")
	}

	if loc := getObject(obj, "location"); loc != nil {
		name := getString(loc, "name")
		slug := getString(loc, "slug")
		if slug == nil {
			slug = getString(loc, "short_name")
		}
		if name != nil || slug != nil {
			p.Location = &domain.RawLocation{Name: name, Slug: slug}
		}
	}

	if iv := getObject(obj, "image_versions2"); iv != nil {
		if candidates := getList(iv, "candidates"); len(candidates) > 0 {
			if best := asObject(candidates[0]); best != nil {
				p.ThumbnailURL = getString(best, "url")
				p.ThumbnailWidth = getInt(best, "width")
				p.ThumbnailHeight = getInt(best, "height")
			}
		}
	}

	if videos := getList(obj, "video_versions"); len(videos) > 0 {
		if v := asObject(videos[0]); v != nil {
			p.VideoURL = getString(v, "url")
		}
	}

	// Carousel sub-media only counts when the attribute is actually a list.
	if media := getList(obj, "carousel_media"); media != nil {
		resources := make([]domain.RawResource, 0, len(media))
		for _, m := range media {
			mo := asObject(m)
			resources = append(resources, domain.RawResource{
				MediaType: getInt(mo, "media_type"),
				URL:       getString(mo, "url"),
			})
		}
		p.Resources = resources
	}

	return p
}

// asObject coerces item into a key/value map, passing maps through and
// round-tripping anything else via JSON. nil on any failure.
func asObject(item any) map[string]any {
	if obj, ok := item.(map[string]any); ok {
		return obj
	}

	raw, err := json.Marshal(item)
	if err != nil {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

func getString(obj map[string]any, key string) *string {
	s, ok := obj[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// getID reads an identifier that may arrive as either a string or a number
// depending on the endpoint.
func getID(obj map[string]any, key string) *string {
	switch v := obj[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return &v
	case float64:
		s := strconv.FormatInt(int64(v), 10)
		return &s
	default:
		return nil
	}
}

func getInt(obj map[string]any, key string) *int64 {
	f, ok := obj[key].(float64)
	if !ok {
		return nil
	}
	n := int64(f)
	return &n
}

func getFloat(obj map[string]any, key string) *float64 {
	f, ok := obj[key].(float64)
	if !ok || f == 0 {
		return nil
	}
	return &f
}

func getBool(obj map[string]any, key string) *bool {
	b, ok := obj[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

func getObject(obj map[string]any, key string) map[string]any {
	o, ok := obj[key].(map[string]any)
	if !ok {
		return nil
	}
	return o
}

func getList(obj map[string]any, key string) []any {
	l, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	return l
}
