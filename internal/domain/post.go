package domain

import "time"

// RawLocation is the optional location sub-object of a post.
type RawLocation struct {
	Name *string
	Slug *string
}

// RawResource is one entry of a carousel's sub-media list.
type RawResource struct {
	MediaType *int64
	URL       *string
}

// RawPost is the loosely-typed view of one post exactly as the API adapter
// extracted it. Every field is optional: nil means the source did not provide
// the attribute (or provided it in an unusable shape). Post objects are
// polymorphic across media kinds (image, video, carousel, clip), so no field
// here may be assumed present.
type RawPost struct {
	ID          *string
	PK          *string
	Shortcode   *string
	TakenAt     *time.Time
	MediaType   *int64
	ProductType *string

	LikeCount    *int64
	CommentCount *int64
	ViewCount    *int64
	PlayCount    *int64

	Caption *string

	DurationSec     *float64
	ThumbnailWidth  *int64
	ThumbnailHeight *int64
	Width           *int64
	Height          *int64

	Location *RawLocation

	IsPaidPartnership *bool
	CommentsDisabled  *bool

	ThumbnailURL *string
	VideoURL     *string

	// Resources is the carousel sub-media list. nil means the post has no
	// such list (single-media posts, or a non-list shape in the source).
	Resources []RawResource
}
