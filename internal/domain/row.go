package domain

// PostRow is the canonical normalized record for one post. One fetched post
// maps to exactly one row, immutable after normalization except for the
// metrics columns, which are filled in a single pass once the follower
// count is known. The struct guarantees the rectangular-table invariant:
// every column exists on every row, nil standing in for an absent value.
type PostRow struct {
	ID          *string
	PK          *string
	Shortcode   *string
	URL         *string
	TakenAt     *string
	MediaType   *int64
	ProductType *string

	LikeCount    *int64
	CommentCount *int64
	ViewCount    *int64
	PlayCount    *int64

	Caption  *string
	Hashtags string
	Mentions string

	DurationSec *float64
	Width       *int64
	Height      *int64
	Location    *string

	IsPaidPartnership  *bool
	IsCommentsDisabled *bool

	ThumbnailURL  *string
	VideoURL      *string
	CarouselCount *int64

	// Metrics columns. nil is the explicit not-a-number marker: no follower
	// baseline for the run, or a counter that could not be read for this row.
	FollowersAtScrape   *int64
	ViewsPerFollower    *float64
	LikesPerFollower    *float64
	CommentsPerFollower *float64
	ERPerFollower       *float64
}
