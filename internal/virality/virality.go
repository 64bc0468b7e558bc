// Package virality derives per-follower engagement metrics over a row table.
package virality

import "github.com/orgball2608/insta-virality-exporter/internal/domain"

// Apply attaches the follower snapshot and per-follower ratios to every row
// in one batch pass and returns the augmented table. Output row count always
// equals input row count.
//
// A missing follower baseline (nil, zero or negative) leaves the snapshot
// and all four ratio columns nil on every row. A counter that is nil leaves
// only that row's ratio nil; the rest of the batch is unaffected.
func Apply(rows []domain.PostRow, followers *int) []domain.PostRow {
	out := make([]domain.PostRow, len(rows))
	copy(out, rows)

	if followers == nil || *followers <= 0 {
		return out
	}

	base := float64(*followers)
	for i := range out {
		snapshot := int64(*followers)
		out[i].FollowersAtScrape = &snapshot

		out[i].ViewsPerFollower = ratio(out[i].ViewCount, base)
		out[i].LikesPerFollower = ratio(out[i].LikeCount, base)
		out[i].CommentsPerFollower = ratio(out[i].CommentCount, base)

		if out[i].LikeCount != nil && out[i].CommentCount != nil {
			er := float64(*out[i].LikeCount+*out[i].CommentCount) / base
			out[i].ERPerFollower = &er
		}
	}
	return out
}

func ratio(count *int64, followers float64) *float64 {
	if count == nil {
		return nil
	}
	r := float64(*count) / followers
	return &r
}
