package instagramimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/instagram"
	"github.com/orgball2608/insta-virality-exporter/internal/instagram/api_adapter"
	"github.com/orgball2608/insta-virality-exporter/internal/ratelimit"
	pkgerrors "github.com/orgball2608/insta-virality-exporter/pkg/errors"
	"github.com/orgball2608/insta-virality-exporter/pkg/retry"
)

func (ig *IgImpl) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	user, err := ig.lookupUser(ctx, username)
	if err != nil {
		return nil, err
	}

	profile := toProfile(user)
	ig.Logger.Info("Resolved profile",
		"username", profile.Username,
		"user_id", profile.UserID,
		"followers", user.FollowerCount)
	return profile, nil
}

// toProfile snapshots the fields the pipeline needs. A non-positive follower
// count is treated as unreported.
func toProfile(user *goinsta.User) *domain.Profile {
	profile := &domain.Profile{
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		IsPrivate: user.IsPrivate,
	}
	if user.FollowerCount > 0 {
		followers := int(user.FollowerCount)
		profile.FollowerCount = &followers
	}
	return profile
}

func (ig *IgImpl) GetUserPosts(ctx context.Context, username string, limit int) ([]domain.RawPost, error) {
	user, err := ig.lookupUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.IsPrivate {
		return nil, instagram.ErrPrivateAccount
	}

	posts, err := drainFeed(ctx, userFeed{user.Feed()}, ig.Pacer, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to page feed of %s: %w: %w", username, pkgerrors.ErrServiceUnavailable, err)
	}

	ig.Logger.Info("Fetched post history", "username", username, "count", len(posts))
	return posts, nil
}

// postFeed is the slice of goinsta's FeedMedia the paging loop depends on.
// CumulativeItems mirrors Next's contract of appending every fetched page to
// the same item slice.
type postFeed interface {
	Next(params ...interface{}) bool
	Error() error
	CumulativeItems() []any
}

type userFeed struct {
	*goinsta.FeedMedia
}

func (f userFeed) CumulativeItems() []any {
	items := make([]any, len(f.Items))
	for i, item := range f.Items {
		items[i] = item
	}
	return items
}

// drainFeed walks the feed page by page. Because the feed accumulates items
// across Next calls, only the items past the already-consumed offset are
// converted; re-reading the whole slice would duplicate earlier pages.
// limit 0 means the whole history; a positive limit cuts off mid-page.
func drainFeed(ctx context.Context, feed postFeed, pacer ratelimit.Pacer, limit int) ([]domain.RawPost, error) {
	var posts []domain.RawPost
	consumed := 0

	for page := 0; feed.Next(); page++ {
		// Pace page fetches so a long history does not hammer the API. The
		// first page and the terminating Next are not paced.
		if page > 0 {
			if err := pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}

		items := feed.CumulativeItems()
		for _, item := range items[consumed:] {
			posts = append(posts, api_adapter.ToRawPost(item))
			if limit > 0 && len(posts) >= limit {
				return posts, nil
			}
		}
		consumed = len(items)
	}

	if err := feed.Error(); err != nil && !errors.Is(err, goinsta.ErrNoMore) {
		return nil, err
	}
	return posts, nil
}

func (ig *IgImpl) lookupUser(ctx context.Context, username string) (*goinsta.User, error) {
	var user *goinsta.User
	lookup := func() error {
		u, err := ig.Client.Profiles.ByName(username)
		if err != nil {
			return err
		}
		user = u
		return nil
	}

	if err := retry.Do(ctx, ig.Logger, "ProfileByName", lookup, retry.DefaultConfig()); err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w: %w", username, pkgerrors.ErrNotFound, err)
	}
	return user, nil
}
