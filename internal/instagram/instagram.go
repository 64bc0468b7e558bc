package instagram

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
)

var ErrPrivateAccount = errors.New("account is private and cannot be accessed")

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// Login authenticates with Instagram, reusing a saved session when possible.
	Login() error

	// GetProfile resolves a handle to its profile snapshot (user id, follower count).
	GetProfile(ctx context.Context, username string) (*domain.Profile, error)

	// GetUserPosts fetches the profile's post history, newest first, as raw
	// posts ready for normalization. limit <= 0 fetches the whole history.
	GetUserPosts(ctx context.Context, username string, limit int) ([]domain.RawPost, error)
}
