package telegramimpl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/pkg/config"
	pkgerrors "github.com/orgball2608/insta-virality-exporter/pkg/errors"
	"github.com/orgball2608/insta-virality-exporter/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyTokenDisablesNotifications(t *testing.T) {
	client, err := New(Opts{
		Config: &config.Config{},
		Logger: logger.New(logger.Opts{}),
	})
	require.NoError(t, err)
	assert.IsType(t, &NoopImpl{}, client)
}

func TestFollowersLine(t *testing.T) {
	followers := func(n int) *domain.ScrapeRun {
		return &domain.ScrapeRun{Followers: &n}
	}

	tests := []struct {
		name     string
		run      *domain.ScrapeRun
		previous *domain.ScrapeRun
		want     string
	}{
		{"unknown count", &domain.ScrapeRun{}, nil, "Followers: unknown"},
		{"no previous run", followers(1200), nil, "Followers: 1,200"},
		{"previous without count", followers(1200), &domain.ScrapeRun{}, "Followers: 1,200"},
		{"growth", followers(1320), followers(1200), "Followers: 1,320 (+120 since last run)"},
		{"loss", followers(1190), followers(1200), "Followers: 1,190 (-10 since last run)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, followersLine(tt.run, tt.previous))
		})
	}
}

func TestFailureReason(t *testing.T) {
	lookupErr := fmt.Errorf("failed to get profile ghost: %w: %w",
		pkgerrors.ErrNotFound, errors.New("404"))
	assert.Equal(t, "The profile could not be resolved. Check the handle.", failureReason(lookupErr))

	loginErr := fmt.Errorf("failed to log in after multiple attempts: %w: %w",
		pkgerrors.ErrUnauthorized, errors.New("bad password"))
	assert.Equal(t, "Instagram rejected the session. A fresh login is required.", failureReason(loginErr))

	feedErr := fmt.Errorf("failed to page feed of natgeo: %w: %w",
		pkgerrors.ErrServiceUnavailable, errors.New("timeout"))
	assert.Equal(t, "Instagram did not serve the feed. The next run will retry.", failureReason(feedErr))

	plain := errors.New("disk full")
	assert.Equal(t, "disk full", failureReason(plain))
}
