package scraperimpl_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/export"
	"github.com/orgball2608/insta-virality-exporter/internal/instagram/mocks"
	"github.com/orgball2608/insta-virality-exporter/internal/repositories/scraperun"
	"github.com/orgball2608/insta-virality-exporter/internal/scraper/scraperimpl"
	"github.com/orgball2608/insta-virality-exporter/pkg/config"
	"github.com/orgball2608/insta-virality-exporter/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRunRepo struct {
	created []*domain.ScrapeRun
	err     error
}

func (f *fakeRunRepo) Create(_ context.Context, run *domain.ScrapeRun) error {
	if f.err != nil {
		return f.err
	}
	run.ID = int64(len(f.created) + 1)
	f.created = append(f.created, run)
	return nil
}

func (f *fakeRunRepo) GetLatestByUsername(_ context.Context, username string, count int) ([]*domain.ScrapeRun, error) {
	var runs []*domain.ScrapeRun
	for i := len(f.created) - 1; i >= 0 && len(runs) < count; i-- {
		if f.created[i].Username == username {
			runs = append(runs, f.created[i])
		}
	}
	if len(runs) == 0 {
		return nil, scraperun.ErrNotFound
	}
	return runs, nil
}

func (f *fakeRunRepo) CleanupOldRecords(context.Context, time.Duration) (int64, error) {
	return 0, nil
}

type fakeNotifier struct {
	finished []*domain.ScrapeRun
	previous []*domain.ScrapeRun
	topURLs  []string
	failed   []string
}

func (f *fakeNotifier) NotifyRunFinished(run, previous *domain.ScrapeRun, topPostURL string) {
	f.finished = append(f.finished, run)
	f.previous = append(f.previous, previous)
	f.topURLs = append(f.topURLs, topPostURL)
}

func (f *fakeNotifier) NotifyRunFailed(username string, _ error) {
	f.failed = append(f.failed, username)
}

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Scraper.OutputDir = t.TempDir()
	cfg.Scraper.BaseName = "instagram_posts"
	cfg.Scraper.PostLimit = 0
	return cfg
}

func newScraper(t *testing.T, ig *mocks.MockClient, repo *fakeRunRepo, notif *fakeNotifier) *scraperimpl.ScraperImpl {
	t.Helper()
	log := logger.New(logger.Opts{})
	return scraperimpl.New(scraperimpl.Opts{
		Instagram: ig,
		Exporter:  export.New(export.Opts{Logger: log}),
		RunRepo:   repo,
		Notifier:  notif,
		Logger:    log,
		Config:    testConfig(t),
	})
}

func TestRun_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	ig := mocks.NewMockClient(ctrl)

	followers := 100
	ig.EXPECT().
		GetProfile(gomock.Any(), "natgeo").
		Return(&domain.Profile{UserID: 7, Username: "natgeo", FollowerCount: &followers}, nil)
	ig.EXPECT().
		GetUserPosts(gomock.Any(), "natgeo", 0).
		Return([]domain.RawPost{
			{ID: strPtr("1"), Shortcode: strPtr("AAA"), LikeCount: intPtr(1), CommentCount: intPtr(1), ViewCount: intPtr(10)},
			{ID: strPtr("2"), Shortcode: strPtr("BBB"), LikeCount: intPtr(5), CommentCount: intPtr(5), ViewCount: intPtr(90)},
		}, nil)

	repo := &fakeRunRepo{}
	notif := &fakeNotifier{}
	s := newScraper(t, ig, repo, notif)

	// The handle parser runs inside Run, so URLs work as profile references.
	run, err := s.Run(context.Background(), "https://www.instagram.com/natgeo/")
	require.NoError(t, err)

	assert.Equal(t, "natgeo", run.Username)
	assert.Equal(t, 2, run.PostCount)
	require.NotNil(t, run.Followers)
	assert.Equal(t, 100, *run.Followers)

	for _, p := range []string{run.CSVPath, run.XLSXPath, run.ViralityCSVPath} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}

	require.Len(t, repo.created, 1)
	require.Len(t, notif.finished, 1)
	// First run for this profile, so there is nothing to compare against.
	assert.Nil(t, notif.previous[0])
	// The second post is more viral and leads the ranked view.
	assert.Equal(t, "https://www.instagram.com/p/BBB/", notif.topURLs[0])
}

func TestRun_SecondRunPassesPreviousRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	ig := mocks.NewMockClient(ctrl)

	followers := 100
	grown := 220
	gomock.InOrder(
		ig.EXPECT().
			GetProfile(gomock.Any(), "natgeo").
			Return(&domain.Profile{UserID: 7, Username: "natgeo", FollowerCount: &followers}, nil),
		ig.EXPECT().
			GetUserPosts(gomock.Any(), "natgeo", 0).
			Return([]domain.RawPost{{ID: strPtr("1")}}, nil),
		ig.EXPECT().
			GetProfile(gomock.Any(), "natgeo").
			Return(&domain.Profile{UserID: 7, Username: "natgeo", FollowerCount: &grown}, nil),
		ig.EXPECT().
			GetUserPosts(gomock.Any(), "natgeo", 0).
			Return([]domain.RawPost{{ID: strPtr("1")}, {ID: strPtr("2")}}, nil),
	)

	repo := &fakeRunRepo{}
	notif := &fakeNotifier{}
	s := newScraper(t, ig, repo, notif)

	first, err := s.Run(context.Background(), "natgeo")
	require.NoError(t, err)
	_, err = s.Run(context.Background(), "natgeo")
	require.NoError(t, err)

	require.Len(t, notif.previous, 2)
	assert.Nil(t, notif.previous[0])
	// The second notification carries the first run for the follower delta.
	require.NotNil(t, notif.previous[1])
	assert.Equal(t, first.ID, notif.previous[1].ID)
	require.NotNil(t, notif.previous[1].Followers)
	assert.Equal(t, 100, *notif.previous[1].Followers)
}

func TestRun_ProfileLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ig := mocks.NewMockClient(ctrl)

	ig.EXPECT().
		GetProfile(gomock.Any(), "ghost").
		Return(nil, errors.New("profile not found"))

	repo := &fakeRunRepo{}
	notif := &fakeNotifier{}
	s := newScraper(t, ig, repo, notif)

	_, err := s.Run(context.Background(), "@ghost")
	require.Error(t, err)
	assert.Empty(t, repo.created)
	assert.Equal(t, []string{"ghost"}, notif.failed)
}

func TestRun_HistoryInsertFailureDoesNotFailRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	ig := mocks.NewMockClient(ctrl)

	ig.EXPECT().
		GetProfile(gomock.Any(), "natgeo").
		Return(&domain.Profile{UserID: 7, Username: "natgeo"}, nil)
	ig.EXPECT().
		GetUserPosts(gomock.Any(), "natgeo", 0).
		Return([]domain.RawPost{{ID: strPtr("1")}}, nil)

	repo := &fakeRunRepo{err: errors.New("db down")}
	notif := &fakeNotifier{}
	s := newScraper(t, ig, repo, notif)

	run, err := s.Run(context.Background(), "natgeo")
	require.NoError(t, err)
	assert.Equal(t, 1, run.PostCount)
	// Follower count unknown: metrics columns stay empty but the run succeeds.
	assert.Nil(t, run.Followers)
	require.Len(t, notif.finished, 1)
	assert.Equal(t, "", notif.topURLs[0])
}
