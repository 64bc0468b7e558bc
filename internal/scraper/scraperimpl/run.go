package scraperimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/handle"
	"github.com/orgball2608/insta-virality-exporter/internal/report"
	"github.com/orgball2608/insta-virality-exporter/internal/repositories/scraperun"
)

// Run scrapes one profile end to end and returns the recorded run. Network
// retrieval happens first; the pipeline itself then works on the
// already-materialized post sequence.
func (s *ScraperImpl) Run(ctx context.Context, profileRef string) (*domain.ScrapeRun, error) {
	started := time.Now()

	username := handle.Parse(profileRef)
	s.Logger.Info("Starting scrape", "username", username)

	profile, err := s.Instagram.GetProfile(ctx, username)
	if err != nil {
		s.Notifier.NotifyRunFailed(username, err)
		return nil, fmt.Errorf("failed to resolve profile %q: %w", username, err)
	}

	posts, err := s.Instagram.GetUserPosts(ctx, username, s.Config.Scraper.PostLimit)
	if err != nil {
		s.Notifier.NotifyRunFailed(username, err)
		return nil, fmt.Errorf("failed to fetch posts of %q: %w", username, err)
	}

	rep := report.Build(posts, profile.FollowerCount)

	files, err := s.Exporter.WriteAll(s.Config.Scraper.OutputDir, s.Config.Scraper.BaseName, rep)
	if err != nil {
		s.Notifier.NotifyRunFailed(username, err)
		return nil, fmt.Errorf("failed to export report for %q: %w", username, err)
	}

	run := &domain.ScrapeRun{
		Username:        username,
		Followers:       profile.FollowerCount,
		PostCount:       len(rep.All),
		CSVPath:         files.CSV,
		XLSXPath:        files.XLSX,
		ViralityCSVPath: files.ViralityCSV,
		Duration:        time.Since(started),
	}

	// Loaded before the insert so the notification can compare against the
	// run that preceded this one.
	previous := s.previousRun(ctx, username)

	// The exports are already on disk; a history insert failure is not worth
	// failing the run over.
	if err := s.RunRepo.Create(ctx, run); err != nil {
		s.Logger.Error("Failed to record scrape run", "username", username, "error", err)
	}

	s.Logger.Info("Scrape finished",
		"username", username,
		"posts", run.PostCount,
		"duration", run.Duration.Round(time.Millisecond).String())

	s.Notifier.NotifyRunFinished(run, previous, topPostURL(rep.Ranked))
	return run, nil
}

// previousRun loads the latest recorded run for the profile, best effort: a
// missing history or a repository failure just drops the comparison.
func (s *ScraperImpl) previousRun(ctx context.Context, username string) *domain.ScrapeRun {
	runs, err := s.RunRepo.GetLatestByUsername(ctx, username, 1)
	if err != nil {
		if !errors.Is(err, scraperun.ErrNotFound) {
			s.Logger.Warn("Failed to load previous run", "username", username, "error", err)
		}
		return nil
	}
	if len(runs) == 0 {
		return nil
	}
	return runs[0]
}

func topPostURL(ranked []domain.PostRow) string {
	if len(ranked) == 0 || ranked[0].URL == nil {
		return ""
	}
	return *ranked[0].URL
}
