package scraperimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const runRetention = 30 * 24 * time.Hour

// Schedule sets up the recurring scrape from the configured cron expression
// plus a daily cleanup of old run history.
func (s *ScraperImpl) Schedule(ctx context.Context) error {
	if s.Scheduler == nil {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		s.Scheduler = scheduler
	}

	cron := s.Config.Scraper.Cron
	s.Logger.Info("Setting up scrape schedule", "cron", cron)

	_, err := s.Scheduler.NewJob(
		gocron.CronJob(cron, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, skipping scheduled scrape")
				return
			}

			runCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
			defer cancel()

			if _, err := s.Run(runCtx, s.Config.Scraper.Profile); err != nil {
				s.Logger.Error("Scheduled scrape failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule scrape: %w", err)
	}

	// Run history cleanup at 3:00 AM every day.
	_, err = s.Scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}

			cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			rowsDeleted, err := s.RunRepo.CleanupOldRecords(cleanupCtx, runRetention)
			if err != nil {
				s.Logger.Error("Failed to clean up old runs", "error", err)
				return
			}

			s.Logger.Info("Run history cleanup completed", "rows_deleted", rowsDeleted)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule run cleanup: %w", err)
	}

	s.Scheduler.Start()

	go func() {
		<-ctx.Done()
		s.Logger.Info("Stopping scrape scheduler")
		if err := s.Scheduler.Shutdown(); err != nil {
			s.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
