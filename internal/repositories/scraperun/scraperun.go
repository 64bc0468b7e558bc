package scraperun

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
)

var ErrNotFound = errors.New("scrape run not found")

//go:generate go run go.uber.org/mock/mockgen -source=scraperun.go -destination=mocks/mock.go -package=mocks
type Repository interface {
	// Create records a finished run and fills in its ID and CreatedAt.
	Create(ctx context.Context, run *domain.ScrapeRun) error

	// GetLatestByUsername returns the most recent runs for a profile, newest
	// first, or ErrNotFound when the profile has no recorded runs.
	GetLatestByUsername(ctx context.Context, username string, count int) ([]*domain.ScrapeRun, error)

	// CleanupOldRecords deletes runs older than the specified duration.
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
