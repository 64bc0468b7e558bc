package scraper

import (
	"context"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=scraper.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// Run scrapes one profile end to end: resolve the handle, fetch the post
	// history, build the report, export it and record the run.
	Run(ctx context.Context, profileRef string) (*domain.ScrapeRun, error)

	// Schedule registers the recurring scrape and the run-history cleanup job.
	Schedule(ctx context.Context) error
}
