package scraperimpl

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/insta-virality-exporter/internal/export"
	"github.com/orgball2608/insta-virality-exporter/internal/instagram"
	"github.com/orgball2608/insta-virality-exporter/internal/notifier"
	"github.com/orgball2608/insta-virality-exporter/internal/repositories/scraperun"
	"github.com/orgball2608/insta-virality-exporter/internal/scraper"
	"github.com/orgball2608/insta-virality-exporter/pkg/config"
	"github.com/orgball2608/insta-virality-exporter/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Instagram instagram.Client
	Exporter  export.Writer
	RunRepo   scraperun.Repository
	Notifier  notifier.Client
	Logger    logger.Logger
	Config    *config.Config
}

type ScraperImpl struct {
	Instagram instagram.Client
	Exporter  export.Writer
	RunRepo   scraperun.Repository
	Notifier  notifier.Client
	Logger    logger.Logger
	Config    *config.Config
	Scheduler gocron.Scheduler
}

func New(opts Opts) *ScraperImpl {
	return &ScraperImpl{
		Instagram: opts.Instagram,
		Exporter:  opts.Exporter,
		RunRepo:   opts.RunRepo,
		Notifier:  opts.Notifier,
		Logger:    opts.Logger.WithComponent("Scraper"),
		Config:    opts.Config,
	}
}

var _ scraper.Client = (*ScraperImpl)(nil)
