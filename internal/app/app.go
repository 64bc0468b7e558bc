package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/orgball2608/insta-virality-exporter/internal/export"
	"github.com/orgball2608/insta-virality-exporter/internal/instagram"
	"github.com/orgball2608/insta-virality-exporter/internal/instagram/instagramimpl"
	_ "github.com/orgball2608/insta-virality-exporter/internal/migrations"
	"github.com/orgball2608/insta-virality-exporter/internal/notifier/telegramimpl"
	"github.com/orgball2608/insta-virality-exporter/internal/pgx"
	"github.com/orgball2608/insta-virality-exporter/internal/ratelimit"
	repositories "github.com/orgball2608/insta-virality-exporter/internal/repositories/fx"
	"github.com/orgball2608/insta-virality-exporter/internal/scraper"
	"github.com/orgball2608/insta-virality-exporter/internal/scraper/scraperimpl"
	"github.com/orgball2608/insta-virality-exporter/pkg/config"
	"github.com/orgball2608/insta-virality-exporter/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		func() ratelimit.Pacer {
			// At most one feed page every two seconds.
			return ratelimit.NewIntervalPacer(2*time.Second, 1)
		},
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			export.New,
			fx.As(new(export.Writer)),
		),
		telegramimpl.New,
		fx.Annotate(
			scraperimpl.New,
			fx.As(new(scraper.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(c *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", c.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	// Migrations are registered by the internal/migrations import.
	return goose.Up(db, ".")
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config,
	igClient instagram.Client, scClient scraper.Client) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHTTPServer(log, cfg)

			ctx := context.Background()
			if err := igClient.Login(); err != nil {
				log.Error("Instagram login error", "error", err)
				return err
			}

			if cfg.Scraper.Cron != "" {
				if err := scClient.Schedule(ctx); err != nil {
					log.Error("Failed to schedule scrapes", "error", err)
					return err
				}
				return nil
			}

			go func() {
				if _, err := scClient.Run(ctx, cfg.Scraper.Profile); err != nil {
					log.Error("Scrape failed", "error", err)
				}
			}()
			return nil
		},
	})
}

func startHTTPServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
