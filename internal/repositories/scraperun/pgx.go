package scraperun

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/repositories"
	"github.com/orgball2608/insta-virality-exporter/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("ScrapeRunRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Create records a finished run and fills in its ID and CreatedAt.
func (p *Pgx) Create(ctx context.Context, run *domain.ScrapeRun) error {
	now := time.Now()

	query, args, err := repositories.SqBuilder.
		Insert("scrape_runs").
		Columns("username", "followers", "post_count", "csv_path", "xlsx_path", "virality_csv_path", "duration_ms", "created_at").
		Values(run.Username, run.Followers, run.PostCount, run.CSVPath, run.XLSXPath, run.ViralityCSVPath, run.Duration.Milliseconds(), now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if err := p.pg.QueryRow(ctx, query, args...).Scan(&run.ID); err != nil {
		return err
	}
	run.CreatedAt = now
	return nil
}

// GetLatestByUsername returns the most recent runs for a profile, newest
// first, or ErrNotFound when the profile has no recorded runs.
func (p *Pgx) GetLatestByUsername(ctx context.Context, username string, count int) ([]*domain.ScrapeRun, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "username", "followers", "post_count", "csv_path", "xlsx_path", "virality_csv_path", "duration_ms", "created_at").
		From("scrape_runs").
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.ScrapeRun
	for rows.Next() {
		var run domain.ScrapeRun
		var durationMS int64
		if err := rows.Scan(&run.ID, &run.Username, &run.Followers, &run.PostCount,
			&run.CSVPath, &run.XLSXPath, &run.ViralityCSVPath, &durationMS, &run.CreatedAt); err != nil {
			return nil, err
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(runs) == 0 {
		return nil, ErrNotFound
	}
	return runs, nil
}

// CleanupOldRecords deletes runs older than the specified duration.
func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete("scrape_runs").
		Where(sq.Lt{"created_at": cutoffTime}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
