package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateScrapeRuns, downCreateScrapeRuns)
}

func upCreateScrapeRuns(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE scrape_runs (
		id SERIAL PRIMARY KEY,
		username VARCHAR NOT NULL,
		followers BIGINT,
		post_count INTEGER NOT NULL,
		csv_path VARCHAR NOT NULL,
		xlsx_path VARCHAR NOT NULL,
		virality_csv_path VARCHAR NOT NULL,
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX scrape_runs_username_idx ON scrape_runs (username, created_at DESC);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateScrapeRuns(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE scrape_runs;
	`)
	if err != nil {
		return err
	}
	return nil
}
