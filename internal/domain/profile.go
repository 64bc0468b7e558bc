package domain

import "time"

// Profile is the snapshot of a profile at scrape time.
type Profile struct {
	UserID   int64
	Username string
	FullName string
	// FollowerCount is nil when the source did not report it. Metrics are
	// computed against this snapshot, never against a later lookup.
	FollowerCount *int
	IsPrivate     bool
}

// ScrapeRun records one completed scrape: what was fetched and where the
// exports landed.
type ScrapeRun struct {
	ID              int64
	Username        string
	Followers       *int
	PostCount       int
	CSVPath         string
	XLSXPath        string
	ViralityCSVPath string
	Duration        time.Duration
	CreatedAt       time.Time
}
