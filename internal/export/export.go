// Package export serializes report views to the delimited and spreadsheet
// output formats.
package export

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/report"
	"github.com/orgball2608/insta-virality-exporter/pkg/errors"
	"github.com/orgball2608/insta-virality-exporter/pkg/logger"
	"go.uber.org/fx"
)

// Columns is the fixed header shared by every output format. Order matters:
// consumers diff exports across runs.
var Columns = []string{
	"id", "pk", "shortcode", "url", "taken_at", "media_type", "product_type",
	"like_count", "comment_count", "view_count", "play_count",
	"caption", "hashtags", "mentions",
	"duration_sec", "width", "height", "location",
	"is_paid_partnership", "is_comments_disabled",
	"thumbnail_url", "video_url", "carousel_count",
	"followers_at_scrape", "views_per_follower", "likes_per_follower",
	"comments_per_follower", "er_per_follower",
}

// Files holds the paths of one run's exports.
type Files struct {
	CSV         string
	XLSX        string
	ViralityCSV string
}

// Writer is the serialization boundary for finished reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=export.go -destination=mocks/mock.go -package=mocks
type Writer interface {
	// WriteAll writes the primary CSV, the two-sheet workbook and the ranked
	// CSV under dir, named after baseName.
	WriteAll(dir, baseName string, rep report.Report) (*Files, error)
}

type Exporter struct {
	logger logger.Logger
}

type Opts struct {
	fx.In

	Logger logger.Logger
}

func New(opts Opts) *Exporter {
	return &Exporter{
		logger: opts.Logger.WithComponent("Exporter"),
	}
}

var _ Writer = (*Exporter)(nil)

func (e *Exporter) WriteAll(dir, baseName string, rep report.Report) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	files := &Files{
		CSV:         filepath.Join(dir, baseName+".csv"),
		XLSX:        filepath.Join(dir, baseName+".xlsx"),
		ViralityCSV: filepath.Join(dir, baseName+"_virality.csv"),
	}

	if err := WriteCSV(files.CSV, rep.All); err != nil {
		return nil, errors.Wrap(err, "failed to write posts CSV")
	}
	if err := WriteCSV(files.ViralityCSV, rep.Ranked); err != nil {
		return nil, errors.Wrap(err, "failed to write virality CSV")
	}
	if err := WriteXLSX(files.XLSX, rep); err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	e.logger.Info("Report exported",
		"rows", len(rep.All),
		"csv", files.CSV,
		"xlsx", files.XLSX,
		"virality_csv", files.ViralityCSV,
	)
	return files, nil
}

// record renders one row in Columns order. nil renders as the empty cell.
func record(r domain.PostRow) []string {
	return []string{
		strCell(r.ID), strCell(r.PK), strCell(r.Shortcode), strCell(r.URL),
		strCell(r.TakenAt), intCell(r.MediaType), strCell(r.ProductType),
		intCell(r.LikeCount), intCell(r.CommentCount), intCell(r.ViewCount), intCell(r.PlayCount),
		strCell(r.Caption), r.Hashtags, r.Mentions,
		floatCell(r.DurationSec), intCell(r.Width), intCell(r.Height), strCell(r.Location),
		boolCell(r.IsPaidPartnership), boolCell(r.IsCommentsDisabled),
		strCell(r.ThumbnailURL), strCell(r.VideoURL), intCell(r.CarouselCount),
		intCell(r.FollowersAtScrape),
		floatCell(r.ViewsPerFollower), floatCell(r.LikesPerFollower),
		floatCell(r.CommentsPerFollower), floatCell(r.ERPerFollower),
	}
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func boolCell(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
