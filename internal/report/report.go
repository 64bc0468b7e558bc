// Package report assembles the row table and its ranked view from a fetched
// post sequence. Build is the single entry point of the core pipeline: pure,
// synchronous, and defined for every input shape, so it can run on any
// goroutine with pre-fetched data and no live network dependency.
package report

import (
	"cmp"
	"slices"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/normalizer"
	"github.com/orgball2608/insta-virality-exporter/internal/virality"
)

// Report is the pair of views handed to the export boundary: All preserves
// fetch order, Ranked is ordered most viral first. Both are read-only once
// returned.
type Report struct {
	All    []domain.PostRow
	Ranked []domain.PostRow
}

// Build normalizes every post into a row, applies the per-follower metrics
// against the given snapshot, and derives the ranked view.
func Build(posts []domain.RawPost, followers *int) Report {
	rows := make([]domain.PostRow, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, normalizer.ToRow(p))
	}

	rows = virality.Apply(rows, followers)

	return Report{
		All:    rows,
		Ranked: Rank(rows),
	}
}

// Rank returns a new view of rows ordered by descending views_per_follower,
// ties broken by descending er_per_follower, unknown ratios after any known
// value. The sort is stable, so exact ties keep fetch order. rows itself is
// never reordered.
func Rank(rows []domain.PostRow) []domain.PostRow {
	ranked := make([]domain.PostRow, len(rows))
	copy(ranked, rows)

	slices.SortStableFunc(ranked, func(a, b domain.PostRow) int {
		if c := compareDesc(a.ViewsPerFollower, b.ViewsPerFollower); c != 0 {
			return c
		}
		return compareDesc(a.ERPerFollower, b.ERPerFollower)
	})
	return ranked
}

// compareDesc orders non-nil values descending and places nil last.
func compareDesc(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*b, *a)
	}
}
