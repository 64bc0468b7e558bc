package export

import (
	"fmt"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/report"
	"github.com/xuri/excelize/v2"
)

const (
	sheetAllPosts = "All Posts"
	sheetVirality = "Virality"
)

// WriteXLSX writes the workbook with the fetch-order sheet and the ranked
// sheet, same column set as the CSVs.
func WriteXLSX(path string, rep report.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, sheetAllPosts, rep.All); err != nil {
		return err
	}
	if err := writeSheet(f, sheetVirality, rep.Ranked); err != nil {
		return err
	}

	// Drop the default sheet so "All Posts" comes first.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(sheetAllPosts)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, name string, rows []domain.PostRow) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := sheetCells(r)
		if err := f.SetSheetRow(name, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+2, name, err)
		}
	}
	return nil
}

// sheetCells keeps numeric columns numeric in the workbook; nil becomes an
// empty cell.
func sheetCells(r domain.PostRow) []any {
	return []any{
		strVal(r.ID), strVal(r.PK), strVal(r.Shortcode), strVal(r.URL),
		strVal(r.TakenAt), intVal(r.MediaType), strVal(r.ProductType),
		intVal(r.LikeCount), intVal(r.CommentCount), intVal(r.ViewCount), intVal(r.PlayCount),
		strVal(r.Caption), r.Hashtags, r.Mentions,
		floatVal(r.DurationSec), intVal(r.Width), intVal(r.Height), strVal(r.Location),
		boolVal(r.IsPaidPartnership), boolVal(r.IsCommentsDisabled),
		strVal(r.ThumbnailURL), strVal(r.VideoURL), intVal(r.CarouselCount),
		intVal(r.FollowersAtScrape),
		floatVal(r.ViewsPerFollower), floatVal(r.LikesPerFollower),
		floatVal(r.CommentsPerFollower), floatVal(r.ERPerFollower),
	}
}

func strVal(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func intVal(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatVal(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolVal(v *bool) any {
	if v == nil {
		return nil
	}
	return *v
}
