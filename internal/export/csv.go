package export

import (
	"encoding/csv"
	"os"

	"github.com/orgball2608/insta-virality-exporter/internal/domain"
)

// utf8BOM is prepended so spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes rows as a UTF-8 CSV with a byte-order mark, header first,
// one line per row, no index column.
func WriteCSV(path string, rows []domain.PostRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(record(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
