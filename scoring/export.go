package scoring

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// ExportCSV renders the result table as CSV for downstream auditing. One
// record per scored row; a nil standardized score renders as an empty field.
// Output is deterministic for a given result.
func (r *Result) ExportCSV() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"raw_total", "items_answered", "standardized", "response_status"})
	for _, row := range r.Rows {
		std := ""
		if row.Standardized != nil {
			std = strconv.FormatFloat(*row.Standardized, 'g', -1, 64)
		}
		rec := []string{
			strconv.FormatFloat(row.RawTotal, 'g', -1, 64),
			strconv.Itoa(row.ItemsAnswered),
			std,
			string(row.ResponseStatus),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
