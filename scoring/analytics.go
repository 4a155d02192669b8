package scoring

import (
	"math"

	"github.com/openpsych/perscore/dataset"
)

// ItemStats summarizes the raw responses observed for a single item.
type ItemStats struct {
	Item     string `json:"item"`
	Answered int    `json:"answered"`
	Missing  int    `json:"missing"`

	// Mean of the raw, source-scale values. Nil when nothing was answered.
	Mean *float64 `json:"mean,omitempty"`

	// Histogram counts responses per integer point of the source scale, index
	// 0 being the scale's lower bound. Nil when the source scale does not
	// have integer bounds. Non-integer and out-of-range responses are counted
	// in Answered but not binned.
	Histogram []int `json:"histogram,omitempty"`
}

// ItemReport carries per-item response statistics and an internal-consistency
// estimate for the used items. It is descriptive only and never feeds back
// into scoring.
type ItemReport struct {
	Items []ItemStats `json:"items"`

	// Alpha is Cronbach's alpha over the rescaled responses of the rows that
	// answered every used item; N counts those rows.
	Alpha float64 `json:"alpha"`
	N     int     `json:"n"`
}

// AnalyzeItems computes an ItemReport for a scored result against the table
// it was scored from. The table must have the same number of rows as the
// result.
func AnalyzeItems(t *dataset.Table, res *Result) (*ItemReport, error) {
	if res == nil || res.Rows == nil || len(res.ItemsRequested) == 0 {
		return nil, NewSchemaError("not a scored result: missing columns raw_total, items_answered, standardized")
	}
	if t == nil || t.NumRows() != len(res.Rows) {
		return nil, NewDataError("table does not match the scored result: row counts differ")
	}

	bins := histogramBins(res.ScaleFrom)
	reverse := make(map[string]bool, len(res.ReverseItems))
	for _, item := range res.ReverseItems {
		reverse[item] = true
	}

	items := make([]ItemStats, len(res.ItemsUsed))
	matrix := make([][]float64, 0, t.NumRows())
	for j, item := range res.ItemsUsed {
		items[j] = ItemStats{Item: item}
		if bins > 0 {
			items[j].Histogram = make([]int, bins)
		}
	}

	for i := 0; i < t.NumRows(); i++ {
		row := make([]float64, len(res.ItemsUsed))
		complete := true
		for j, item := range res.ItemsUsed {
			cell, _ := t.Cell(i, item)
			x, ok := dataset.Float(cell)
			if !ok {
				items[j].Missing++
				complete = false
				continue
			}
			st := &items[j]
			st.Answered++
			if st.Mean == nil {
				st.Mean = new(float64)
			}
			*st.Mean += x
			if st.Histogram != nil {
				if bin := x - res.ScaleFrom.Lo; bin == math.Trunc(bin) && bin >= 0 && int(bin) < bins {
					st.Histogram[int(bin)]++
				}
			}
			scored := x
			if reverse[item] {
				scored = res.ScaleFrom.Reflect(scored)
			}
			row[j] = res.ScaleFrom.Rescale(scored, res.ScaleTo)
		}
		if complete {
			matrix = append(matrix, row)
		}
	}
	for j := range items {
		if items[j].Mean != nil {
			*items[j].Mean /= float64(items[j].Answered)
		}
	}

	return &ItemReport{
		Items: items,
		Alpha: CronbachAlpha(matrix),
		N:     len(matrix),
	}, nil
}

// histogramBins returns the bin count for a scale with integer bounds, or 0
// when the scale cannot be binned that way.
func histogramBins(scale Range) int {
	if scale.Lo != math.Trunc(scale.Lo) || scale.Hi != math.Trunc(scale.Hi) {
		return 0
	}
	n := int(scale.Hi-scale.Lo) + 1
	if n < 2 {
		return 0
	}
	return n
}

// CronbachAlpha computes Cronbach's alpha for a complete response matrix
// shaped [nRespondents][nItems], using population variance throughout so that
// perfectly correlated items yield exactly 1. The result is clamped to
// [0, 1]; degenerate inputs (fewer than one respondent, fewer than two items,
// ragged rows, zero total variance) yield 0.
func CronbachAlpha(matrix [][]float64) float64 {
	n := len(matrix)
	if n == 0 {
		return 0
	}
	k := len(matrix[0])
	if k < 2 {
		return 0
	}

	itemMeans := make([]float64, k)
	totals := make([]float64, n)
	for i, row := range matrix {
		if len(row) != k {
			return 0
		}
		for j, v := range row {
			itemMeans[j] += v
			totals[i] += v
		}
	}
	for j := range itemMeans {
		itemMeans[j] /= float64(n)
	}

	var sumItemVars float64
	for j := 0; j < k; j++ {
		var ss float64
		for i := 0; i < n; i++ {
			d := matrix[i][j] - itemMeans[j]
			ss += d * d
		}
		sumItemVars += ss / float64(n)
	}

	var totalMean float64
	for _, tv := range totals {
		totalMean += tv
	}
	totalMean /= float64(n)
	var totalVar float64
	for _, tv := range totals {
		d := tv - totalMean
		totalVar += d * d
	}
	totalVar /= float64(n)
	if totalVar == 0 {
		return 0
	}

	kf := float64(k)
	alpha := (kf / (kf - 1)) * (1 - sumItemVars/totalVar)
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
