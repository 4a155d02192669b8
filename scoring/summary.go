package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// VariableStats holds descriptive statistics for one score column, computed
// over non-missing values only. Statistics other than N are NaN when
// undefined: everything for N == 0, and SD also for N == 1.
type VariableStats struct {
	Variable string
	N        int
	Mean     float64
	SD       float64
	Min      float64
	P25      float64
	Median   float64
	P75      float64
	Max      float64
}

// Summary describes a scored result: one VariableStats per score column, in
// the fixed order raw_total, items_answered, standardized, plus the item
// metadata carried over from the result.
type Summary struct {
	Variables []VariableStats

	ItemsRequested []string
	ItemsUsed      []string
	ItemsMissing   []string
	ScaleFrom      Range
	ScaleTo        Range
}

// Summarize computes descriptive statistics over the three score columns of a
// result. In a dynamically typed table the scored output would be recognized
// by its columns; here the Result type carries that schema, so the check
// reduces to rejecting a nil result, a result without a row slice, or one
// whose metadata was never populated.
func Summarize(res *Result) (*Summary, error) {
	if res == nil || res.Rows == nil || len(res.ItemsRequested) == 0 {
		return nil, NewSchemaError("not a scored result: missing columns raw_total, items_answered, standardized")
	}

	raw := make([]float64, 0, len(res.Rows))
	answered := make([]float64, 0, len(res.Rows))
	std := make([]float64, 0, len(res.Rows))
	for _, row := range res.Rows {
		raw = append(raw, row.RawTotal)
		answered = append(answered, float64(row.ItemsAnswered))
		if row.Standardized != nil {
			std = append(std, *row.Standardized)
		}
	}

	return &Summary{
		Variables: []VariableStats{
			describe("raw_total", raw),
			describe("items_answered", answered),
			describe("standardized", std),
		},
		ItemsRequested: res.ItemsRequested,
		ItemsUsed:      res.ItemsUsed,
		ItemsMissing:   res.ItemsMissing,
		ScaleFrom:      res.ScaleFrom,
		ScaleTo:        res.ScaleTo,
	}, nil
}

func describe(name string, vals []float64) VariableStats {
	nan := math.NaN()
	st := VariableStats{
		Variable: name,
		N:        len(vals),
		Mean:     nan, SD: nan, Min: nan, P25: nan, Median: nan, P75: nan, Max: nan,
	}
	if len(vals) == 0 {
		return st
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	st.Mean = mean
	if len(vals) > 1 {
		var ss float64
		for _, v := range vals {
			d := v - mean
			ss += d * d
		}
		st.SD = math.Sqrt(ss / float64(len(vals)-1))
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	st.Min = sorted[0]
	st.P25 = Quantile(sorted, 0.25)
	st.Median = Quantile(sorted, 0.5)
	st.P75 = Quantile(sorted, 0.75)
	st.Max = sorted[len(sorted)-1]
	return st
}

// Quantile returns the q-th quantile of sorted (ascending) using linear
// interpolation between order statistics at position q*(n-1). This matches
// the default quantile type of most statistics environments and keeps test
// fixtures reproducible. Returns NaN for an empty slice.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Render formats the summary as a plain-text table: one row per statistic,
// one column per variable, headed by the item counts and scales from the
// result metadata. Undefined statistics render as "-".
func (s *Summary) Render() string {
	b := &strings.Builder{}
	b.WriteString("PERS score summary\n")
	fmt.Fprintf(b, "items: %d requested, %d used, %d missing\n",
		len(s.ItemsRequested), len(s.ItemsUsed), len(s.ItemsMissing))
	fmt.Fprintf(b, "scale: [%g, %g] -> [%g, %g]\n\n",
		s.ScaleFrom.Lo, s.ScaleFrom.Hi, s.ScaleTo.Lo, s.ScaleTo.Hi)

	fmt.Fprintf(b, "%-8s", "")
	for _, v := range s.Variables {
		fmt.Fprintf(b, "%16s", v.Variable)
	}
	b.WriteByte('\n')

	rows := []struct {
		name string
		pick func(VariableStats) float64
	}{
		{"n", func(v VariableStats) float64 { return float64(v.N) }},
		{"mean", func(v VariableStats) float64 { return v.Mean }},
		{"sd", func(v VariableStats) float64 { return v.SD }},
		{"min", func(v VariableStats) float64 { return v.Min }},
		{"p25", func(v VariableStats) float64 { return v.P25 }},
		{"median", func(v VariableStats) float64 { return v.Median }},
		{"p75", func(v VariableStats) float64 { return v.P75 }},
		{"max", func(v VariableStats) float64 { return v.Max }},
	}
	for _, r := range rows {
		fmt.Fprintf(b, "%-8s", r.name)
		for _, v := range s.Variables {
			val := r.pick(v)
			switch {
			case math.IsNaN(val):
				fmt.Fprintf(b, "%16s", "-")
			case r.name == "n":
				fmt.Fprintf(b, "%16d", int(val))
			default:
				fmt.Fprintf(b, "%16.2f", val)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
