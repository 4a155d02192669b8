package scoring

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpsych/perscore/dataset"
)

func TestSummarizeSchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		res  *Result
	}{
		{"nil result", nil},
		{"nil rows", &Result{ItemsRequested: []string{"q1"}}},
		{"no metadata", &Result{Rows: []Row{}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Summarize(c.res)
			require.Error(t, err)
			se, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, ErrorSchema, se.Code)
			assert.Contains(t, se.Message, "standardized")
		})
	}
}

func TestSummarizeScoredPopulation(t *testing.T) {
	// 50 rows: 48 with at least one answer, 2 entirely blank.
	items := DefaultItems()
	rows := make([]map[string]any, 0, 50)
	for i := 0; i < 48; i++ {
		row := map[string]any{}
		for j, item := range items {
			row[item] = 1 + (i+j)%5
		}
		rows = append(rows, row)
	}
	rows = append(rows, map[string]any{}, map[string]any{})
	tbl, err := dataset.FromMaps(items, rows)
	require.NoError(t, err)

	res, err := NewScorer(DefaultOptions()).Score(tbl)
	require.NoError(t, err)
	sum, err := Summarize(res)
	require.NoError(t, err)

	require.Len(t, sum.Variables, 3)
	assert.Equal(t, "raw_total", sum.Variables[0].Variable)
	assert.Equal(t, "items_answered", sum.Variables[1].Variable)
	assert.Equal(t, "standardized", sum.Variables[2].Variable)

	for _, v := range sum.Variables {
		assert.LessOrEqual(t, v.N, 50)
	}
	assert.Equal(t, 50, sum.Variables[0].N)
	assert.Equal(t, 50, sum.Variables[1].N)
	assert.Equal(t, 48, sum.Variables[2].N)

	std := sum.Variables[2]
	assert.False(t, math.IsNaN(std.Mean))
	assert.GreaterOrEqual(t, std.Min, 0.0)
	assert.LessOrEqual(t, std.Max, 100.0)
	assert.LessOrEqual(t, std.P25, std.Median)
	assert.LessOrEqual(t, std.Median, std.P75)
}

func TestDescribeKnownValues(t *testing.T) {
	st := describe("x", []float64{1, 2, 3, 4})
	assert.Equal(t, 4, st.N)
	assert.InDelta(t, 2.5, st.Mean, 1e-12)
	assert.InDelta(t, 1.2909944487358056, st.SD, 1e-12) // sample sd
	assert.InDelta(t, 1, st.Min, 1e-12)
	assert.InDelta(t, 1.75, st.P25, 1e-12)
	assert.InDelta(t, 2.5, st.Median, 1e-12)
	assert.InDelta(t, 3.25, st.P75, 1e-12)
	assert.InDelta(t, 4, st.Max, 1e-12)
}

func TestDescribeDegenerate(t *testing.T) {
	empty := describe("x", nil)
	assert.Equal(t, 0, empty.N)
	for _, v := range []float64{empty.Mean, empty.SD, empty.Min, empty.P25, empty.Median, empty.P75, empty.Max} {
		assert.True(t, math.IsNaN(v))
	}

	single := describe("x", []float64{7})
	assert.Equal(t, 1, single.N)
	assert.InDelta(t, 7, single.Mean, 1e-12)
	assert.True(t, math.IsNaN(single.SD))
	assert.InDelta(t, 7, single.Median, 1e-12)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.5, 30},
		{0.75, 40},
		{1, 50},
		{0.1, 14},
		{-0.5, 10},
		{1.5, 50},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Quantile(sorted, c.q), 1e-12, "q=%v", c.q)
	}
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestSummaryRender(t *testing.T) {
	items := DefaultItems()
	tbl, err := dataset.FromMaps(items[:24], []map[string]any{{"comm_1": 3}})
	require.NoError(t, err)

	opt := DefaultOptions()
	opt.Strict = false
	res, err := NewScorer(opt).Score(tbl)
	require.NoError(t, err)
	sum, err := Summarize(res)
	require.NoError(t, err)

	out := sum.Render()
	assert.Contains(t, out, "27 requested, 24 used, 3 missing")
	assert.Contains(t, out, "scale: [1, 5] -> [0, 4]")
	assert.Contains(t, out, "raw_total")
	assert.Contains(t, out, "standardized")
	assert.Contains(t, out, fmt.Sprintf("%16d", 1)) // n row
	assert.Contains(t, out, "median")
}
