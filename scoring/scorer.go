// Package scoring computes Patients Engaged in Research Scale (PERS) scores
// over a dataset.Table and descriptive statistics over the scored result.
package scoring

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/openpsych/perscore/dataset"
)

// Status is the validity flag attached to every scored row.
type Status string

const (
	StatusValid       Status = "Valid"
	StatusTooFewItems Status = "Too few items"
)

// Row holds the scores for a single respondent.
type Row struct {
	// RawTotal sums the rescaled values of the answered items. A row with no
	// answered items has RawTotal 0 by convention.
	RawTotal float64 `json:"raw_total"`

	// ItemsAnswered counts the items that coerced to a numeric value.
	ItemsAnswered int `json:"items_answered"`

	// Standardized is the percentage of the maximum score achievable over
	// the items actually answered. Nil when no items were answered.
	Standardized *float64 `json:"standardized,omitempty"`

	ResponseStatus Status `json:"response_status"`
}

// Result is the scored table plus the metadata describing how it was
// produced. It is created in one piece by Score and must not be mutated.
type Result struct {
	Rows []Row `json:"rows"`

	// ItemsUsed and ItemsMissing partition ItemsRequested: used items were
	// found in the data, missing ones were not. ItemsUsed preserves the
	// requested order.
	ItemsRequested []string `json:"items_requested"`
	ItemsUsed      []string `json:"items_used"`
	ItemsMissing   []string `json:"items_missing,omitempty"`
	ReverseItems   []string `json:"reverse_items,omitempty"`

	ScaleFrom Range `json:"scale_from"`
	ScaleTo   Range `json:"scale_to"`

	// Warnings carries non-fatal conditions observed while scoring, at
	// present only the missing-items message emitted in non-strict mode.
	Warnings []string `json:"warnings,omitempty"`
}

// Scorer scores tables against a fixed configuration. A Scorer is stateless
// and safe for concurrent use.
type Scorer struct {
	opt Options
}

func NewScorer(opt Options) *Scorer {
	if opt.Items == nil {
		opt.Items = DefaultItems()
	}
	return &Scorer{opt: opt}
}

// Score computes one Row per table row, in table order. It fails with a
// config error for a malformed scale configuration and with a data error when
// requested items are missing in strict mode or no requested item exists in
// the table at all. Scoring is all-or-nothing: on error no partial result is
// returned. Per-cell coercion failures are not errors; they become missing
// values excluded from the sums.
func (s *Scorer) Score(t *dataset.Table) (*Result, error) {
	if err := s.opt.validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NewDataError("no data to score")
	}

	requested := dedupe(s.opt.Items)
	used := make([]string, 0, len(requested))
	var missing []string
	for _, item := range requested {
		if t.HasColumn(item) {
			used = append(used, item)
		} else {
			missing = append(missing, item)
		}
	}

	res := &Result{
		ItemsRequested: requested,
		ItemsUsed:      used,
		ItemsMissing:   missing,
		ReverseItems:   append([]string(nil), s.opt.ReverseItems...),
		ScaleFrom:      s.opt.ScaleFrom,
		ScaleTo:        s.opt.ScaleTo,
	}

	if len(missing) > 0 {
		msg := fmt.Sprintf("items missing from data: %s", strings.Join(missing, ", "))
		if s.opt.Strict {
			return nil, NewDataError(msg)
		}
		log.Warn().Strs("items", missing).Msg("scoring on item subset")
		res.Warnings = append(res.Warnings, msg)
	}
	if len(used) == 0 {
		return nil, NewDataError("none of the requested items are present in the data")
	}

	reverse := make(map[string]bool, len(s.opt.ReverseItems))
	for _, item := range s.opt.ReverseItems {
		reverse[item] = true
	}

	width := s.opt.ScaleTo.Width()
	res.Rows = make([]Row, t.NumRows())
	for i := range res.Rows {
		var total float64
		answered := 0
		for _, item := range used {
			cell, _ := t.Cell(i, item)
			x, ok := dataset.Float(cell)
			if !ok {
				continue
			}
			if reverse[item] {
				x = s.opt.ScaleFrom.Reflect(x)
			}
			total += s.opt.ScaleFrom.Rescale(x, s.opt.ScaleTo)
			answered++
		}
		row := Row{
			RawTotal:       total,
			ItemsAnswered:  answered,
			ResponseStatus: StatusValid,
		}
		if answered > 0 {
			std := total / (float64(answered) * width) * 100
			row.Standardized = &std
		}
		if answered < s.opt.MinItemsRequired {
			row.ResponseStatus = StatusTooFewItems
		}
		res.Rows[i] = row
	}
	return res, nil
}

// dedupe drops repeated names, keeping first occurrences in order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
