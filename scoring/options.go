package scoring

// Range is a closed numeric interval [Lo, Hi].
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Width returns Hi - Lo.
func (r Range) Width() float64 { return r.Hi - r.Lo }

// Rescale maps x linearly from r onto to. Values outside r extrapolate
// linearly; no clamping is applied.
func (r Range) Rescale(x float64, to Range) float64 {
	return to.Lo + (x-r.Lo)*to.Width()/r.Width()
}

// Reflect mirrors x within r, mapping Lo onto Hi and back. This is how
// reverse-scored items are handled before rescaling: on a 1..5 scale a raw 2
// reflects to 4.
func (r Range) Reflect(x float64) float64 { return r.Lo + r.Hi - x }

// Options configures a Scorer. Start from DefaultOptions and override the
// fields you need, or load a YAML document with LoadOptions.
type Options struct {
	// Items names the columns to score, in order. Nil means the default
	// 27-item instrument; an explicitly empty list is an error.
	Items []string `yaml:"items"`

	// ReverseItems names items reflected within ScaleFrom before rescaling.
	ReverseItems []string `yaml:"reverse_items"`

	// MinItemsRequired is the answered-items threshold below which a row is
	// flagged "Too few items". Exactly meeting the threshold is valid.
	MinItemsRequired int `yaml:"min_items_required"`

	// ScaleFrom is the response range of the raw data; must be strictly
	// increasing.
	ScaleFrom Range `yaml:"scale_from"`

	// ScaleTo is the target range after rescaling, before standardization.
	ScaleTo Range `yaml:"scale_to"`

	// Strict makes requested-but-absent items fatal. When false the scorer
	// proceeds on the intersection and records a warning instead.
	Strict bool `yaml:"strict"`
}

// DefaultOptions returns the standard PERS configuration: all 27 items on a
// 1..5 response scale rescaled to 0..4, at least 10 answered items, strict.
func DefaultOptions() Options {
	return Options{
		Items:            DefaultItems(),
		MinItemsRequired: 10,
		ScaleFrom:        Range{Lo: 1, Hi: 5},
		ScaleTo:          Range{Lo: 0, Hi: 4},
		Strict:           true,
	}
}

func (o Options) validate() error {
	if !(o.ScaleFrom.Lo < o.ScaleFrom.Hi) {
		return NewConfigError("scale_from must be increasing")
	}
	if o.ScaleTo.Width() == 0 {
		return NewConfigError("scale_to must have nonzero width")
	}
	return nil
}
