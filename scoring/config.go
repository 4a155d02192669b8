package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a Range from a two-element numeric sequence,
// e.g. "scale_from: [1, 5]".
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var vals []float64
	if err := node.Decode(&vals); err != nil {
		return fmt.Errorf("range must be a numeric sequence: %w", err)
	}
	if len(vals) != 2 {
		return fmt.Errorf("range must have exactly 2 elements, got %d", len(vals))
	}
	r.Lo, r.Hi = vals[0], vals[1]
	return nil
}

// MarshalYAML renders a Range back to the two-element sequence form.
func (r Range) MarshalYAML() (any, error) {
	return []float64{r.Lo, r.Hi}, nil
}

// LoadOptions overlays a YAML document onto the default options. Keys absent
// from the document keep their defaults, so a document setting only
// "strict: false" still scores the full instrument on the standard scales.
func LoadOptions(data []byte) (Options, error) {
	opt := DefaultOptions()
	if err := yaml.Unmarshal(data, &opt); err != nil {
		return Options{}, NewConfigError(fmt.Sprintf("parse options: %v", err))
	}
	if err := opt.validate(); err != nil {
		return Options{}, err
	}
	return opt, nil
}

// LoadOptionsFile reads path and delegates to LoadOptions.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, NewConfigError(fmt.Sprintf("read options: %v", err))
	}
	return LoadOptions(data)
}
