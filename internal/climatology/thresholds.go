package climatology

// ComfortRange is a closed interval of values considered comfortable.
type ComfortRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ThresholdSet configures the optional threshold-based probabilities of an
// assessment. Entries are independent; any subset may be nil, and absent
// entries produce no corresponding fields in the output.
type ThresholdSet struct {
	Hot         *float64      `json:"hot,omitempty"`         // exceedance threshold
	Cold        *float64      `json:"cold,omitempty"`        // below threshold
	Comfortable *ComfortRange `json:"comfortable,omitempty"` // closed [min, max] range
}

// IsZero reports whether no threshold entry is configured.
func (t ThresholdSet) IsZero() bool {
	return t.Hot == nil && t.Cold == nil && t.Comfortable == nil
}
