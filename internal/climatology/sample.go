package climatology

import (
	"errors"
	"math"
)

// ErrNoValidData is returned when a raw series contains no finite
// observations. It is fatal for that variable's analysis only; callers
// processing multiple variables should record it and continue.
var ErrNoValidData = errors.New("no valid data points provided")

// lowConfidenceYears is the sample size below which results are flagged as
// less reliable. The flag is informational; computation is unchanged.
const lowConfidenceYears = 10

// Sample is a cleaned, immutable series of per-year observations in
// chronological order.
type Sample struct {
	values []float64
}

// NewSample cleans a raw series by dropping every non-finite entry,
// preserving chronological order. It returns ErrNoValidData when nothing
// survives cleaning.
func NewSample(raw []float64) (Sample, error) {
	values := make([]float64, 0, len(raw))
	for _, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return Sample{}, ErrNoValidData
	}
	return Sample{values: values}, nil
}

// Len reports the number of retained observations.
func (s Sample) Len() int { return len(s.values) }

// Values returns a copy of the retained observations. The internal slice is
// never exposed, keeping the sample immutable after construction.
func (s Sample) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// LowConfidence reports whether the sample is too short for reliable
// estimates (fewer than 10 years).
func (s Sample) LowConfidence() bool { return len(s.values) < lowConfidenceYears }
