package climatology

import "math"

// Direction selects which tail a threshold probability counts.
type Direction string

const (
	// Exceeds counts observations strictly above the threshold.
	Exceeds Direction = "exceeds"
	// Below counts observations strictly below the threshold.
	Below Direction = "below"
)

// Probability returns the fraction of observations strictly beyond the
// threshold in the given direction. Observations equal to the threshold are
// excluded from the count in both directions.
func (s Sample) Probability(threshold float64, dir Direction) float64 {
	count := 0
	for _, v := range s.values {
		switch dir {
		case Exceeds:
			if v > threshold {
				count++
			}
		case Below:
			if v < threshold {
				count++
			}
		}
	}
	return float64(count) / float64(len(s.values))
}

// ComfortableProbability returns the fraction of observations inside the
// closed interval [min, max].
func (s Sample) ComfortableProbability(min, max float64) float64 {
	count := 0
	for _, v := range s.values {
		if v >= min && v <= max {
			count++
		}
	}
	return float64(count) / float64(len(s.values))
}

// ReturnPeriod returns the expected number of years between events beyond
// the threshold: the reciprocal of the threshold probability, +Inf when the
// probability is zero.
func (s Sample) ReturnPeriod(threshold float64, dir Direction) float64 {
	p := s.Probability(threshold, dir)
	if p == 0 {
		return math.Inf(1)
	}
	return 1 / p
}
