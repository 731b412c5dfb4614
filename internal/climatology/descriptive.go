package climatology

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// BasicStats holds the descriptive statistics of a sample. StdDev uses the
// population (n-divisor) convention, matching what the risk category and
// downstream consumers expect.
type BasicStats struct {
	Mean        float64 `json:"mean"`
	Median      float64 `json:"median"`
	StdDev      float64 `json:"std_dev"`
	MinRecorded float64 `json:"min_recorded"`
	MaxRecorded float64 `json:"max_recorded"`
	DataYears   int     `json:"data_years"`
}

// Percentiles is the fixed-rank percentile table of a sample. Values are
// monotone non-decreasing in rank by construction of the interpolation.
type Percentiles struct {
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

// BasicStats computes mean, median, population standard deviation, min, max,
// and the retained year count.
func (s Sample) BasicStats() BasicStats {
	mean, _ := stats.Mean(s.values)
	median, _ := stats.Median(s.values)
	stdDev, _ := stats.StandardDeviationPopulation(s.values)
	minV, _ := stats.Min(s.values)
	maxV, _ := stats.Max(s.values)

	return BasicStats{
		Mean:        mean,
		Median:      median,
		StdDev:      stdDev,
		MinRecorded: minV,
		MaxRecorded: maxV,
		DataYears:   len(s.values),
	}
}

// Percentiles computes the fixed percentile table.
func (s Sample) Percentiles() Percentiles {
	sorted := s.Values()
	sort.Float64s(sorted)

	return Percentiles{
		P10: percentileLinear(sorted, 10),
		P25: percentileLinear(sorted, 25),
		P50: percentileLinear(sorted, 50),
		P75: percentileLinear(sorted, 75),
		P90: percentileLinear(sorted, 90),
		P95: percentileLinear(sorted, 95),
		P99: percentileLinear(sorted, 99),
	}
}

// percentileLinear interpolates between the two order statistics nearest to
// the fractional rank position p/100 * (n-1). This is the "linear" percentile
// convention; library percentile helpers use nearest-rank variants that do
// not reproduce it.
func percentileLinear(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	if lo+1 >= n {
		return sorted[n-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// sampleStdDev is the Bessel-corrected (n-1 divisor) standard deviation,
// used by the confidence interval and the extreme-value fit.
func (s Sample) sampleStdDev() float64 {
	sd, err := stats.StandardDeviationSample(s.values)
	if err != nil {
		return math.NaN()
	}
	return sd
}
