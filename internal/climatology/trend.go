package climatology

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Trend significance is tested at a fixed level; this is a convention of the
// output record, not a tunable.
const trendAlpha = 0.05

// TrendResult reports an ordinary least-squares regression of the
// observations against their 0-based year index. Degenerate inputs populate
// the reduced record {slope 0, p_value 1, significant false, direction
// "no trend"} with Err describing the failure.
type TrendResult struct {
	Slope         float64 `json:"slope"`
	Intercept     float64 `json:"intercept"`
	RValue        float64 `json:"r_value"`
	PValue        float64 `json:"p_value"`
	StdErr        float64 `json:"std_err"`
	Significant   bool    `json:"significant"`
	Direction     string  `json:"direction"`
	TrendStrength float64 `json:"trend_strength"`
	Err           string  `json:"error,omitempty"`
}

// DetectTrend regresses the sample values on their chronological index and
// tests the null hypothesis "slope = 0" with the standard two-sided t-test
// (n-2 degrees of freedom).
//
// A slope of exactly zero reports direction "decreasing"; kept as-is for
// behavioral compatibility.
func (s Sample) DetectTrend() TrendResult {
	n := len(s.values)
	if n < 3 {
		return degenerateTrend("need at least 3 observations for a slope test")
	}

	// Accumulate centered sums; x is the 0-based year index.
	xbar := float64(n-1) / 2
	var ybar float64
	for _, v := range s.values {
		ybar += v
	}
	ybar /= float64(n)

	var sxx, syy, sxy float64
	for i, v := range s.values {
		dx := float64(i) - xbar
		dy := v - ybar
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}

	if syy == 0 {
		return degenerateTrend("sample has zero variance")
	}

	slope := sxy / sxx
	intercept := ybar - slope*xbar
	r := sxy / math.Sqrt(sxx*syy)

	df := float64(n - 2)
	// Residual variance via 1-r², then the slope's standard error.
	residVar := syy * (1 - r*r) / df
	if residVar < 0 {
		residVar = 0
	}
	stdErr := math.Sqrt(residVar / sxx)

	var pValue float64
	switch {
	case stdErr == 0:
		// Perfect linear fit: the t statistic diverges.
		pValue = 0
	default:
		t := slope / stdErr
		tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		pValue = 2 * (1 - tDist.CDF(math.Abs(t)))
	}

	direction := "decreasing"
	if slope > 0 {
		direction = "increasing"
	}

	return TrendResult{
		Slope:         slope,
		Intercept:     intercept,
		RValue:        r,
		PValue:        pValue,
		StdErr:        stdErr,
		Significant:   pValue < trendAlpha,
		Direction:     direction,
		TrendStrength: math.Abs(r),
	}
}

func degenerateTrend(reason string) TrendResult {
	return TrendResult{
		Slope:       0,
		PValue:      1,
		Significant: false,
		Direction:   "no trend",
		Err:         reason,
	}
}
