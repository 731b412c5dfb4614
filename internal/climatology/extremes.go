package climatology

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// returnPeriods are the return periods (years) tabulated by the
// extreme-value analysis.
var returnPeriods = []int{2, 5, 10, 20, 50, 100}

// eulerMascheroni appears in the Gumbel mean: E[X] = mu + gamma*beta.
const eulerMascheroni = 0.5772156649015329

// GumbelParams are the fitted parameters of the Type-I extreme value
// distribution: location mu and scale beta > 0.
type GumbelParams struct {
	Location float64 `json:"location"`
	Scale    float64 `json:"scale"`
}

// GoodnessOfFit is the Kolmogorov-Smirnov verdict on the fitted
// distribution. FitQuality is "good" when the KS p-value exceeds 0.05,
// "poor" otherwise, and "unknown" when the test could not be computed.
type GoodnessOfFit struct {
	KSStatistic float64 `json:"ks_statistic"`
	KSPValue    float64 `json:"ks_p_value"`
	FitQuality  string  `json:"fit_quality"`
}

// ExtremeValueResult holds the Gumbel fit, the return-value table keyed by
// return period ("2_year" through "100_year"), and the goodness-of-fit
// verdict. When fitting fails the whole sub-result degrades to just Err.
type ExtremeValueResult struct {
	DistributionParams *GumbelParams      `json:"distribution_params,omitempty"`
	ReturnValues       map[string]float64 `json:"return_values,omitempty"`
	GoodnessOfFit      *GoodnessOfFit     `json:"goodness_of_fit,omitempty"`
	Err                string             `json:"error,omitempty"`
}

// ExtremeValues fits a Gumbel distribution to the entire cleaned sample and
// tabulates return values x_T = mu - beta*ln(-ln(1 - 1/T)).
//
// The fit deliberately uses the full annual sample rather than block maxima;
// see the package documentation for why this approximation is kept.
// Parameters come from the method of moments (beta = s*sqrt(6)/pi,
// mu = mean - gamma*beta, with s the sample standard deviation), a
// closed-form standard estimator chosen so the result is deterministic.
func (s Sample) ExtremeValues() ExtremeValueResult {
	if len(s.values) < 2 {
		return ExtremeValueResult{Err: "need at least 2 observations to fit a distribution"}
	}

	basic := s.BasicStats()
	sd := s.sampleStdDev()
	beta := sd * math.Sqrt(6) / math.Pi
	if !(beta > 0) || math.IsInf(beta, 0) {
		return ExtremeValueResult{Err: fmt.Sprintf("degenerate scale estimate %g: sample has no spread", beta)}
	}
	mu := basic.Mean - eulerMascheroni*beta

	dist := distuv.GumbelRight{Mu: mu, Beta: beta}

	returnValues := make(map[string]float64, len(returnPeriods))
	for _, period := range returnPeriods {
		p := 1 - 1/float64(period)
		returnValues[fmt.Sprintf("%d_year", period)] = dist.Quantile(p)
	}

	return ExtremeValueResult{
		DistributionParams: &GumbelParams{Location: mu, Scale: beta},
		ReturnValues:       returnValues,
		GoodnessOfFit:      s.gumbelGoodnessOfFit(dist),
	}
}

// gumbelGoodnessOfFit runs a one-sample Kolmogorov-Smirnov test of the
// sample against the fitted CDF.
func (s Sample) gumbelGoodnessOfFit(dist distuv.GumbelRight) *GoodnessOfFit {
	n := len(s.values)
	sorted := s.Values()
	sort.Float64s(sorted)

	// D = sup |F_empirical - F_fitted|, checked on both sides of each step.
	var d float64
	for i, x := range sorted {
		cdf := dist.CDF(x)
		upper := float64(i+1)/float64(n) - cdf
		lower := cdf - float64(i)/float64(n)
		d = math.Max(d, math.Max(upper, lower))
	}

	p := ksPValue(d, n)
	if math.IsNaN(p) {
		return &GoodnessOfFit{FitQuality: "unknown"}
	}

	quality := "poor"
	if p > 0.05 {
		quality = "good"
	}
	return &GoodnessOfFit{KSStatistic: d, KSPValue: p, FitQuality: quality}
}

// ksPValue approximates the two-sided p-value of the one-sample KS statistic
// using the asymptotic Kolmogorov series with the standard small-sample
// correction lambda = (sqrt(n) + 0.12 + 0.11/sqrt(n)) * D.
func ksPValue(d float64, n int) float64 {
	if n <= 0 || math.IsNaN(d) {
		return math.NaN()
	}
	if d <= 0 {
		return 1
	}

	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d

	sum := 0.0
	for j := 1; j <= 100; j++ {
		term := math.Exp(-2 * float64(j*j) * lambda * lambda)
		if j%2 == 1 {
			sum += term
		} else {
			sum -= term
		}
		if term < 1e-10 {
			break
		}
	}

	p := 2 * sum
	return math.Min(1, math.Max(0, p))
}
