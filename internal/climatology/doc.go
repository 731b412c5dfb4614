// Package climatology estimates the probability distribution of a single
// weather variable from a short annual time series: one observation per year,
// all taken on the same calendar day at the same location.
//
// # Sample Shape
//
// The input is an ordered slice of float64, chronological, one value per
// year. Non-finite entries (NaN, ±Inf) represent missing years and are
// dropped during construction. Samples with fewer than 10 retained values
// are flagged low-confidence but analyzed normally.
//
// # Statistical Conventions
//
// Percentiles:
//
//	Computed at fixed ranks {10, 25, 50, 75, 90, 95, 99} with linear
//	interpolation between order statistics: rank p maps to fractional
//	position p/100 * (n-1) in the sorted sample. This makes the percentile
//	table monotone non-decreasing for any sample.
//
// Threshold probabilities:
//
//	probability(t, exceeds) counts observations strictly above t;
//	probability(t, below) counts strictly below. Ties at the threshold are
//	excluded in both directions. The comfortable probability uses the
//	closed interval [min, max]. Return period is 1/probability, +Inf when
//	the probability is zero.
//
// Trend:
//
//	Ordinary least squares of value against the 0-based year index, with
//	the standard two-sided t-test on the slope (n-2 degrees of freedom) at
//	a fixed 0.05 level. A zero slope reports direction "decreasing"; this
//	tie-break is kept for compatibility with downstream consumers.
//
// Extreme values:
//
//	A Gumbel (Type-I extreme value) distribution is fitted to the entire
//	cleaned sample, not to block maxima extracted from finer-grained data.
//	Known approximation: fitting an EVT distribution to non-maxima data
//	understates tail behavior. Parameters come from the closed-form
//	method-of-moments estimator so that identical samples always produce
//	identical fits. Goodness of fit is a one-sample Kolmogorov-Smirnov
//	test against the fitted CDF.
//
// Risk category:
//
//	The coefficient of variation (population std dev over |mean|) maps to
//	Low / Moderate / High / Very High at breakpoints 0.1, 0.3, 0.5, with
//	boundary values landing in the higher band. This is a coarse
//	variability signal, not a calibrated risk score.
//
// # Failure Policy
//
// Construction fails only when no finite observation survives cleaning.
// Every other failure is local: a degenerate trend or extreme-value fit
// degrades to a reduced record carrying an error note, and the rest of the
// assessment is still computed. The package performs no I/O, reads no
// clock, and holds no mutable state; identical inputs yield bit-identical
// assessments.
package climatology
