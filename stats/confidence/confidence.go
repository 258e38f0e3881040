// Package confidence estimates covariance and correlation between two
// equal-length samples together with a two-sided p-value and a confidence
// interval.
//
// The p-value tests the null hypothesis of zero correlation with Student's t
// on n-2 degrees of freedom. The interval comes from the Fisher z-transform
// of the Pearson coefficient; for covariance it is rescaled by the sample
// standard deviations of both inputs.
//
// Degenerate input (mismatched lengths, fewer than two samples, non-finite
// values) yields an all-NaN Estimate instead of an error. A constant series
// has no correlation: Correlation is all-NaN, while Covariance reports its
// well-defined value of 0 with a NaN p-value and NaN bounds.
package confidence

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Estimate is a point estimate with its p-value and confidence bounds.
type Estimate struct {
	Value  float64
	PValue float64
	Lower  float64
	Upper  float64
}

// Valid reports whether the estimate could be computed.
func (e Estimate) Valid() bool {
	return !math.IsNaN(e.Value)
}

// Invalid returns the all-NaN estimate used for degenerate input.
func Invalid() Estimate {
	nan := math.NaN()
	return Estimate{Value: nan, PValue: nan, Lower: nan, Upper: nan}
}

// Correlation returns Pearson's r between x and y, its p-value and the
// confidence interval at level (e.g. 0.95). A level outside (0, 1) leaves
// the bounds NaN.
func Correlation(x, y []float64, level float64) Estimate {
	r, sx, sy, ok := moments(x, y)
	if !ok || sx == 0 || sy == 0 {
		return Invalid()
	}

	lo, hi := fisherBounds(r, len(x), level)

	return Estimate{
		Value:  r,
		PValue: pValue(r, len(x)),
		Lower:  lo,
		Upper:  hi,
	}
}

// Covariance returns the sample covariance (n-1 denominator) of x and y,
// the p-value of the matching correlation test and the correlation
// interval scaled by the sample standard deviations of x and y.
// When either series is constant only Value is defined.
func Covariance(x, y []float64, level float64) Estimate {
	r, sx, sy, ok := moments(x, y)
	if !ok {
		return Invalid()
	}

	if sx == 0 || sy == 0 {
		nan := math.NaN()
		return Estimate{Value: stat.Covariance(x, y, nil), PValue: nan, Lower: nan, Upper: nan}
	}

	lo, hi := fisherBounds(r, len(x), level)
	scale := sx * sy

	return Estimate{
		Value:  stat.Covariance(x, y, nil),
		PValue: pValue(r, len(x)),
		Lower:  lo * scale,
		Upper:  hi * scale,
	}
}

// moments returns r and both sample standard deviations, or ok=false when
// the pair cannot support any estimate. r is 0 when either deviation is 0.
func moments(x, y []float64) (r, sx, sy float64, ok bool) {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0, 0, 0, false
	}

	if !isFinite(vecmath.Sum(x)) || !isFinite(vecmath.Sum(y)) {
		return 0, 0, 0, false
	}

	_, sx = stat.MeanStdDev(x, nil)
	_, sy = stat.MeanStdDev(y, nil)

	if sx == 0 || sy == 0 {
		return 0, sx, sy, true
	}

	r = stat.Correlation(x, y, nil)
	// Rounding can push |r| marginally past 1.
	r = math.Max(-1, math.Min(1, r))

	return r, sx, sy, true
}

// pValue is the two-sided p-value for H0: rho = 0.
func pValue(r float64, n int) float64 {
	if n <= 2 {
		return 1
	}

	if math.Abs(r) == 1 {
		return 0
	}

	df := float64(n - 2)
	t := r * math.Sqrt(df/((1-r)*(1+r)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return math.Min(1, 2*dist.Survival(math.Abs(t)))
}

// fisherBounds returns the confidence interval for r via the Fisher
// z-transform. With three or fewer samples the interval is [-1, 1].
func fisherBounds(r float64, n int, level float64) (lo, hi float64) {
	if !(level > 0 && level < 1) {
		return math.NaN(), math.NaN()
	}

	if n <= 3 {
		return -1, 1
	}

	z := math.Atanh(r)
	se := 1 / math.Sqrt(float64(n-3))
	crit := distuv.UnitNormal.Quantile(0.5 + level/2)

	return math.Tanh(z - crit*se), math.Tanh(z + crit*se)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
