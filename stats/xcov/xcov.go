package xcov

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-timeseries/stats/confidence"
)

// Errors returned by MultiWithConfidence.
var (
	ErrShapeMismatch     = errors.New("xcov: input and output trials differ in shape")
	ErrNegativeLag       = errors.New("xcov: lag counts must be non-negative")
	ErrInvalidConfidence = errors.New("xcov: confidence must be in (0, 1)")
)

// Result holds one estimate per lag in [-Backward, Forward).
type Result struct {
	Backward int
	Forward  int

	Cov    []float64 // covariance (or normalised covariance)
	PValue []float64 // two-sided p-value for zero correlation
	Lower  []float64 // lower confidence bound on Cov
	Upper  []float64 // upper confidence bound on Cov
}

// Len returns the number of lags.
func (r Result) Len() int {
	return r.Backward + r.Forward
}

// Lag returns the lag reported at index i.
func (r Result) Lag(i int) int {
	return i - r.Backward
}

// Index returns the index of lag, or false when lag is out of range.
func (r Result) Index(lag int) (int, bool) {
	i := lag + r.Backward
	if i < 0 || i >= r.Len() {
		return 0, false
	}
	return i, true
}

// MultiWithConfidence computes the pooled cross-covariance of the paired
// trials xs[i], ys[i] for every lag in [-backward, forward).
func MultiWithConfidence(xs, ys [][]float64, backward, forward int, opts ...Option) (Result, error) {
	return MultiWithConfidenceContext(context.Background(), xs, ys, backward, forward, opts...)
}

// MultiWithConfidenceContext is MultiWithConfidence with cancellation.
// Lags are evaluated concurrently; the result does not depend on the number
// of workers.
func MultiWithConfidenceContext(ctx context.Context, xs, ys [][]float64, backward, forward int, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	if err := validate(xs, ys, backward, forward, cfg); err != nil {
		return Result{}, err
	}

	n := backward + forward
	res := Result{
		Backward: backward,
		Forward:  forward,
		Cov:      make([]float64, n),
		PValue:   make([]float64, n),
		Lower:    make([]float64, n),
		Upper:    make([]float64, n),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			px, py := pool(xs, ys, res.Lag(i))
			e := confidence.Covariance(px, py, cfg.Confidence)

			res.Cov[i] = e.Value
			res.PValue[i] = e.PValue
			res.Lower[i] = e.Lower
			res.Upper[i] = e.Upper

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("xcov: %w", err)
	}

	if cfg.Normed {
		scale := 1 / NormFactor(xs, ys)
		vecmath.ScaleBlockInPlace(res.Cov, scale)
		vecmath.ScaleBlockInPlace(res.Lower, scale)
		vecmath.ScaleBlockInPlace(res.Upper, scale)
	}

	return res, nil
}

// NormFactor returns sqrt(var(X) * var(Y)) where X and Y are all trials of
// xs and ys concatenated, unshifted. It is the divisor applied by WithNormed.
func NormFactor(xs, ys [][]float64) float64 {
	varX := stat.Variance(slices.Concat(xs...), nil)
	varY := stat.Variance(slices.Concat(ys...), nil)

	return math.Sqrt(varX * varY)
}

func validate(xs, ys [][]float64, backward, forward int, cfg Config) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d input trials, %d output trials", ErrShapeMismatch, len(xs), len(ys))
	}

	for i := range xs {
		if len(xs[i]) != len(ys[i]) {
			return fmt.Errorf("%w: trial %d has %d input and %d output samples",
				ErrShapeMismatch, i, len(xs[i]), len(ys[i]))
		}
	}

	if backward < 0 || forward < 0 {
		return fmt.Errorf("%w: backward=%d forward=%d", ErrNegativeLag, backward, forward)
	}

	if !(cfg.Confidence > 0 && cfg.Confidence < 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidConfidence, cfg.Confidence)
	}

	return nil
}

// pool concatenates the lag-aligned windows of every trial longer than
// |lag|. Shorter trials cannot contribute a sample pair and are skipped.
func pool(xs, ys [][]float64, lag int) (px, py []float64) {
	shift := lag
	if shift < 0 {
		shift = -shift
	}

	total := 0
	for _, x := range xs {
		if len(x) > shift {
			total += len(x) - shift
		}
	}

	px = make([]float64, 0, total)
	py = make([]float64, 0, total)

	for i, x := range xs {
		y := ys[i]
		n := len(x)

		if n <= shift {
			continue
		}

		switch {
		case lag < 0:
			px = append(px, x[shift:]...)
			py = append(py, y[:n-shift]...)
		default:
			px = append(px, x[:n-shift]...)
			py = append(py, y[shift:]...)
		}
	}

	return px, py
}
