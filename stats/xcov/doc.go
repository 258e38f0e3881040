// Package xcov estimates the cross-covariance between input and output
// signals pooled over repeated trials.
//
// When every output trial is the corresponding input passed through the same
// causal linear filter, the pooled cross-covariance over lags approaches the
// shape of that filter's impulse response as trials accumulate. For each lag
// the lag-shifted windows of all trials long enough to contain it are
// concatenated and handed to [confidence.Covariance], which also provides a
// p-value and a confidence interval.
//
// Lag conventions:
//
//   - lag > 0 (causal, x leads y): x[:n-lag] is paired with y[lag:]
//   - lag < 0 (acausal, y leads x): x[-lag:] is paired with y[:n+lag]
//   - lag = 0: trials are used unchanged
//
// Results cover lags [-backward, forward) in ascending order, so lag 0 sits
// at index backward.
//
// # Usage
//
//	res, err := xcov.MultiWithConfidence(inputs, outputs, 5, 20,
//		xcov.WithConfidence(0.99),
//		xcov.WithNormed(true),
//	)
//	for i, c := range res.Cov {
//		fmt.Printf("lag %d: %.3f [%.3f, %.3f]\n", res.Lag(i), c, res.Lower[i], res.Upper[i])
//	}
//
// A lag that no trial is long enough to support reports NaN in all four
// outputs; the remaining lags are unaffected. A lag whose pooled input or
// output window is flat reports a covariance of 0 with NaN p-value and
// bounds.
package xcov
