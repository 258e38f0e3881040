package testutil

import (
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Pulses returns a zero signal with a rectangular pulse of the given height
// on every [start, end) pair.
func Pulses(length int, height float64, bounds ...[2]int) []float64 {
	out := make([]float64, length)
	for _, b := range bounds {
		for i := max(b[0], 0); i < b[1] && i < length; i++ {
			out[i] = height
		}
	}
	return out
}

// CausalFilter convolves x with kernel, truncated to len(x):
// y[n] = sum_k kernel[k] * x[n-k].
func CausalFilter(x, kernel []float64) []float64 {
	y := make([]float64, len(x))
	for n := range y {
		var acc float64
		for k, h := range kernel {
			if n-k < 0 {
				break
			}
			acc += h * x[n-k]
		}
		y[n] = acc
	}
	return y
}

// FilteredTrials builds one input/output pair per entry in lengths: the input
// is seeded white noise and the output is that input passed through kernel.
// Trial i uses seed+i.
func FilteredTrials(seed int64, kernel []float64, lengths ...int) (xs, ys [][]float64) {
	xs = make([][]float64, len(lengths))
	ys = make([][]float64, len(lengths))
	for i, n := range lengths {
		xs[i] = DeterministicNoise(seed+int64(i), 1.0, n)
		ys[i] = CausalFilter(xs[i], kernel)
	}
	return xs, ys
}
