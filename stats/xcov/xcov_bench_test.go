package xcov

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-timeseries/internal/testutil"
)

func BenchmarkMultiWithConfidence(b *testing.B) {
	kernel := []float64{0, 0.5, 1, 0.25}

	for _, trials := range []int{1, 16, 64} {
		lengths := make([]int, trials)
		for i := range lengths {
			lengths[i] = 1024
		}
		xs, ys := testutil.FilteredTrials(1, kernel, lengths...)

		for _, workers := range []int{1, 8} {
			b.Run(strconv.Itoa(trials)+"x1024/w"+strconv.Itoa(workers), func(b *testing.B) {
				b.ReportAllocs()

				for range b.N {
					if _, err := MultiWithConfidence(xs, ys, 16, 32, WithWorkers(workers)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
