// Package segment splits one-dimensional signals into contiguous segments.
//
// Two segmenters are provided:
//
//   - Runs: maximal runs of true values in a boolean signal, as half-open
//     [start, end) sample positions.
//   - ByThreshold: maximal intervals where a real signal is >= a threshold,
//     extended with the quiet gap around each interval and the position and
//     value of the interval's peak.
//
// Both have an *At variant that maps sample positions through a caller
// supplied time index (timestamps, frame numbers, ...).
//
// # Usage
//
//	starts, ends := segment.Runs(mask)
//	segs, peaks := segment.ByThreshold(signal, 0.5)
//	for i, s := range segs {
//		fmt.Printf("event at %d, peak %.2f, gap [%d, %d)\n", s.Onset, peaks[i], s.Start, s.End)
//	}
package segment
