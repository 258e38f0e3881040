package segment

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Segment describes one above-threshold event and the gap around it.
//
// Onset and Offset bound the samples >= threshold (Offset exclusive).
// Start is where the previous event ended and End is where the next one
// begins, so [Start, End) is the event's isolation window.
type Segment[T Number] struct {
	Start  T
	Onset  T
	Peak   T
	Offset T
	End    T
}

// Row returns the fields in table order: start, onset, peak, offset, end.
func (s Segment[T]) Row() [5]T {
	return [5]T{s.Start, s.Onset, s.Peak, s.Offset, s.End}
}

// Active returns the above-threshold interval [Onset, Offset).
func (s Segment[T]) Active() (onset, offset T) {
	return s.Onset, s.Offset
}

// Window returns the isolation window [Start, End).
func (s Segment[T]) Window() (start, end T) {
	return s.Start, s.End
}

// ByThreshold segments x into events where x >= threshold.
//
// For every event it reports the sample of the maximum (first occurrence on
// ties) and, in a parallel slice, the maximum itself. The first event starts
// at 0 and the last ends at len(x). NaN samples are never above threshold.
// A signal that never reaches threshold yields empty slices.
func ByThreshold(x []float64, threshold float64) ([]Segment[int], []float64) {
	above := make([]bool, len(x))
	for i, v := range x {
		above[i] = v >= threshold
	}

	onsets, offsets := Runs(above)
	n := len(onsets)

	segs := make([]Segment[int], n)
	peaks := make([]float64, n)

	for i := range n {
		on, off := onsets[i], offsets[i]
		peak := on + floats.MaxIdx(x[on:off])

		start := 0
		if i > 0 {
			start = offsets[i-1]
		}

		end := len(x)
		if i < n-1 {
			end = onsets[i+1]
		}

		segs[i] = Segment[int]{Start: start, Onset: on, Peak: peak, Offset: off, End: end}
		peaks[i] = x[peak]
	}

	return segs, peaks
}

// ByThresholdAt is like ByThreshold but maps every position through t.
// Ends may equal len(x), so t must hold at least len(x)+1 entries.
// Peak values stay in the signal's domain.
func ByThresholdAt[T Number](x []float64, threshold float64, t []T) ([]Segment[T], []float64, error) {
	if len(t) < len(x)+1 {
		return nil, nil, fmt.Errorf("%w: %d < %d", ErrIndexLength, len(t), len(x)+1)
	}

	segs, peaks := ByThreshold(x, threshold)

	mapped := make([]Segment[T], len(segs))
	for i, s := range segs {
		mapped[i] = Segment[T]{
			Start:  t[s.Start],
			Onset:  t[s.Onset],
			Peak:   t[s.Peak],
			Offset: t[s.Offset],
			End:    t[s.End],
		}
	}

	return mapped, peaks, nil
}
