package segment

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrIndexLength is returned when a time index is too short for the signal.
var ErrIndexLength = errors.New("segment: time index shorter than signal")

// Number is the set of types usable as a time index.
type Number interface {
	constraints.Integer | constraints.Float
}

// Runs returns the start and end positions of every maximal run of true
// values in x. Ends are exclusive: [F F F T T F] yields starts [3], ends [5].
// Returns empty (non-nil) slices when x holds no true value.
func Runs(x []bool) (starts, ends []int) {
	starts = []int{}
	ends = []int{}

	inRun := false

	for i, v := range x {
		switch {
		case v && !inRun:
			starts = append(starts, i)
			inRun = true
		case !v && inRun:
			ends = append(ends, i)
			inRun = false
		}
	}

	if inRun {
		ends = append(ends, len(x))
	}

	return starts, ends
}

// RunsAt is like Runs but maps positions through the time index t.
// A run's start is t[s] and its end is t[e-1]+1, one past the time of the
// run's last true sample, so t needs only len(x) entries.
func RunsAt[T Number](x []bool, t []T) (starts, ends []T, err error) {
	if len(t) < len(x) {
		return nil, nil, fmt.Errorf("%w: %d < %d", ErrIndexLength, len(t), len(x))
	}

	s, e := Runs(x)
	starts = make([]T, len(s))
	ends = make([]T, len(e))

	for i := range s {
		starts[i] = t[s[i]]
		ends[i] = t[e[i]-1] + 1
	}

	return starts, ends, nil
}
