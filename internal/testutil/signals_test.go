package testutil

import (
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestPulses(t *testing.T) {
	got := Pulses(8, 2, [2]int{1, 3}, [2]int{6, 12})
	want := []float64{0, 2, 2, 0, 0, 0, 2, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pulses[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCausalFilterImpulse(t *testing.T) {
	x := []float64{0, 1, 0, 0, 0}
	kernel := []float64{0.5, 0.25, 0.125}

	got := CausalFilter(x, kernel)
	want := []float64{0, 0.5, 0.25, 0.125, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("y[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFilteredTrials(t *testing.T) {
	xs, ys := FilteredTrials(7, []float64{1}, 4, 9)
	if len(xs) != 2 || len(ys) != 2 {
		t.Fatalf("got %d/%d trials, want 2", len(xs), len(ys))
	}
	for i, n := range []int{4, 9} {
		if len(xs[i]) != n || len(ys[i]) != n {
			t.Fatalf("trial %d: lengths %d/%d, want %d", i, len(xs[i]), len(ys[i]), n)
		}
		for j := range xs[i] {
			if xs[i][j] != ys[i][j] {
				t.Fatalf("identity kernel changed sample %d of trial %d", j, i)
			}
		}
	}
}
