package sm2

import (
	"math"
	"testing"
)

func TestNextFailure(t *testing.T) {
	now := int64(1_700_000_000_000)
	state := State{EaseFactor: 2.2, Interval: 12, Repetitions: 4}

	for quality := 0; quality < PassThreshold; quality++ {
		r := Next(quality, state, now)
		if r.Repetitions != 0 {
			t.Errorf("quality %d: expected repetitions 0, got %d", quality, r.Repetitions)
		}
		if r.Interval != 1 {
			t.Errorf("quality %d: expected interval 1, got %d", quality, r.Interval)
		}
		if r.EaseFactor != state.EaseFactor {
			t.Errorf("quality %d: ease factor changed from %.2f to %.2f", quality, state.EaseFactor, r.EaseFactor)
		}
		if r.NextReviewDate != now+dayMillis {
			t.Errorf("quality %d: expected next review tomorrow, got %d", quality, r.NextReviewDate)
		}
	}
}

func TestNextPassSequence(t *testing.T) {
	// Three consecutive quality-4 reviews from the starting state.
	now := int64(1_700_000_000_000)
	state := State{EaseFactor: 2.5, Interval: 0, Repetitions: 0}

	r1 := Next(4, state, now)
	if r1.Interval != 1 || r1.Repetitions != 1 {
		t.Fatalf("first pass: got interval %d reps %d, want 1/1", r1.Interval, r1.Repetitions)
	}

	r2 := Next(4, State{EaseFactor: r1.EaseFactor, Interval: r1.Interval, Repetitions: r1.Repetitions}, now)
	if r2.Interval != 6 || r2.Repetitions != 2 {
		t.Fatalf("second pass: got interval %d reps %d, want 6/2", r2.Interval, r2.Repetitions)
	}

	r3 := Next(4, State{EaseFactor: r2.EaseFactor, Interval: r2.Interval, Repetitions: r2.Repetitions}, now)
	want := int(math.Round(6 * r3.EaseFactor))
	if r3.Interval != want {
		t.Errorf("third pass: got interval %d, want round(6*%.4f)=%d", r3.Interval, r3.EaseFactor, want)
	}
	if r3.Repetitions != 3 {
		t.Errorf("third pass: got repetitions %d, want 3", r3.Repetitions)
	}
}

func TestEaseFactorAdjustment(t *testing.T) {
	now := int64(0)
	testCases := []struct {
		name    string
		quality int
		ease    float64
		want    float64
	}{
		{"quality 5 raises ease", 5, 2.5, 2.6},
		{"quality 4 keeps ease", 4, 2.5, 2.5},
		{"quality 3 lowers ease", 3, 2.5, 2.36},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Next(tc.quality, State{EaseFactor: tc.ease, Interval: 1, Repetitions: 1}, now)
			if math.Abs(r.EaseFactor-tc.want) > 1e-9 {
				t.Errorf("got ease %.4f, want %.4f", r.EaseFactor, tc.want)
			}
		})
	}
}

func TestEaseFactorFloor(t *testing.T) {
	now := int64(0)
	state := State{EaseFactor: MinEaseFactor, Interval: 1, Repetitions: 3}

	// Repeated barely-passing reviews must never push ease below the floor.
	for i := 0; i < 10; i++ {
		r := Next(3, state, now)
		if r.EaseFactor < MinEaseFactor {
			t.Fatalf("iteration %d: ease factor %.4f dropped below %.1f", i, r.EaseFactor, MinEaseFactor)
		}
		state = State{EaseFactor: r.EaseFactor, Interval: r.Interval, Repetitions: r.Repetitions}
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		in   int
		want int
	}{
		{-3, 0},
		{0, 0},
		{3, 3},
		{5, 5},
		{9, 5},
	}
	for _, tc := range testCases {
		if got := Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
