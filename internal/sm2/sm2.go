// Package sm2 implements the SM-2 spaced-repetition scheduling function.
package sm2

import "math"

// Quality thresholds. A review with quality below PassThreshold counts
// as a failure and resets the repetition run.
const (
	MinQuality    = 0
	MaxQuality    = 5
	PassThreshold = 3
)

// MinEaseFactor is the floor below which the ease factor never drops.
const MinEaseFactor = 1.3

const dayMillis = 24 * 60 * 60 * 1000

// State is a card's scheduling state as seen by the algorithm.
type State struct {
	EaseFactor  float64
	Interval    int // days; 0 = unscheduled
	Repetitions int // consecutive successful reviews
}

// Result is the state after applying one review.
type Result struct {
	EaseFactor     float64
	Interval       int
	Repetitions    int
	NextReviewDate int64 // epoch millis
}

// Next applies one review of the given quality to the state. quality must
// already be clamped to [0,5] by the caller; now is the instant the review
// is applied, in epoch milliseconds. The function is total: it never fails.
//
// A failed review (quality < 3) resets repetitions and schedules the card
// for tomorrow, leaving the ease factor unchanged.
func Next(quality int, s State, now int64) Result {
	var r Result

	if quality < PassThreshold {
		r.EaseFactor = s.EaseFactor
		r.Interval = 1
		r.Repetitions = 0
	} else {
		q := float64(quality)
		ef := s.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		r.EaseFactor = math.Max(MinEaseFactor, ef)
		r.Repetitions = s.Repetitions + 1

		switch r.Repetitions {
		case 1:
			r.Interval = 1
		case 2:
			r.Interval = 6
		default:
			r.Interval = int(math.Round(float64(s.Interval) * r.EaseFactor))
		}
	}

	r.NextReviewDate = now + int64(r.Interval)*dayMillis
	return r
}

// Clamp restricts a quality value to the valid [0,5] range.
func Clamp(quality int) int {
	if quality < MinQuality {
		return MinQuality
	}
	if quality > MaxQuality {
		return MaxQuality
	}
	return quality
}
