package srs

import (
	"fmt"
	"math"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

// Seed values for newly created cards.
const (
	InitialIntervalDays = 1
	InitialEaseFactor   = 2.5
)

const (
	// MinEaseFactor is the floor the ease factor never drops below.
	MinEaseFactor = 1.3

	// FailEasePenalty is subtracted from the ease factor on a failed review.
	FailEasePenalty = 0.2

	// PassQuality is the lowest quality counted as a pass.
	PassQuality = 3

	MinQuality = 0
	MaxQuality = 5
)

// Schedule is the scheduling state consumed and produced by Advance.
type Schedule struct {
	IntervalDays int
	EaseFactor   float64
}

// InitialSchedule returns the seed schedule for a new card: due after one
// day with the default ease factor.
func InitialSchedule() Schedule {
	return Schedule{IntervalDays: InitialIntervalDays, EaseFactor: InitialEaseFactor}
}

// Advance computes the next interval and ease factor from a review.
// This is the product's own SM-2 variant, not textbook SM-2: the pass
// branch keeps the classic ease delta but multiplies the interval by the
// NEW ease on every pass, and the fail branch subtracts a flat penalty.
// Changing either would silently alter every learner's review cadence,
// so the formula is preserved exactly.
//
// Pure function of (interval, ease, quality). Quality outside 0-5 is a
// caller contract violation and is rejected, never clamped: clamping
// would hide learner-scale bugs upstream.
func Advance(cur Schedule, quality int) (Schedule, error) {
	if quality < MinQuality || quality > MaxQuality {
		return Schedule{}, fmt.Errorf("%w: quality %d outside [%d,%d]",
			store.ErrInvalidInput, quality, MinQuality, MaxQuality)
	}

	if quality >= PassQuality {
		q := float64(quality)
		ease := cur.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		if ease < MinEaseFactor {
			ease = MinEaseFactor
		}
		interval := int(math.Ceil(float64(cur.IntervalDays) * ease))
		if interval < 1 {
			interval = 1
		}
		return Schedule{IntervalDays: interval, EaseFactor: ease}, nil
	}

	ease := cur.EaseFactor - FailEasePenalty
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	return Schedule{IntervalDays: 1, EaseFactor: ease}, nil
}
