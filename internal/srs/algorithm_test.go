package srs

import (
	"errors"
	"math"
	"testing"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

func TestInitialSchedule(t *testing.T) {
	s := InitialSchedule()
	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", s.IntervalDays)
	}
	if s.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %g, want 2.5", s.EaseFactor)
	}
}

func TestAdvance_PassFromNewCard(t *testing.T) {
	// Quality 4 on a fresh card: the ease delta is exactly zero, so the
	// ease stays 2.5 and the interval becomes ceil(1*2.5) = 3.
	got, err := Advance(InitialSchedule(), 4)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if math.Abs(got.EaseFactor-2.5) > 1e-9 {
		t.Errorf("EaseFactor = %g, want 2.5", got.EaseFactor)
	}
	if got.IntervalDays != 3 {
		t.Errorf("IntervalDays = %d, want 3", got.IntervalDays)
	}
}

func TestAdvance_FailFromNewCard(t *testing.T) {
	// Quality 2 fails: flat 0.2 penalty, interval reset to 1.
	got, err := Advance(InitialSchedule(), 2)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if math.Abs(got.EaseFactor-2.3) > 1e-9 {
		t.Errorf("EaseFactor = %g, want 2.3", got.EaseFactor)
	}
	if got.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", got.IntervalDays)
	}
}

func TestAdvance_PassDeltas(t *testing.T) {
	tests := []struct {
		quality  int
		wantEase float64
	}{
		{3, 2.5 - 0.14},
		{4, 2.5},
		{5, 2.6},
	}
	for _, tt := range tests {
		got, err := Advance(Schedule{IntervalDays: 10, EaseFactor: 2.5}, tt.quality)
		if err != nil {
			t.Fatalf("Advance(q=%d): %v", tt.quality, err)
		}
		if math.Abs(got.EaseFactor-tt.wantEase) > 1e-9 {
			t.Errorf("quality %d: EaseFactor = %g, want %g", tt.quality, got.EaseFactor, tt.wantEase)
		}
		wantInterval := int(math.Ceil(10 * tt.wantEase))
		if got.IntervalDays != wantInterval {
			t.Errorf("quality %d: IntervalDays = %d, want %d", tt.quality, got.IntervalDays, wantInterval)
		}
	}
}

func TestAdvance_IntervalUsesNewEase(t *testing.T) {
	// Quality 3 lowers the ease to 2.36; the interval must be computed
	// with the lowered value, not the pre-review one.
	got, err := Advance(Schedule{IntervalDays: 10, EaseFactor: 2.5}, 3)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got.IntervalDays != 24 { // ceil(10 * 2.36)
		t.Errorf("IntervalDays = %d, want 24", got.IntervalDays)
	}
}

func TestAdvance_EaseFloor(t *testing.T) {
	// Repeated failures never push the ease below 1.3.
	s := InitialSchedule()
	for i := 0; i < 20; i++ {
		var err error
		s, err = Advance(s, 0)
		if err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		if s.EaseFactor < MinEaseFactor {
			t.Fatalf("EaseFactor = %g dropped below floor %g", s.EaseFactor, MinEaseFactor)
		}
	}
	if s.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %g, want exactly %g after repeated failures", s.EaseFactor, MinEaseFactor)
	}

	// Quality 3 at the floor has a negative delta; the floor must hold
	// on the pass branch too.
	s = Schedule{IntervalDays: 1, EaseFactor: MinEaseFactor}
	got, err := Advance(s, 3)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %g, want %g", got.EaseFactor, MinEaseFactor)
	}
}

func TestAdvance_IntervalAlwaysGrowsOnPass(t *testing.T) {
	// Ease is floored at 1.3 > 1, so a pass always strictly grows the
	// interval.
	s := Schedule{IntervalDays: 1, EaseFactor: MinEaseFactor}
	for i := 0; i < 10; i++ {
		got, err := Advance(s, 3)
		if err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		if got.IntervalDays <= s.IntervalDays {
			t.Fatalf("IntervalDays %d -> %d did not grow", s.IntervalDays, got.IntervalDays)
		}
		s = got
	}
}

func TestAdvance_QualityOutOfRange(t *testing.T) {
	for _, q := range []int{-1, 6, 100} {
		_, err := Advance(InitialSchedule(), q)
		if !errors.Is(err, store.ErrInvalidInput) {
			t.Errorf("quality %d: err = %v, want ErrInvalidInput", q, err)
		}
	}
}
