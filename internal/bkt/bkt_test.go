package bkt

import (
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.PGuess != 0.2 {
		t.Errorf("PGuess = %g, want 0.2", p.PGuess)
	}
	if p.PSlip != 0.1 {
		t.Errorf("PSlip = %g, want 0.1", p.PSlip)
	}
}

func TestAdvance_FirstCorrectObservation(t *testing.T) {
	// From the seed: posterior = 0.1*0.9 / (0.1*0.9 + 0.9*0.2) = 1/3,
	// then transit: 1/3 + 2/3*0.15 = 0.4333...
	got := Advance(SeedPLearned, SeedPTransit, true, DefaultParams())
	if math.Abs(got-0.43333333) > 1e-6 {
		t.Errorf("Advance = %g, want 0.43333", got)
	}
	if math.Abs(Score(got)-43.333333) > 1e-4 {
		t.Errorf("Score = %g, want 43.333", Score(got))
	}
}

func TestAdvance_FirstIncorrectObservation(t *testing.T) {
	// posterior = 0.1*0.1 / (0.1*0.1 + 0.9*0.8) = 0.01/0.73, then the
	// transit step still nudges the estimate up.
	post := Posterior(SeedPLearned, false, DefaultParams())
	if math.Abs(post-0.01/0.73) > 1e-9 {
		t.Errorf("Posterior = %g, want %g", post, 0.01/0.73)
	}
	got := Advance(SeedPLearned, SeedPTransit, false, DefaultParams())
	want := post + (1-post)*SeedPTransit
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Advance = %g, want %g", got, want)
	}
}

func TestAdvance_CorrectRaisesIncorrectLowers(t *testing.T) {
	p := DefaultParams()
	pl := 0.5
	up := Posterior(pl, true, p)
	down := Posterior(pl, false, p)
	if up <= pl {
		t.Errorf("correct posterior %g did not raise prior %g", up, pl)
	}
	if down >= pl {
		t.Errorf("incorrect posterior %g did not lower prior %g", down, pl)
	}
}

func TestAdvance_StaysStrictlyInsideUnitInterval(t *testing.T) {
	p := DefaultParams()

	// Long all-correct streak approaches but never reaches 1.
	pl := SeedPLearned
	for i := 0; i < 200; i++ {
		pl = Advance(pl, SeedPTransit, true, p)
		if pl <= 0 || pl >= 1 {
			t.Fatalf("after %d correct: pLearned = %g escaped (0,1)", i+1, pl)
		}
	}
	if pl < 0.999 {
		t.Errorf("after 200 correct: pLearned = %g, expected near 1", pl)
	}

	// Long all-incorrect streak never reaches 0: the transit step keeps
	// a floor above it.
	pl = SeedPLearned
	for i := 0; i < 200; i++ {
		pl = Advance(pl, SeedPTransit, false, p)
		if pl <= 0 || pl >= 1 {
			t.Fatalf("after %d incorrect: pLearned = %g escaped (0,1)", i+1, pl)
		}
	}
}

func TestAdvance_RecoversAfterLongCorrectStreak(t *testing.T) {
	p := DefaultParams()

	// Saturate the estimate, then verify incorrect observations can still
	// pull it back down. If the streak ever rounded to exactly 1 the
	// incorrect posterior would be pSlip/pSlip = 1 and the estimate would
	// be stuck there forever.
	pl := SeedPLearned
	for i := 0; i < 200; i++ {
		pl = Advance(pl, SeedPTransit, true, p)
	}
	saturated := pl

	pl = Advance(pl, SeedPTransit, false, p)
	for i := 0; i < 50; i++ {
		pl = Advance(pl, SeedPTransit, false, p)
	}
	if pl >= saturated {
		t.Errorf("after incorrect streak: pLearned = %g, did not drop below %g", pl, saturated)
	}
	if pl > 0.9 {
		t.Errorf("after 51 incorrect: pLearned = %g, expected well below 0.9", pl)
	}
}

func TestAdvance_AlternatingObservationsStayBounded(t *testing.T) {
	p := DefaultParams()
	pl := SeedPLearned
	for i := 0; i < 100; i++ {
		pl = Advance(pl, SeedPTransit, i%2 == 0, p)
		if pl <= 0 || pl >= 1 {
			t.Fatalf("step %d: pLearned = %g escaped (0,1)", i, pl)
		}
	}
}
