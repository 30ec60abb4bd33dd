// Package bkt implements two-state Bayesian Knowledge Tracing: a skill
// is either learned or not, the estimate p(learned) is updated by
// Bayes' rule from correct/incorrect observations, and each attempt
// carries a transit probability of moving from not-learned to learned.
package bkt

// Params holds the process-wide BKT constants. They are injected at
// tracker construction rather than hidden as package globals so tests
// can override them.
type Params struct {
	// PGuess is the probability of answering correctly without mastery.
	PGuess float64
	// PSlip is the probability of answering incorrectly despite mastery.
	PSlip float64
}

// DefaultParams returns the production constants.
func DefaultParams() Params {
	return Params{PGuess: 0.2, PSlip: 0.1}
}

// Seed values for a never-before-seen (learner, skill) pair.
const (
	SeedPLearned = 0.1
	SeedPTransit = 0.15
)

// boundEpsilon keeps the persisted estimate strictly inside (0,1). At
// exactly 1.0 the incorrect-observation posterior is pSlip/pSlip = 1,
// so a saturated node could never be lowered again; float64 rounding
// reaches 1.0 after a few dozen correct observations without the clamp.
const boundEpsilon = 1e-9

// Posterior applies Bayes' rule to the mastery estimate for one
// observation. For seed values and any prior strictly inside (0,1) the
// result stays strictly inside (0,1).
func Posterior(pLearned float64, correct bool, p Params) float64 {
	if correct {
		num := pLearned * (1 - p.PSlip)
		return num / (num + (1-pLearned)*p.PGuess)
	}
	num := pLearned * p.PSlip
	return num / (num + (1-pLearned)*(1-p.PGuess))
}

/// Advance computes the updated mastery estimate: the Bayesian posterior
// followed by the learning-on-attempt transit step. The result is
// clamped strictly inside (0,1).
func Advance(pLearned, pTransit float64, correct bool, p Params) float64 {
	post := Posterior(pLearned, correct, p)
	next := post + (1-post)*pTransit
	if next > 1-boundEpsilon {
		return 1 - boundEpsilon
	}
	if next < boundEpsilon {
		return boundEpsilon
	}
	return next
}

// Score projects a mastery estimate onto the human-readable 0-100 scale.
func Score(pLearned float64) float64 {
	return pLearned * 100
}
