package bkt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

// Tracker maintains per-(learner, skill) mastery state.
type Tracker struct {
	skills store.SkillRepo
	params Params
	log    *slog.Logger
	now    func() time.Time
}

// NewTracker creates a tracker with the given constants.
func NewTracker(skills store.SkillRepo, params Params, log *slog.Logger) *Tracker {
	if log == nil {
		log = slog.Default()
	}
	return &Tracker{skills: skills, params: params, log: log, now: time.Now}
}

// ObserveInput describes one correct/incorrect observation of a skill.
type ObserveInput struct {
	LearnerID string
	SkillKey  string
	Correct   bool
	AttemptID string // optional idempotency key
}

// Observe folds one observation into the skill node. A missing node is
// seeded (pLearned 0.1, pTransit 0.15) inside the same upsert, so the
// first observation and every later one run one code path and no
// check-then-act race can create duplicate rows. Counters increment
// exactly once per call; masteryScore is recomputed from pLearned on
// every write, never stored independently.
func (t *Tracker) Observe(ctx context.Context, in ObserveInput) (*store.SkillNode, error) {
	if in.LearnerID == "" {
		return nil, fmt.Errorf("%w: missing learner id", store.ErrInvalidInput)
	}
	if in.SkillKey == "" {
		return nil, fmt.Errorf("%w: missing skill key", store.ErrInvalidInput)
	}

	now := t.now().UTC()

	node, err := t.skills.ApplyObservation(ctx, in.LearnerID, in.SkillKey, store.ObservationUpdate{
		AttemptID: in.AttemptID,
		Correct:   in.Correct,
		Now:       now,
		Seed: store.SkillNode{
			PLearned: SeedPLearned,
			PTransit: SeedPTransit,
		},
		Apply: func(prior store.SkillNode) store.SkillNode {
			p := Advance(prior.PLearned, prior.PTransit, in.Correct, t.params)

			prior.PLearned = p
			prior.MasteryScore = Score(p)
			prior.PracticeCount++
			if in.Correct {
				prior.SuccessCount++
			} else {
				prior.ErrorCount++
			}
			prior.LastPracticedAt = now
			return prior
		},
	})
	if err != nil {
		return nil, err
	}

	t.log.Debug("observation recorded",
		"learner_id", in.LearnerID,
		"skill_key", in.SkillKey,
		"correct", in.Correct,
		"p_learned", node.PLearned,
		"mastery_score", node.MasteryScore,
	)
	return node, nil
}

// Mastery returns the current node for (learner, skill), or ErrNotFound
// if the skill has never been observed.
func (t *Tracker) Mastery(ctx context.Context, learnerID, skillKey string) (*store.SkillNode, error) {
	return t.skills.Get(ctx, learnerID, skillKey)
}
