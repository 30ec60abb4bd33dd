package store

import (
	"context"
	"fmt"

	"github.com/matuskalis/speaksharp-engine/ent"
	"github.com/matuskalis/speaksharp-engine/ent/observationevent"
	"github.com/matuskalis/speaksharp-engine/ent/skillnode"
)

type skillRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *skillRepo) Get(ctx context.Context, learnerID, skillKey string) (*SkillNode, error) {
	n, err := r.client.SkillNode.Query().
		Where(
			skillnode.LearnerID(learnerID),
			skillnode.SkillKey(skillKey),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get skill node: %w", err)
	}
	return toSkillNode(n), nil
}

func (r *skillRepo) ListByLearner(ctx context.Context, learnerID string) ([]*SkillNode, error) {
	rows, err := r.client.SkillNode.Query().
		Where(skillnode.LearnerID(learnerID)).
		Order(ent.Asc(skillnode.FieldSkillKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skill nodes: %w", err)
	}

	nodes := make([]*SkillNode, len(rows))
	for i, n := range rows {
		nodes[i] = toSkillNode(n)
	}
	return nodes, nil
}

// ListWeakest orders by ascending mastery score; among equally weak
// skills the one with more observed failures surfaces first, so a skill
// the learner has actively struggled with outranks an untouched skill
// sitting at the seed value.
func (r *skillRepo) ListWeakest(ctx context.Context, learnerID string, limit int) ([]*SkillNode, error) {
	query := r.client.SkillNode.Query().
		Where(skillnode.LearnerID(learnerID)).
		Order(
			ent.Asc(skillnode.FieldMasteryScore),
			ent.Desc(skillnode.FieldErrorCount),
			ent.Asc(skillnode.FieldSkillKey),
		)

	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list weakest skills: %w", err)
	}

	nodes := make([]*SkillNode, len(rows))
	for i, n := range rows {
		nodes[i] = toSkillNode(n)
	}
	return nodes, nil
}

// ApplyObservation upserts the (learner, skill) node in one transaction.
// An absent node is created from upd.Seed with the observation already
// folded in, so first observation and subsequent updates share a single
// code path and there is no check-then-act window: the unique
// (learner_id, skill_key) index plus the transaction guarantee exactly
// one row per pair even under concurrent first observations.
func (r *skillRepo) ApplyObservation(ctx context.Context, learnerID, skillKey string, upd ObservationUpdate) (*SkillNode, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	node, err := applyObservationTx(ctx, tx, learnerID, skillKey, seqNum, upd)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit observation: %w", err)
	}
	return node, nil
}

func applyObservationTx(ctx context.Context, tx *ent.Tx, learnerID, skillKey string, seqNum int64, upd ObservationUpdate) (*SkillNode, error) {
	if upd.AttemptID != "" {
		seen, err := tx.ObservationEvent.Query().
			Where(observationevent.AttemptID(upd.AttemptID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check attempt id: %w", err)
		}
		if seen {
			return nil, ErrDuplicateAttempt
		}
	}

	cur, err := tx.SkillNode.Query().
		Where(
			skillnode.LearnerID(learnerID),
			skillnode.SkillKey(skillKey),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("get skill node: %w", err)
	}

	var prior SkillNode
	if cur != nil {
		prior = *toSkillNode(cur)
	} else {
		prior = upd.Seed
		prior.LearnerID = learnerID
		prior.SkillKey = skillKey
	}

	next := upd.Apply(prior)

	if cur == nil {
		_, err = tx.SkillNode.Create().
			SetLearnerID(learnerID).
			SetSkillKey(skillKey).
			SetPLearned(next.PLearned).
			SetPTransit(next.PTransit).
			SetMasteryScore(next.MasteryScore).
			SetPracticeCount(next.PracticeCount).
			SetSuccessCount(next.SuccessCount).
			SetErrorCount(next.ErrorCount).
			SetLastPracticedAt(next.LastPracticedAt).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Another first observation won the race.
				return nil, ErrConflict
			}
			return nil, fmt.Errorf("create skill node: %w", err)
		}
	} else {
		n, err := tx.SkillNode.Update().
			Where(
				skillnode.LearnerID(learnerID),
				skillnode.SkillKey(skillKey),
				skillnode.PracticeCount(cur.PracticeCount),
			).
			SetPLearned(next.PLearned).
			SetMasteryScore(next.MasteryScore).
			SetPracticeCount(next.PracticeCount).
			SetSuccessCount(next.SuccessCount).
			SetErrorCount(next.ErrorCount).
			SetLastPracticedAt(next.LastPracticedAt).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update skill node: %w", err)
		}
		if n == 0 {
			return nil, ErrConflict
		}
	}

	builder := tx.ObservationEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(upd.Now).
		SetLearnerID(learnerID).
		SetSkillKey(skillKey).
		SetCorrect(upd.Correct).
		SetPPrior(prior.PLearned).
		SetPPosterior(next.PLearned).
		SetMasteryScore(next.MasteryScore)

	if upd.AttemptID != "" {
		builder = builder.SetAttemptID(upd.AttemptID)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicateAttempt
		}
		return nil, fmt.Errorf("append observation event: %w", err)
	}

	return &next, nil
}

func toSkillNode(n *ent.SkillNode) *SkillNode {
	return &SkillNode{
		LearnerID:       n.LearnerID,
		SkillKey:        n.SkillKey,
		PLearned:        n.PLearned,
		PTransit:        n.PTransit,
		MasteryScore:    n.MasteryScore,
		PracticeCount:   n.PracticeCount,
		SuccessCount:    n.SuccessCount,
		ErrorCount:      n.ErrorCount,
		LastPracticedAt: n.LastPracticedAt,
	}
}
