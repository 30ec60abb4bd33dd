package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/ent"
	"github.com/matuskalis/speaksharp-engine/ent/card"
	"github.com/matuskalis/speaksharp-engine/ent/reviewevent"
)

type cardRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *cardRepo) Create(ctx context.Context, c *Card) (*Card, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	builder := r.client.Card.Create().
		SetID(id).
		SetLearnerID(c.LearnerID).
		SetCardType(card.CardType(c.CardType)).
		SetFront(c.Front).
		SetBack(c.Back).
		SetDifficulty(c.Difficulty).
		SetNextReviewAt(c.NextReviewAt).
		SetIntervalDays(c.IntervalDays).
		SetEaseFactor(c.EaseFactor).
		SetReviewCount(c.ReviewCount)

	if c.Source != "" {
		builder = builder.SetSource(c.Source)
	}
	if c.SourceID != "" {
		builder = builder.SetSourceID(c.SourceID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return toCard(created), nil
}

func (r *cardRepo) Get(ctx context.Context, id uuid.UUID) (*Card, error) {
	c, err := r.client.Card.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get card: %w", err)
	}
	return toCard(c), nil
}

func (r *cardRepo) ListDue(ctx context.Context, learnerID string, now time.Time, limit int) ([]*Card, error) {
	query := r.client.Card.Query().
		Where(
			card.LearnerID(learnerID),
			card.NextReviewAtLTE(now),
		).
		Order(ent.Asc(card.FieldNextReviewAt), ent.Asc(card.FieldID))

	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}

	cards := make([]*Card, len(rows))
	for i, c := range rows {
		cards[i] = toCard(c)
	}
	return cards, nil
}

// ApplyReview applies one review as a single transaction: a conditional
// update guarded by the card's current review_count plus one appended
// ReviewEvent. Two concurrent reviews of the same card cannot both
// compute from the same ease factor; the loser gets ErrConflict.
func (r *cardRepo) ApplyReview(ctx context.Context, cardID uuid.UUID, upd ReviewUpdate) (*Card, error) {
	// Sequence is drawn outside the transaction; an aborted write leaves
	// a harmless gap.
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	updated, err := applyReviewTx(ctx, tx, cardID, seqNum, upd)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit review: %w", err)
	}
	return updated, nil
}

func applyReviewTx(ctx context.Context, tx *ent.Tx, cardID uuid.UUID, seqNum int64, upd ReviewUpdate) (*Card, error) {
	if upd.AttemptID != "" {
		seen, err := tx.ReviewEvent.Query().
			Where(reviewevent.AttemptID(upd.AttemptID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check attempt id: %w", err)
		}
		if seen {
			return nil, ErrDuplicateAttempt
		}
	}

	cur, err := tx.Card.Get(ctx, cardID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get card: %w", err)
	}

	next := upd.Apply(*toCard(cur))

	n, err := tx.Card.Update().
		Where(
			card.ID(cardID),
			card.ReviewCount(cur.ReviewCount),
		).
		SetNextReviewAt(next.NextReviewAt).
		SetIntervalDays(next.IntervalDays).
		SetEaseFactor(next.EaseFactor).
		SetReviewCount(cur.ReviewCount + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	if n == 0 {
		return nil, ErrConflict
	}

	builder := tx.ReviewEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(upd.Now).
		SetCardID(cardID).
		SetLearnerID(cur.LearnerID).
		SetQuality(upd.Quality).
		SetResponseTimeMs(upd.ResponseTimeMs).
		SetCorrect(upd.Correct).
		SetIntervalDays(next.IntervalDays).
		SetEaseFactor(next.EaseFactor)

	if upd.Response != "" {
		builder = builder.SetResponse(upd.Response)
	}
	if upd.AttemptID != "" {
		builder = builder.SetAttemptID(upd.AttemptID)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicateAttempt
		}
		return nil, fmt.Errorf("append review event: %w", err)
	}

	next.ReviewCount = cur.ReviewCount + 1
	return &next, nil
}

func toCard(c *ent.Card) *Card {
	return &Card{
		ID:           c.ID,
		LearnerID:    c.LearnerID,
		CardType:     CardType(c.CardType),
		Front:        c.Front,
		Back:         c.Back,
		Difficulty:   c.Difficulty,
		NextReviewAt: c.NextReviewAt,
		IntervalDays: c.IntervalDays,
		EaseFactor:   c.EaseFactor,
		ReviewCount:  c.ReviewCount,
		Source:       c.Source,
		SourceID:     c.SourceID,
		CreatedAt:    c.CreatedAt,
	}
}
