package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/ent"
	"github.com/matuskalis/speaksharp-engine/ent/card"
	"github.com/matuskalis/speaksharp-engine/ent/errorrecord"
)

type errorRepo struct {
	client *ent.Client
}

func (r *errorRepo) Create(ctx context.Context, rec *ErrorRecord) (*ErrorRecord, error) {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := r.client.ErrorRecord.Create().
		SetID(id).
		SetLearnerID(rec.LearnerID).
		SetErrorType(rec.ErrorType).
		SetUserSentence(rec.UserSentence).
		SetCorrectedSentence(rec.CorrectedSentence).
		SetExplanation(rec.Explanation).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create error record: %w", err)
	}
	return toErrorRecord(created), nil
}

func (r *errorRepo) Get(ctx context.Context, id uuid.UUID) (*ErrorRecord, error) {
	rec, err := r.client.ErrorRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get error record: %w", err)
	}
	return toErrorRecord(rec), nil
}

func (r *errorRepo) ListPending(ctx context.Context, learnerID string, limit int) ([]*ErrorRecord, error) {
	query := r.client.ErrorRecord.Query().
		Where(
			errorrecord.LearnerID(learnerID),
			errorrecord.Recycled(false),
		).
		Order(ent.Asc(errorrecord.FieldCreatedAt), ent.Asc(errorrecord.FieldID))

	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending error records: %w", err)
	}

	recs := make([]*ErrorRecord, len(rows))
	for i, rec := range rows {
		recs[i] = toErrorRecord(rec)
	}
	return recs, nil
}

// Recycle creates the card and marks the record recycled in one
// transaction, so a crash between the two writes cannot leave a card
// without the recycled flag or vice versa.
func (r *errorRepo) Recycle(ctx context.Context, id uuid.UUID, build func(rec ErrorRecord) Card) (*Card, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	created, err := recycleTx(ctx, tx, id, build)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recycle: %w", err)
	}
	return created, nil
}

func recycleTx(ctx context.Context, tx *ent.Tx, id uuid.UUID, build func(rec ErrorRecord) Card) (*Card, error) {
	rec, err := tx.ErrorRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get error record: %w", err)
	}

	c := build(*toErrorRecord(rec))
	cardID := c.ID
	if cardID == uuid.Nil {
		cardID = uuid.New()
	}

	builder := tx.Card.Create().
		SetID(cardID).
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
		return nil, fmt.Errorf("create card from error record: %w", err)
	}

	err = tx.ErrorRecord.UpdateOneID(id).
		SetRecycled(true).
		AddRecycledCount(1).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark error record recycled: %w", err)
	}

	return toCard(created), nil
}

func toErrorRecord(rec *ent.ErrorRecord) *ErrorRecord {
	return &ErrorRecord{
		ID:                rec.ID,
		LearnerID:         rec.LearnerID,
		ErrorType:         rec.ErrorType,
		UserSentence:      rec.UserSentence,
		CorrectedSentence: rec.CorrectedSentence,
		Explanation:       rec.Explanation,
		Recycled:          rec.Recycled,
		RecycledCount:     rec.RecycledCount,
		CreatedAt:         rec.CreatedAt,
	}
}
