// Package recycle turns tutor-logged language errors into error-repair
// cards so a fresh mistake comes back as practice while it still stings.
package recycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/internal/srs"
	"github.com/matuskalis/speaksharp-engine/internal/store"
)

// RemediationDifficulty is the fixed difficulty tag for recycled cards;
// remediation is treated as moderately hard regardless of the error.
const RemediationDifficulty = 0.7

// Converter builds error-repair cards from error records.
type Converter struct {
	errors store.ErrorRepo
	log    *slog.Logger
	now    func() time.Time
}

// NewConverter creates a converter over the given error record repository.
func NewConverter(errors store.ErrorRepo, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}
	return &Converter{errors: errors, log: log, now: time.Now}
}

// Convert creates a new error-repair card from the error record,
// immediately due with the scheduler's seed interval and ease, and marks
// the record recycled (flag set, recycled_count incremented) in the same
// transaction. Calling it again on the same record is legal — a
// recurring mistake earns another independent card — so deduplicating a
// single error instance is the caller's job.
func (c *Converter) Convert(ctx context.Context, errorRecordID uuid.UUID) (*store.Card, error) {
	if errorRecordID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing error record id", store.ErrInvalidInput)
	}

	now := c.now().UTC()

	created, err := c.errors.Recycle(ctx, errorRecordID, func(rec store.ErrorRecord) store.Card {
		return store.Card{
			LearnerID:    rec.LearnerID,
			CardType:     store.CardTypeErrorRepair,
			Front:        "Fix this sentence: " + rec.UserSentence,
			Back:         rec.CorrectedSentence + "\n\nExplanation: " + rec.Explanation,
			Difficulty:   RemediationDifficulty,
			NextReviewAt: now,
			IntervalDays: srs.InitialIntervalDays,
			EaseFactor:   srs.InitialEaseFactor,
			Source:       "error_record",
			SourceID:     rec.ID.String(),
		}
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("error record recycled",
		"error_record_id", errorRecordID,
		"card_id", created.ID,
		"learner_id", created.LearnerID,
	)
	return created, nil
}
