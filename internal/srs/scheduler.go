package srs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

// Scheduler applies spaced repetition reviews to cards.
type Scheduler struct {
	cards store.CardRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewScheduler creates a scheduler over the given card repository.
func NewScheduler(cards store.CardRepo, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{cards: cards, log: log, now: time.Now}
}

// ReviewInput describes one graded review of a card.
type ReviewInput struct {
	CardID         uuid.UUID
	Quality        int    // 0 = total blackout ... 5 = perfect recall
	Correct        bool   // audit only, not consumed by the scheduling math
	ResponseTimeMs int
	Response       string
	AttemptID      string // optional idempotency key
}

// RecordReview validates the input, advances the card's schedule, and
// appends one ReviewEvent. The state transition is all-or-nothing: a
// rejected input or a persistence failure leaves the card untouched.
func (s *Scheduler) RecordReview(ctx context.Context, in ReviewInput) (*store.Card, error) {
	if in.CardID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing card id", store.ErrInvalidInput)
	}
	// Reject bad quality before touching the store.
	if _, err := Advance(InitialSchedule(), in.Quality); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	updated, err := s.cards.ApplyReview(ctx, in.CardID, store.ReviewUpdate{
		AttemptID:      in.AttemptID,
		Quality:        in.Quality,
		ResponseTimeMs: in.ResponseTimeMs,
		Response:       in.Response,
		Correct:        in.Correct,
		Now:            now,
		Apply: func(cur store.Card) store.Card {
			next, _ := Advance(Schedule{
				IntervalDays: cur.IntervalDays,
				EaseFactor:   cur.EaseFactor,
			}, in.Quality)

			cur.IntervalDays = next.IntervalDays
			cur.EaseFactor = next.EaseFactor
			cur.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
			return cur
		},
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("review recorded",
		"card_id", in.CardID,
		"quality", in.Quality,
		"interval_days", updated.IntervalDays,
		"ease_factor", updated.EaseFactor,
	)
	return updated, nil
}
