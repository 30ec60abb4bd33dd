package store

import (
	"context"
	"fmt"

	"github.com/matuskalis/speaksharp-engine/ent"
	"github.com/matuskalis/speaksharp-engine/ent/observationevent"
	"github.com/matuskalis/speaksharp-engine/ent/reviewevent"
)

type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) QueryReviewEvents(ctx context.Context, learnerID string, opts QueryOpts) ([]ReviewEventRecord, error) {
	query := r.client.ReviewEvent.Query().
		Where(reviewevent.LearnerID(learnerID)).
		Order(ent.Desc(reviewevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(reviewevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(reviewevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(reviewevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(reviewevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}

	records := make([]ReviewEventRecord, len(events))
	for i, e := range events {
		records[i] = ReviewEventRecord{
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
			CardID:         e.CardID,
			LearnerID:      e.LearnerID,
			Quality:        e.Quality,
			ResponseTimeMs: e.ResponseTimeMs,
			Response:       e.Response,
			Correct:        e.Correct,
			IntervalDays:   e.IntervalDays,
			EaseFactor:     e.EaseFactor,
		}
	}
	return records, nil
}

func (r *eventRepo) QueryObservationEvents(ctx context.Context, learnerID, skillKey string, opts QueryOpts) ([]ObservationEventRecord, error) {
	query := r.client.ObservationEvent.Query().
		Where(observationevent.LearnerID(learnerID)).
		Order(ent.Desc(observationevent.FieldSequence))

	if skillKey != "" {
		query = query.Where(observationevent.SkillKey(skillKey))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(observationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(observationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(observationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(observationevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query observation events: %w", err)
	}

	records := make([]ObservationEventRecord, len(events))
	for i, e := range events {
		records[i] = ObservationEventRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			LearnerID:    e.LearnerID,
			SkillKey:     e.SkillKey,
			Correct:      e.Correct,
			PPrior:       e.PPrior,
			PPosterior:   e.PPosterior,
			MasteryScore: e.MasteryScore,
		}
	}
	return records, nil
}

func (r *eventRepo) ReviewAccuracy(ctx context.Context, learnerID string) (float64, int, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(reviewevent.LearnerID(learnerID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query review accuracy: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(count), count, nil
}
