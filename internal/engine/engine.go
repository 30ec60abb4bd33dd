// Package engine is the single entry point the CLI and any embedding
// application use. It wires the scheduler, mastery tracker, error
// recycler and queue provider over one store and validates every input
// before it reaches a repository.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/internal/bkt"
	"github.com/matuskalis/speaksharp-engine/internal/catalog"
	"github.com/matuskalis/speaksharp-engine/internal/intake"
	"github.com/matuskalis/speaksharp-engine/internal/queue"
	"github.com/matuskalis/speaksharp-engine/internal/recycle"
	"github.com/matuskalis/speaksharp-engine/internal/srs"
	"github.com/matuskalis/speaksharp-engine/internal/store"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Engine bundles the review, mastery and recycling services.
type Engine struct {
	store     *store.Store
	scheduler *srs.Scheduler
	tracker   *bkt.Tracker
	converter *recycle.Converter
	queue     *queue.Provider
	importer  *intake.Importer
	log       *slog.Logger
}

// Options tune engine behaviour. The zero value uses defaults.
type Options struct {
	BKTParams *bkt.Params
	Logger    *slog.Logger
}

// New wires an engine over an already-open store.
func New(st *store.Store, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	params := bkt.DefaultParams()
	if opts.BKTParams != nil {
		params = *opts.BKTParams
	}
	return &Engine{
		store:     st,
		scheduler: srs.NewScheduler(st.Cards(), log),
		tracker:   bkt.NewTracker(st.Skills(), params, log),
		converter: recycle.NewConverter(st.Errors(), log),
		queue:     queue.NewProvider(st.Cards(), st.Skills(), log),
		importer:  intake.NewImporter(st.Errors(), log),
		log:       log,
	}
}

// CreateCardInput describes a new flashcard.
type CreateCardInput struct {
	LearnerID string `validate:"required"`
	CardType  string `validate:"required,oneof=definition cloze production pronunciation error_repair"`
	Front     string `validate:"required"`
	Back      string `validate:"required"`
}

// CreateCard inserts a card due immediately with the initial schedule.
func (e *Engine) CreateCard(ctx context.Context, in CreateCardInput) (*store.Card, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	sched := srs.InitialSchedule()
	return e.store.Cards().Create(ctx, &store.Card{
		LearnerID:    in.LearnerID,
		CardType:     store.CardType(in.CardType),
		Front:        in.Front,
		Back:         in.Back,
		NextReviewAt: time.Now().UTC(),
		IntervalDays: sched.IntervalDays,
		EaseFactor:   sched.EaseFactor,
	})
}

// ReviewInput grades one card presentation. Correct is the caller's own
// verdict on the response and is recorded for audit independently of
// Quality, which alone drives scheduling.
type ReviewInput struct {
	CardID         uuid.UUID `validate:"required"`
	Quality        int       `validate:"min=0,max=5"`
	Correct        bool
	ResponseTimeMs int       `validate:"min=0"`
	Response       string
	AttemptID      string
}

// RecordReview applies a graded review: the card is rescheduled and the
// review event appended atomically.
func (e *Engine) RecordReview(ctx context.Context, in ReviewInput) (*store.Card, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	return e.scheduler.RecordReview(ctx, srs.ReviewInput{
		CardID:         in.CardID,
		Quality:        in.Quality,
		Correct:        in.Correct,
		ResponseTimeMs: in.ResponseTimeMs,
		Response:       in.Response,
		AttemptID:      in.AttemptID,
	})
}

// ObserveInput reports one practice outcome on a skill.
type ObserveInput struct {
	LearnerID string `validate:"required"`
	SkillKey  string `validate:"required"`
	Correct   bool
	AttemptID string
}

// ObserveSkill updates the learner's mastery estimate for a skill.
// Unknown skill keys are rejected so a typo never seeds a phantom node.
func (e *Engine) ObserveSkill(ctx context.Context, in ObserveInput) (*store.SkillNode, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if !catalog.Known(in.SkillKey) {
		return nil, fmt.Errorf("%w: unknown skill %q", store.ErrInvalidInput, in.SkillKey)
	}
	return e.tracker.Observe(ctx, bkt.ObserveInput{
		LearnerID: in.LearnerID,
		SkillKey:  in.SkillKey,
		Correct:   in.Correct,
		AttemptID: in.AttemptID,
	})
}

// RecordErrorInput captures one learner error from a tutoring session.
type RecordErrorInput struct {
	LearnerID         string `validate:"required"`
	ErrorType         string `validate:"required"`
	UserSentence      string `validate:"required"`
	CorrectedSentence string `validate:"required"`
	Explanation       string `validate:"required"`
}

// RecordError stores a learner error for later recycling.
func (e *Engine) RecordError(ctx context.Context, in RecordErrorInput) (*store.ErrorRecord, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	return e.store.Errors().Create(ctx, &store.ErrorRecord{
		LearnerID:         in.LearnerID,
		ErrorType:         in.ErrorType,
		UserSentence:      in.UserSentence,
		CorrectedSentence: in.CorrectedSentence,
		Explanation:       in.Explanation,
	})
}

// ConvertError turns a stored error into an error-repair card.
func (e *Engine) ConvertError(ctx context.Context, errorRecordID uuid.UUID) (*store.Card, error) {
	return e.converter.Convert(ctx, errorRecordID)
}

// GetDueCards returns the learner's review queue, most overdue first.
func (e *Engine) GetDueCards(ctx context.Context, learnerID string, limit int) ([]*store.Card, error) {
	return e.queue.GetDueCards(ctx, learnerID, limit)
}

// GetWeakestSkills returns the learner's least-mastered skills.
func (e *Engine) GetWeakestSkills(ctx context.Context, learnerID string, limit int) ([]*store.SkillNode, error) {
	return e.queue.GetWeakestSkills(ctx, learnerID, limit)
}

// GetRecommendedSkills suggests what the learner should practice next.
func (e *Engine) GetRecommendedSkills(ctx context.Context, learnerID string, limit int) ([]queue.Recommendation, error) {
	return e.queue.GetRecommendedSkills(ctx, learnerID, limit)
}

// Mastery returns the tracked state for one learner skill.
func (e *Engine) Mastery(ctx context.Context, learnerID, skillKey string) (*store.SkillNode, error) {
	return e.tracker.Mastery(ctx, learnerID, skillKey)
}

// Skills returns every skill node the learner has touched.
func (e *Engine) Skills(ctx context.Context, learnerID string) ([]*store.SkillNode, error) {
	if learnerID == "" {
		return nil, fmt.Errorf("%w: missing learner id", store.ErrInvalidInput)
	}
	return e.store.Skills().ListByLearner(ctx, learnerID)
}

// PendingErrors returns errors not yet recycled into cards.
func (e *Engine) PendingErrors(ctx context.Context, learnerID string, limit int) ([]*store.ErrorRecord, error) {
	if learnerID == "" {
		return nil, fmt.Errorf("%w: missing learner id", store.ErrInvalidInput)
	}
	return e.store.Errors().ListPending(ctx, learnerID, limit)
}

// Importer exposes batch error-record import.
func (e *Engine) Importer() *intake.Importer { return e.importer }

// Events exposes the append-only event log.
func (e *Engine) Events() store.EventRepo { return e.store.Events() }

func checkInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
	}
	return nil
}
