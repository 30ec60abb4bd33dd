package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CardType identifies the practice format of a card. Closed set; the
// persisted enum rejects anything else.
type CardType string

const (
	CardTypeDefinition    CardType = "definition"
	CardTypeCloze         CardType = "cloze"
	CardTypeProduction    CardType = "production"
	CardTypePronunciation CardType = "pronunciation"
	CardTypeErrorRepair   CardType = "error_repair"
)

// Card is the persisted scheduling state of one reviewable item.
type Card struct {
	ID           uuid.UUID
	LearnerID    string
	CardType     CardType
	Front        string
	Back         string
	Difficulty   float64
	NextReviewAt time.Time
	IntervalDays int
	EaseFactor   float64
	ReviewCount  int
	Source       string
	SourceID     string
	CreatedAt    time.Time
}

// IsDue reports whether the card is due at the given instant.
func (c *Card) IsDue(now time.Time) bool {
	return !now.Before(c.NextReviewAt)
}

// ReviewUpdate carries one review's inputs plus the scheduling
// transition to apply. Apply is a pure function of the current card; the
// repository evaluates it inside the transaction so the write never
// computes from a stale row.
type ReviewUpdate struct {
	AttemptID      string // optional idempotency key
	Quality        int
	ResponseTimeMs int
	Response       string
	Correct        bool
	Now            time.Time
	Apply          func(cur Card) Card
}

// CardRepo provides persistence for cards and their review events.
type CardRepo interface {
	// Create persists a new card. The zero ID is replaced with a fresh one.
	Create(ctx context.Context, c *Card) (*Card, error)

	// Get returns the card by ID, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Card, error)

	// ListDue returns cards with next_review_at <= now for the learner,
	// oldest-overdue first, ID tie-break, at most limit rows.
	ListDue(ctx context.Context, learnerID string, now time.Time, limit int) ([]*Card, error)

	// ApplyReview atomically applies one review: conditional card update
	// plus one appended ReviewEvent, or nothing at all.
	ApplyReview(ctx context.Context, cardID uuid.UUID, upd ReviewUpdate) (*Card, error)
}

// SkillNode is the persisted BKT state for one (learner, skill) pair.
type SkillNode struct {
	LearnerID       string
	SkillKey        string
	PLearned        float64
	PTransit        float64
	MasteryScore    float64
	PracticeCount   int
	SuccessCount    int
	ErrorCount      int
	LastPracticedAt time.Time
}

// ObservationUpdate carries one observation and the mastery transition
// to apply. Seed is used as the prior when no node exists yet, so
// creation and update run through the same code path.
type ObservationUpdate struct {
	AttemptID string // optional idempotency key
	Correct   bool
	Now       time.Time
	Seed      SkillNode
	Apply     func(prior SkillNode) SkillNode
}

// SkillRepo provides persistence for skill nodes and observation events.
type SkillRepo interface {
	// Get returns the node for (learner, skill), or ErrNotFound.
	Get(ctx context.Context, learnerID, skillKey string) (*SkillNode, error)

	// ListByLearner returns all nodes for a learner.
	ListByLearner(ctx context.Context, learnerID string) ([]*SkillNode, error)

	// ListWeakest returns up to limit nodes ordered by ascending mastery
	// score; among equal scores the node with more recorded errors
	// surfaces first, skill key as final tie-break.
	ListWeakest(ctx context.Context, learnerID string, limit int) ([]*SkillNode, error)

	// ApplyObservation upserts the node in a single transaction: absent
	// nodes are created from Seed and updated in the same write, so
	// there is no check-then-act window. Appends one ObservationEvent.
	ApplyObservation(ctx context.Context, learnerID, skillKey string, upd ObservationUpdate) (*SkillNode, error)
}

// ErrorRecord is a tutor-logged language mistake awaiting recycling.
type ErrorRecord struct {
	ID                uuid.UUID
	LearnerID         string
	ErrorType         string
	UserSentence      string
	CorrectedSentence string
	Explanation       string
	Recycled          bool
	RecycledCount     int
	CreatedAt         time.Time
}

// ErrorRepo provides persistence for tutor error records.
type ErrorRepo interface {
	// Create persists a new error record.
	Create(ctx context.Context, rec *ErrorRecord) (*ErrorRecord, error)

	// Get returns the record by ID, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*ErrorRecord, error)

	// ListPending returns unrecycled records for a learner, oldest first.
	ListPending(ctx context.Context, learnerID string, limit int) ([]*ErrorRecord, error)

	// Recycle atomically creates the card built from the record and marks
	// the record recycled (flips the flag, increments recycled_count).
	// Legal to call repeatedly on the same record.
	Recycle(ctx context.Context, id uuid.UUID, build func(rec ErrorRecord) Card) (*Card, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ReviewEventRecord is one row of the append-only review log.
type ReviewEventRecord struct {
	Sequence       int64
	Timestamp      time.Time
	CardID         uuid.UUID
	LearnerID      string
	Quality        int
	ResponseTimeMs int
	Response       string
	Correct        bool
	IntervalDays   int
	EaseFactor     float64
}

// ObservationEventRecord is one row of the append-only observation log.
type ObservationEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	LearnerID    string
	SkillKey     string
	Correct      bool
	PPrior       float64
	PPosterior   float64
	MasteryScore float64
}

// EventRepo provides read access to the append-only event logs for
// analytics. The scheduler and tracker never read these back.
type EventRepo interface {
	QueryReviewEvents(ctx context.Context, learnerID string, opts QueryOpts) ([]ReviewEventRecord, error)
	QueryObservationEvents(ctx context.Context, learnerID, skillKey string, opts QueryOpts) ([]ObservationEventRecord, error)

	// ReviewAccuracy returns the overall correct ratio and review count
	// for a learner.
	ReviewAccuracy(ctx context.Context, learnerID string) (float64, int, error)
}
