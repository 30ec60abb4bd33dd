package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ReviewEvent is the append-only audit record of a single card review.
// One row per review, immutable once written; the scheduler never reads
// these back, they exist for analytics and replay.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("card_id", uuid.UUID{}).
			Immutable(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.Int("quality").
			Min(0).
			Max(5).
			Comment("Self-assessed recall quality, 0 = blackout, 5 = perfect"),
		field.Int("response_time_ms").
			NonNegative(),
		field.String("response").
			Optional().
			Comment("Raw learner response text"),
		field.Bool("correct").
			Comment("Audit only, not consumed by scheduling math"),
		field.Int("interval_days").
			Comment("Interval that resulted from this review"),
		field.Float("ease_factor").
			Comment("Ease factor that resulted from this review"),
		field.String("attempt_id").
			Optional().
			Unique().
			Comment("Caller-supplied idempotency key, rejects duplicate retries"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("learner_id"),
	}
}
