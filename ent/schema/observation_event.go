package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ObservationEvent records a single skill observation and the mastery
// estimate it produced. Append-only, for analytics and audit.
type ObservationEvent struct {
	ent.Schema
}

func (ObservationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ObservationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("skill_key").NotEmpty(),
		field.Bool("correct"),
		field.Float("p_prior").
			Comment("p_learned before this observation"),
		field.Float("p_posterior").
			Comment("p_learned after this observation"),
		field.Float("mastery_score"),
		field.String("attempt_id").
			Optional().
			Unique().
			Comment("Caller-supplied idempotency key, rejects duplicate retries"),
	}
}

func (ObservationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "skill_key"),
	}
}
