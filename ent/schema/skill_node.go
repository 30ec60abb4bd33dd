package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillNode is the persisted Bayesian Knowledge Tracing state for one
// (learner, skill) pair. Exactly one row per pair; updates go through
// the upsert path, never a bare insert.
type SkillNode struct {
	ent.Schema
}

func (SkillNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("skill_key").
			NotEmpty().
			Immutable(),
		field.Float("p_learned").
			Min(0).
			Max(1).
			Comment("Probability the skill has been mastered"),
		field.Float("p_transit").
			Min(0).
			Max(1).
			Comment("Per-attempt learning probability, fixed at node creation"),
		field.Float("mastery_score").
			Comment("p_learned * 100, recomputed on every update"),
		field.Int("practice_count").
			NonNegative().
			Default(0),
		field.Int("success_count").
			NonNegative().
			Default(0),
		field.Int("error_count").
			NonNegative().
			Default(0),
		field.Time("last_practiced_at"),
	}
}

func (SkillNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "skill_key").
			Unique(),
		index.Fields("learner_id", "mastery_score"),
	}
}
