package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ErrorRecord is a language mistake logged by the tutor, held here until
// it is recycled into an error-repair card. The tutor owns the content
// fields; this engine only flips recycled and bumps recycled_count.
type ErrorRecord struct {
	ent.Schema
}

func (ErrorRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("error_type").
			NotEmpty().
			Comment("Tutor-assigned classification, e.g. word-order, tense"),
		field.String("user_sentence").
			NotEmpty(),
		field.String("corrected_sentence").
			NotEmpty(),
		field.String("explanation").
			NotEmpty(),
		field.Bool("recycled").
			Default(false),
		field.Int("recycled_count").
			NonNegative().
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ErrorRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "recycled"),
	}
}
