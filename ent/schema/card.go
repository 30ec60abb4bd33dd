package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Card is a single reviewable practice item owned by one learner.
// Scheduling fields (next_review_at, interval_days, ease_factor,
// review_count) are mutated only through the review path; everything
// else is written once at creation.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.Enum("card_type").
			Values("definition", "cloze", "production", "pronunciation", "error_repair"),
		field.String("front").
			NotEmpty().
			Comment("Prompt shown to the learner"),
		field.String("back").
			NotEmpty().
			Comment("Answer and explanation"),
		field.Float("difficulty").
			Min(0).
			Max(1).
			Comment("Informational only, not consumed by scheduling math"),
		field.Time("next_review_at").
			Comment("Card is due when now >= next_review_at"),
		field.Int("interval_days").
			Min(1).
			Default(1),
		field.Float("ease_factor").
			Min(1.3).
			Default(2.5),
		field.Int("review_count").
			NonNegative().
			Default(0),
		field.String("source").
			Optional().
			Comment("Origin kind of the card, e.g. error_record"),
		field.String("source_id").
			Optional().
			Comment("ID of the originating record, written once"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "next_review_at"),
		index.Fields("learner_id", "card_type"),
	}
}
