// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "card_type", Type: field.TypeEnum, Enums: []string{"definition", "cloze", "production", "pronunciation", "error_repair"}},
		{Name: "front", Type: field.TypeString},
		{Name: "back", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "source_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "card_learner_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[1], CardsColumns[6]},
			},
			{
				Name:    "card_learner_id_card_type",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[1], CardsColumns[2]},
			},
		},
	}
	// ErrorRecordsColumns holds the columns for the "error_records" table.
	ErrorRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "error_type", Type: field.TypeString},
		{Name: "user_sentence", Type: field.TypeString},
		{Name: "corrected_sentence", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString},
		{Name: "recycled", Type: field.TypeBool, Default: false},
		{Name: "recycled_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ErrorRecordsTable holds the schema information for the "error_records" table.
	ErrorRecordsTable = &schema.Table{
		Name:       "error_records",
		Columns:    ErrorRecordsColumns,
		PrimaryKey: []*schema.Column{ErrorRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "errorrecord_learner_id_recycled",
				Unique:  false,
				Columns: []*schema.Column{ErrorRecordsColumns[1], ErrorRecordsColumns[6]},
			},
		},
	}
	// ObservationEventsColumns holds the columns for the "observation_events" table.
	ObservationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_key", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "p_prior", Type: field.TypeFloat64},
		{Name: "p_posterior", Type: field.TypeFloat64},
		{Name: "mastery_score", Type: field.TypeFloat64},
		{Name: "attempt_id", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// ObservationEventsTable holds the schema information for the "observation_events" table.
	ObservationEventsTable = &schema.Table{
		Name:       "observation_events",
		Columns:    ObservationEventsColumns,
		PrimaryKey: []*schema.Column{ObservationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "observationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ObservationEventsColumns[1]},
			},
			{
				Name:    "observationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ObservationEventsColumns[2]},
			},
			{
				Name:    "observationevent_learner_id_skill_key",
				Unique:  false,
				Columns: []*schema.Column{ObservationEventsColumns[3], ObservationEventsColumns[4]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "card_id", Type: field.TypeUUID},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "quality", Type: field.TypeInt},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "response", Type: field.TypeString, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "attempt_id", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_card_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
		},
	}
	// SkillNodesColumns holds the columns for the "skill_nodes" table.
	SkillNodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_key", Type: field.TypeString},
		{Name: "p_learned", Type: field.TypeFloat64},
		{Name: "p_transit", Type: field.TypeFloat64},
		{Name: "mastery_score", Type: field.TypeFloat64},
		{Name: "practice_count", Type: field.TypeInt, Default: 0},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced_at", Type: field.TypeTime},
	}
	// SkillNodesTable holds the schema information for the "skill_nodes" table.
	SkillNodesTable = &schema.Table{
		Name:       "skill_nodes",
		Columns:    SkillNodesColumns,
		PrimaryKey: []*schema.Column{SkillNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillnode_learner_id_skill_key",
				Unique:  true,
				Columns: []*schema.Column{SkillNodesColumns[1], SkillNodesColumns[2]},
			},
			{
				Name:    "skillnode_learner_id_mastery_score",
				Unique:  false,
				Columns: []*schema.Column{SkillNodesColumns[1], SkillNodesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardsTable,
		ErrorRecordsTable,
		ObservationEventsTable,
		ReviewEventsTable,
		SkillNodesTable,
	}
)

func init() {
}
