// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/matuskalis/speaksharp-engine/ent/skillnode"
)

// SkillNode is the model entity for the SkillNode schema.
type SkillNode struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// SkillKey holds the value of the "skill_key" field.
	SkillKey string `json:"skill_key,omitempty"`
	// Probability the skill has been mastered
	PLearned float64 `json:"p_learned,omitempty"`
	// Per-attempt learning probability, fixed at node creation
	PTransit float64 `json:"p_transit,omitempty"`
	// p_learned * 100, recomputed on every update
	MasteryScore float64 `json:"mastery_score,omitempty"`
	// PracticeCount holds the value of the "practice_count" field.
	PracticeCount int `json:"practice_count,omitempty"`
	// SuccessCount holds the value of the "success_count" field.
	SuccessCount int `json:"success_count,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// LastPracticedAt holds the value of the "last_practiced_at" field.
	LastPracticedAt time.Time `json:"last_practiced_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillnode.FieldPLearned, skillnode.FieldPTransit, skillnode.FieldMasteryScore:
			values[i] = new(sql.NullFloat64)
		case skillnode.FieldID, skillnode.FieldPracticeCount, skillnode.FieldSuccessCount, skillnode.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case skillnode.FieldLearnerID, skillnode.FieldSkillKey:
			values[i] = new(sql.NullString)
		case skillnode.FieldLastPracticedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillNode fields.
func (_m *SkillNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillnode.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case skillnode.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case skillnode.FieldSkillKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_key", values[i])
			} else if value.Valid {
				_m.SkillKey = value.String
			}
		case skillnode.FieldPLearned:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_learned", values[i])
			} else if value.Valid {
				_m.PLearned = value.Float64
			}
		case skillnode.FieldPTransit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_transit", values[i])
			} else if value.Valid {
				_m.PTransit = value.Float64
			}
		case skillnode.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = value.Float64
			}
		case skillnode.FieldPracticeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_count", values[i])
			} else if value.Valid {
				_m.PracticeCount = int(value.Int64)
			}
		case skillnode.FieldSuccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_count", values[i])
			} else if value.Valid {
				_m.SuccessCount = int(value.Int64)
			}
		case skillnode.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case skillnode.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillNode.
// This includes values selected through modifiers, order, etc.
func (_m *SkillNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillNode.
// Note that you need to call SkillNode.Unwrap() before calling this method if this SkillNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillNode) Update() *SkillNodeUpdateOne {
	return NewSkillNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillNode) Unwrap() *SkillNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillNode) String() string {
	var builder strings.Builder
	builder.WriteString("SkillNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("skill_key=")
	builder.WriteString(_m.SkillKey)
	builder.WriteString(", ")
	builder.WriteString("p_learned=")
	builder.WriteString(fmt.Sprintf("%v", _m.PLearned))
	builder.WriteString(", ")
	builder.WriteString("p_transit=")
	builder.WriteString(fmt.Sprintf("%v", _m.PTransit))
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("practice_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCount))
	builder.WriteString(", ")
	builder.WriteString("success_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCount))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("last_practiced_at=")
	builder.WriteString(_m.LastPracticedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SkillNodes is a parsable slice of SkillNode.
type SkillNodes []*SkillNode
