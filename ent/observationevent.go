// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/matuskalis/speaksharp-engine/ent/observationevent"
)

// ObservationEvent is the model entity for the ObservationEvent schema.
type ObservationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// SkillKey holds the value of the "skill_key" field.
	SkillKey string `json:"skill_key,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// p_learned before this observation
	PPrior float64 `json:"p_prior,omitempty"`
	// p_learned after this observation
	PPosterior float64 `json:"p_posterior,omitempty"`
	// MasteryScore holds the value of the "mastery_score" field.
	MasteryScore float64 `json:"mastery_score,omitempty"`
	// Caller-supplied idempotency key, rejects duplicate retries
	AttemptID    string `json:"attempt_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ObservationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case observationevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case observationevent.FieldPPrior, observationevent.FieldPPosterior, observationevent.FieldMasteryScore:
			values[i] = new(sql.NullFloat64)
		case observationevent.FieldID, observationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case observationevent.FieldLearnerID, observationevent.FieldSkillKey, observationevent.FieldAttemptID:
			values[i] = new(sql.NullString)
		case observationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ObservationEvent fields.
func (_m *ObservationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case observationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case observationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case observationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case observationevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case observationevent.FieldSkillKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_key", values[i])
			} else if value.Valid {
				_m.SkillKey = value.String
			}
		case observationevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case observationevent.FieldPPrior:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_prior", values[i])
			} else if value.Valid {
				_m.PPrior = value.Float64
			}
		case observationevent.FieldPPosterior:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_posterior", values[i])
			} else if value.Valid {
				_m.PPosterior = value.Float64
			}
		case observationevent.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = value.Float64
			}
		case observationevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ObservationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ObservationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ObservationEvent.
// Note that you need to call ObservationEvent.Unwrap() before calling this method if this ObservationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ObservationEvent) Update() *ObservationEventUpdateOne {
	return NewObservationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ObservationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ObservationEvent) Unwrap() *ObservationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ObservationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ObservationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ObservationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("skill_key=")
	builder.WriteString(_m.SkillKey)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("p_prior=")
	builder.WriteString(fmt.Sprintf("%v", _m.PPrior))
	builder.WriteString(", ")
	builder.WriteString("p_posterior=")
	builder.WriteString(fmt.Sprintf("%v", _m.PPosterior))
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteByte(')')
	return builder.String()
}

// ObservationEvents is a parsable slice of ObservationEvent.
type ObservationEvents []*ObservationEvent
