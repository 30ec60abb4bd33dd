// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/matuskalis/speaksharp-engine/ent/errorrecord"
)

// ErrorRecord is the model entity for the ErrorRecord schema.
type ErrorRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Tutor-assigned classification, e.g. word-order, tense
	ErrorType string `json:"error_type,omitempty"`
	// UserSentence holds the value of the "user_sentence" field.
	UserSentence string `json:"user_sentence,omitempty"`
	// CorrectedSentence holds the value of the "corrected_sentence" field.
	CorrectedSentence string `json:"corrected_sentence,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// Recycled holds the value of the "recycled" field.
	Recycled bool `json:"recycled,omitempty"`
	// RecycledCount holds the value of the "recycled_count" field.
	RecycledCount int `json:"recycled_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ErrorRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case errorrecord.FieldRecycled:
			values[i] = new(sql.NullBool)
		case errorrecord.FieldRecycledCount:
			values[i] = new(sql.NullInt64)
		case errorrecord.FieldLearnerID, errorrecord.FieldErrorType, errorrecord.FieldUserSentence, errorrecord.FieldCorrectedSentence, errorrecord.FieldExplanation:
			values[i] = new(sql.NullString)
		case errorrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case errorrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ErrorRecord fields.
func (_m *ErrorRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case errorrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case errorrecord.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case errorrecord.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case errorrecord.FieldUserSentence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_sentence", values[i])
			} else if value.Valid {
				_m.UserSentence = value.String
			}
		case errorrecord.FieldCorrectedSentence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_sentence", values[i])
			} else if value.Valid {
				_m.CorrectedSentence = value.String
			}
		case errorrecord.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case errorrecord.FieldRecycled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field recycled", values[i])
			} else if value.Valid {
				_m.Recycled = value.Bool
			}
		case errorrecord.FieldRecycledCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recycled_count", values[i])
			} else if value.Valid {
				_m.RecycledCount = int(value.Int64)
			}
		case errorrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ErrorRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ErrorRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ErrorRecord.
// Note that you need to call ErrorRecord.Unwrap() before calling this method if this ErrorRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ErrorRecord) Update() *ErrorRecordUpdateOne {
	return NewErrorRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ErrorRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ErrorRecord) Unwrap() *ErrorRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ErrorRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ErrorRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ErrorRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("user_sentence=")
	builder.WriteString(_m.UserSentence)
	builder.WriteString(", ")
	builder.WriteString("corrected_sentence=")
	builder.WriteString(_m.CorrectedSentence)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("recycled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recycled))
	builder.WriteString(", ")
	builder.WriteString("recycled_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecycledCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ErrorRecords is a parsable slice of ErrorRecord.
type ErrorRecords []*ErrorRecord
