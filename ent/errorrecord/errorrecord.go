// Code generated by ent, DO NOT EDIT.

package errorrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the errorrecord type in the database.
	Label = "error_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldUserSentence holds the string denoting the user_sentence field in the database.
	FieldUserSentence = "user_sentence"
	// FieldCorrectedSentence holds the string denoting the corrected_sentence field in the database.
	FieldCorrectedSentence = "corrected_sentence"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldRecycled holds the string denoting the recycled field in the database.
	FieldRecycled = "recycled"
	// FieldRecycledCount holds the string denoting the recycled_count field in the database.
	FieldRecycledCount = "recycled_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the errorrecord in the database.
	Table = "error_records"
)

// Columns holds all SQL columns for errorrecord fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldErrorType,
	FieldUserSentence,
	FieldCorrectedSentence,
	FieldExplanation,
	FieldRecycled,
	FieldRecycledCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ErrorTypeValidator is a validator for the "error_type" field. It is called by the builders before save.
	ErrorTypeValidator func(string) error
	// UserSentenceValidator is a validator for the "user_sentence" field. It is called by the builders before save.
	UserSentenceValidator func(string) error
	// CorrectedSentenceValidator is a validator for the "corrected_sentence" field. It is called by the builders before save.
	CorrectedSentenceValidator func(string) error
	// ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	ExplanationValidator func(string) error
	// DefaultRecycled holds the default value on creation for the "recycled" field.
	DefaultRecycled bool
	// DefaultRecycledCount holds the default value on creation for the "recycled_count" field.
	DefaultRecycledCount int
	// RecycledCountValidator is a validator for the "recycled_count" field. It is called by the builders before save.
	RecycledCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ErrorRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByUserSentence orders the results by the user_sentence field.
func ByUserSentence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserSentence, opts...).ToFunc()
}

// ByCorrectedSentence orders the results by the corrected_sentence field.
func ByCorrectedSentence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedSentence, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByRecycled orders the results by the recycled field.
func ByRecycled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecycled, opts...).ToFunc()
}

// ByRecycledCount orders the results by the recycled_count field.
func ByRecycledCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecycledCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
