// Code generated by ent, DO NOT EDIT.

package skillnode

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skillnode type in the database.
	Label = "skill_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldSkillKey holds the string denoting the skill_key field in the database.
	FieldSkillKey = "skill_key"
	// FieldPLearned holds the string denoting the p_learned field in the database.
	FieldPLearned = "p_learned"
	// FieldPTransit holds the string denoting the p_transit field in the database.
	FieldPTransit = "p_transit"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldPracticeCount holds the string denoting the practice_count field in the database.
	FieldPracticeCount = "practice_count"
	// FieldSuccessCount holds the string denoting the success_count field in the database.
	FieldSuccessCount = "success_count"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// Table holds the table name of the skillnode in the database.
	Table = "skill_nodes"
)

// Columns holds all SQL columns for skillnode fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldSkillKey,
	FieldPLearned,
	FieldPTransit,
	FieldMasteryScore,
	FieldPracticeCount,
	FieldSuccessCount,
	FieldErrorCount,
	FieldLastPracticedAt,
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
	// SkillKeyValidator is a validator for the "skill_key" field. It is called by the builders before save.
	SkillKeyValidator func(string) error
	// PLearnedValidator is a validator for the "p_learned" field. It is called by the builders before save.
	PLearnedValidator func(float64) error
	// PTransitValidator is a validator for the "p_transit" field. It is called by the builders before save.
	PTransitValidator func(float64) error
	// DefaultPracticeCount holds the default value on creation for the "practice_count" field.
	DefaultPracticeCount int
	// PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	PracticeCountValidator func(int) error
	// DefaultSuccessCount holds the default value on creation for the "success_count" field.
	DefaultSuccessCount int
	// SuccessCountValidator is a validator for the "success_count" field. It is called by the builders before save.
	SuccessCountValidator func(int) error
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// ErrorCountValidator is a validator for the "error_count" field. It is called by the builders before save.
	ErrorCountValidator func(int) error
)

// OrderOption defines the ordering options for the SkillNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// BySkillKey orders the results by the skill_key field.
func BySkillKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillKey, opts...).ToFunc()
}

// ByPLearned orders the results by the p_learned field.
func ByPLearned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPLearned, opts...).ToFunc()
}

// ByPTransit orders the results by the p_transit field.
func ByPTransit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPTransit, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByPracticeCount orders the results by the practice_count field.
func ByPracticeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCount, opts...).ToFunc()
}

// BySuccessCount orders the results by the success_count field.
func BySuccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessCount, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}
