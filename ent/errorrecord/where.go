// Code generated by ent, DO NOT EDIT.

package errorrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/matuskalis/speaksharp-engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldLearnerID, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldErrorType, v))
}

// UserSentence applies equality check predicate on the "user_sentence" field. It's identical to UserSentenceEQ.
func UserSentence(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldUserSentence, v))
}

// CorrectedSentence applies equality check predicate on the "corrected_sentence" field. It's identical to CorrectedSentenceEQ.
func CorrectedSentence(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldCorrectedSentence, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldExplanation, v))
}

// Recycled applies equality check predicate on the "recycled" field. It's identical to RecycledEQ.
func Recycled(v bool) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldRecycled, v))
}

// RecycledCount applies equality check predicate on the "recycled_count" field. It's identical to RecycledCountEQ.
func RecycledCount(v int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldRecycledCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContainsFold(FieldLearnerID, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContainsFold(FieldErrorType, v))
}

// UserSentenceEQ applies the EQ predicate on the "user_sentence" field.
func UserSentenceEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldUserSentence, v))
}

// UserSentenceNEQ applies the NEQ predicate on the "user_sentence" field.
func UserSentenceNEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldUserSentence, v))
}

// UserSentenceIn applies the In predicate on the "user_sentence" field.
func UserSentenceIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldIn(FieldUserSentence, vs...))
}

// UserSentenceNotIn applies the NotIn predicate on the "user_sentence" field.
func UserSentenceNotIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNotIn(FieldUserSentence, vs...))
}

// UserSentenceGT applies the GT predicate on the "user_sentence" field.
func UserSentenceGT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGT(FieldUserSentence, v))
}

// UserSentenceGTE applies the GTE predicate on the "user_sentence" field.
func UserSentenceGTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGTE(FieldUserSentence, v))
}

// UserSentenceLT applies the LT predicate on the "user_sentence" field.
func UserSentenceLT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLT(FieldUserSentence, v))
}

// UserSentenceLTE applies the LTE predicate on the "user_sentence" field.
func UserSentenceLTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLTE(FieldUserSentence, v))
}

// UserSentenceContains applies the Contains predicate on the "user_sentence" field.
func UserSentenceContains(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContains(FieldUserSentence, v))
}

// UserSentenceHasPrefix applies the HasPrefix predicate on the "user_sentence" field.
func UserSentenceHasPrefix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasPrefix(FieldUserSentence, v))
}

// UserSentenceHasSuffix applies the HasSuffix predicate on the "user_sentence" field.
func UserSentenceHasSuffix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasSuffix(FieldUserSentence, v))
}

// UserSentenceEqualFold applies the EqualFold predicate on the "user_sentence" field.
func UserSentenceEqualFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEqualFold(FieldUserSentence, v))
}

// UserSentenceContainsFold applies the ContainsFold predicate on the "user_sentence" field.
func UserSentenceContainsFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContainsFold(FieldUserSentence, v))
}

// CorrectedSentenceEQ applies the EQ predicate on the "corrected_sentence" field.
func CorrectedSentenceEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldCorrectedSentence, v))
}

// CorrectedSentenceNEQ applies the NEQ predicate on the "corrected_sentence" field.
func CorrectedSentenceNEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldCorrectedSentence, v))
}

// CorrectedSentenceIn applies the In predicate on the "corrected_sentence" field.
func CorrectedSentenceIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldIn(FieldCorrectedSentence, vs...))
}

// CorrectedSentenceNotIn applies the NotIn predicate on the "corrected_sentence" field.
func CorrectedSentenceNotIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNotIn(FieldCorrectedSentence, vs...))
}

// CorrectedSentenceGT applies the GT predicate on the "corrected_sentence" field.
func CorrectedSentenceGT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGT(FieldCorrectedSentence, v))
}

// CorrectedSentenceGTE applies the GTE predicate on the "corrected_sentence" field.
func CorrectedSentenceGTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGTE(FieldCorrectedSentence, v))
}

// CorrectedSentenceLT applies the LT predicate on the "corrected_sentence" field.
func CorrectedSentenceLT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLT(FieldCorrectedSentence, v))
}

// CorrectedSentenceLTE applies the LTE predicate on the "corrected_sentence" field.
func CorrectedSentenceLTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLTE(FieldCorrectedSentence, v))
}

// CorrectedSentenceContains applies the Contains predicate on the "corrected_sentence" field.
func CorrectedSentenceContains(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContains(FieldCorrectedSentence, v))
}

// CorrectedSentenceHasPrefix applies the HasPrefix predicate on the "corrected_sentence" field.
func CorrectedSentenceHasPrefix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasPrefix(FieldCorrectedSentence, v))
}

// CorrectedSentenceHasSuffix applies the HasSuffix predicate on the "corrected_sentence" field.
func CorrectedSentenceHasSuffix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasSuffix(FieldCorrectedSentence, v))
}

// CorrectedSentenceEqualFold applies the EqualFold predicate on the "corrected_sentence" field.
func CorrectedSentenceEqualFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEqualFold(FieldCorrectedSentence, v))
}

// CorrectedSentenceContainsFold applies the ContainsFold predicate on the "corrected_sentence" field.
func CorrectedSentenceContainsFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContainsFold(FieldCorrectedSentence, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldContainsFold(FieldExplanation, v))
}

// RecycledEQ applies the EQ predicate on the "recycled" field.
func RecycledEQ(v bool) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldRecycled, v))
}

// RecycledNEQ applies the NEQ predicate on the "recycled" field.
func RecycledNEQ(v bool) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldRecycled, v))
}

// RecycledCountEQ applies the EQ predicate on the "recycled_count" field.
func RecycledCountEQ(v int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldRecycledCount, v))
}

// RecycledCountNEQ applies the NEQ predicate on the "recycled_count" field.
func RecycledCountNEQ(v int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldRecycledCount, v))
}

// RecycledCountIn applies the In predicate on the "recycled_count" field.
func RecycledCountIn(vs ...int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldIn(FieldRecycledCount, vs...))
}

// RecycledCountNotIn applies the NotIn predicate on the "recycled_count" field.
func RecycledCountNotIn(vs ...int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNotIn(FieldRecycledCount, vs...))
}

// RecycledCountGT applies the GT predicate on the "recycled_count" field.
func RecycledCountGT(v int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGT(FieldRecycledCount, v))
}

// RecycledCountGTE applies the GTE predicate on the "recycled_count" field.
func RecycledCountGTE(v int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGTE(FieldRecycledCount, v))
}

// RecycledCountLT applies the LT predicate on the "recycled_count" field.
func RecycledCountLT(v int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLT(FieldRecycledCount, v))
}

// RecycledCountLTE applies the LTE predicate on the "recycled_count" field.
func RecycledCountLTE(v int) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLTE(FieldRecycledCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ErrorRecord) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ErrorRecord) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ErrorRecord) predicate.ErrorRecord {
	return predicate.ErrorRecord(sql.NotPredicates(p))
}
