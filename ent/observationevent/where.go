// Code generated by ent, DO NOT EDIT.

package observationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/matuskalis/speaksharp-engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldLearnerID, v))
}

// SkillKey applies equality check predicate on the "skill_key" field. It's identical to SkillKeyEQ.
func SkillKey(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldSkillKey, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldCorrect, v))
}

// PPrior applies equality check predicate on the "p_prior" field. It's identical to PPriorEQ.
func PPrior(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldPPrior, v))
}

// PPosterior applies equality check predicate on the "p_posterior" field. It's identical to PPosteriorEQ.
func PPosterior(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldPPosterior, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldMasteryScore, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldAttemptID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// SkillKeyEQ applies the EQ predicate on the "skill_key" field.
func SkillKeyEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldSkillKey, v))
}

// SkillKeyNEQ applies the NEQ predicate on the "skill_key" field.
func SkillKeyNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldSkillKey, v))
}

// SkillKeyIn applies the In predicate on the "skill_key" field.
func SkillKeyIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldSkillKey, vs...))
}

// SkillKeyNotIn applies the NotIn predicate on the "skill_key" field.
func SkillKeyNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldSkillKey, vs...))
}

// SkillKeyGT applies the GT predicate on the "skill_key" field.
func SkillKeyGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldSkillKey, v))
}

// SkillKeyGTE applies the GTE predicate on the "skill_key" field.
func SkillKeyGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldSkillKey, v))
}

// SkillKeyLT applies the LT predicate on the "skill_key" field.
func SkillKeyLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldSkillKey, v))
}

// SkillKeyLTE applies the LTE predicate on the "skill_key" field.
func SkillKeyLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldSkillKey, v))
}

// SkillKeyContains applies the Contains predicate on the "skill_key" field.
func SkillKeyContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldSkillKey, v))
}

// SkillKeyHasPrefix applies the HasPrefix predicate on the "skill_key" field.
func SkillKeyHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldSkillKey, v))
}

// SkillKeyHasSuffix applies the HasSuffix predicate on the "skill_key" field.
func SkillKeyHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldSkillKey, v))
}

// SkillKeyEqualFold applies the EqualFold predicate on the "skill_key" field.
func SkillKeyEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldSkillKey, v))
}

// SkillKeyContainsFold applies the ContainsFold predicate on the "skill_key" field.
func SkillKeyContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldSkillKey, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldCorrect, v))
}

// PPriorEQ applies the EQ predicate on the "p_prior" field.
func PPriorEQ(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldPPrior, v))
}

// PPriorNEQ applies the NEQ predicate on the "p_prior" field.
func PPriorNEQ(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldPPrior, v))
}

// PPriorIn applies the In predicate on the "p_prior" field.
func PPriorIn(vs ...float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldPPrior, vs...))
}

// PPriorNotIn applies the NotIn predicate on the "p_prior" field.
func PPriorNotIn(vs ...float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldPPrior, vs...))
}

// PPriorGT applies the GT predicate on the "p_prior" field.
func PPriorGT(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldPPrior, v))
}

// PPriorGTE applies the GTE predicate on the "p_prior" field.
func PPriorGTE(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldPPrior, v))
}

// PPriorLT applies the LT predicate on the "p_prior" field.
func PPriorLT(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldPPrior, v))
}

// PPriorLTE applies the LTE predicate on the "p_prior" field.
func PPriorLTE(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldPPrior, v))
}

// PPosteriorEQ applies the EQ predicate on the "p_posterior" field.
func PPosteriorEQ(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldPPosterior, v))
}

// PPosteriorNEQ applies the NEQ predicate on the "p_posterior" field.
func PPosteriorNEQ(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldPPosterior, v))
}

// PPosteriorIn applies the In predicate on the "p_posterior" field.
func PPosteriorIn(vs ...float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldPPosterior, vs...))
}

// PPosteriorNotIn applies the NotIn predicate on the "p_posterior" field.
func PPosteriorNotIn(vs ...float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldPPosterior, vs...))
}

// PPosteriorGT applies the GT predicate on the "p_posterior" field.
func PPosteriorGT(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldPPosterior, v))
}

// PPosteriorGTE applies the GTE predicate on the "p_posterior" field.
func PPosteriorGTE(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldPPosterior, v))
}

// PPosteriorLT applies the LT predicate on the "p_posterior" field.
func PPosteriorLT(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldPPosterior, v))
}

// PPosteriorLTE applies the LTE predicate on the "p_posterior" field.
func PPosteriorLTE(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldPPosterior, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v float64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldMasteryScore, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDIsNil applies the IsNil predicate on the "attempt_id" field.
func AttemptIDIsNil() predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIsNull(FieldAttemptID))
}

// AttemptIDNotNil applies the NotNil predicate on the "attempt_id" field.
func AttemptIDNotNil() predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotNull(FieldAttemptID))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ObservationEvent) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ObservationEvent) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ObservationEvent) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.NotPredicates(p))
}
