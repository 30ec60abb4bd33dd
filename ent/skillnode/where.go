// Code generated by ent, DO NOT EDIT.

package skillnode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/matuskalis/speaksharp-engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldLearnerID, v))
}

// SkillKey applies equality check predicate on the "skill_key" field. It's identical to SkillKeyEQ.
func SkillKey(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldSkillKey, v))
}

// PLearned applies equality check predicate on the "p_learned" field. It's identical to PLearnedEQ.
func PLearned(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldPLearned, v))
}

// PTransit applies equality check predicate on the "p_transit" field. It's identical to PTransitEQ.
func PTransit(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldPTransit, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldMasteryScore, v))
}

// PracticeCount applies equality check predicate on the "practice_count" field. It's identical to PracticeCountEQ.
func PracticeCount(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldPracticeCount, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldSuccessCount, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldErrorCount, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldContainsFold(FieldLearnerID, v))
}

// SkillKeyEQ applies the EQ predicate on the "skill_key" field.
func SkillKeyEQ(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldSkillKey, v))
}

// SkillKeyNEQ applies the NEQ predicate on the "skill_key" field.
func SkillKeyNEQ(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldSkillKey, v))
}

// SkillKeyIn applies the In predicate on the "skill_key" field.
func SkillKeyIn(vs ...string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldSkillKey, vs...))
}

// SkillKeyNotIn applies the NotIn predicate on the "skill_key" field.
func SkillKeyNotIn(vs ...string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldSkillKey, vs...))
}

// SkillKeyGT applies the GT predicate on the "skill_key" field.
func SkillKeyGT(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldSkillKey, v))
}

// SkillKeyGTE applies the GTE predicate on the "skill_key" field.
func SkillKeyGTE(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldSkillKey, v))
}

// SkillKeyLT applies the LT predicate on the "skill_key" field.
func SkillKeyLT(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldSkillKey, v))
}

// SkillKeyLTE applies the LTE predicate on the "skill_key" field.
func SkillKeyLTE(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldSkillKey, v))
}

// SkillKeyContains applies the Contains predicate on the "skill_key" field.
func SkillKeyContains(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldContains(FieldSkillKey, v))
}

// SkillKeyHasPrefix applies the HasPrefix predicate on the "skill_key" field.
func SkillKeyHasPrefix(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldHasPrefix(FieldSkillKey, v))
}

// SkillKeyHasSuffix applies the HasSuffix predicate on the "skill_key" field.
func SkillKeyHasSuffix(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldHasSuffix(FieldSkillKey, v))
}

// SkillKeyEqualFold applies the EqualFold predicate on the "skill_key" field.
func SkillKeyEqualFold(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEqualFold(FieldSkillKey, v))
}

// SkillKeyContainsFold applies the ContainsFold predicate on the "skill_key" field.
func SkillKeyContainsFold(v string) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldContainsFold(FieldSkillKey, v))
}

// PLearnedEQ applies the EQ predicate on the "p_learned" field.
func PLearnedEQ(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldPLearned, v))
}

// PLearnedNEQ applies the NEQ predicate on the "p_learned" field.
func PLearnedNEQ(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldPLearned, v))
}

// PLearnedIn applies the In predicate on the "p_learned" field.
func PLearnedIn(vs ...float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldPLearned, vs...))
}

// PLearnedNotIn applies the NotIn predicate on the "p_learned" field.
func PLearnedNotIn(vs ...float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldPLearned, vs...))
}

// PLearnedGT applies the GT predicate on the "p_learned" field.
func PLearnedGT(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldPLearned, v))
}

// PLearnedGTE applies the GTE predicate on the "p_learned" field.
func PLearnedGTE(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldPLearned, v))
}

// PLearnedLT applies the LT predicate on the "p_learned" field.
func PLearnedLT(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldPLearned, v))
}

// PLearnedLTE applies the LTE predicate on the "p_learned" field.
func PLearnedLTE(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldPLearned, v))
}

// PTransitEQ applies the EQ predicate on the "p_transit" field.
func PTransitEQ(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldPTransit, v))
}

// PTransitNEQ applies the NEQ predicate on the "p_transit" field.
func PTransitNEQ(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldPTransit, v))
}

// PTransitIn applies the In predicate on the "p_transit" field.
func PTransitIn(vs ...float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldPTransit, vs...))
}

// PTransitNotIn applies the NotIn predicate on the "p_transit" field.
func PTransitNotIn(vs ...float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldPTransit, vs...))
}

// PTransitGT applies the GT predicate on the "p_transit" field.
func PTransitGT(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldPTransit, v))
}

// PTransitGTE applies the GTE predicate on the "p_transit" field.
func PTransitGTE(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldPTransit, v))
}

// PTransitLT applies the LT predicate on the "p_transit" field.
func PTransitLT(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldPTransit, v))
}

// PTransitLTE applies the LTE predicate on the "p_transit" field.
func PTransitLTE(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldPTransit, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v float64) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldMasteryScore, v))
}

// PracticeCountEQ applies the EQ predicate on the "practice_count" field.
func PracticeCountEQ(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldPracticeCount, v))
}

// PracticeCountNEQ applies the NEQ predicate on the "practice_count" field.
func PracticeCountNEQ(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldPracticeCount, v))
}

// PracticeCountIn applies the In predicate on the "practice_count" field.
func PracticeCountIn(vs ...int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldPracticeCount, vs...))
}

// PracticeCountNotIn applies the NotIn predicate on the "practice_count" field.
func PracticeCountNotIn(vs ...int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldPracticeCount, vs...))
}

// PracticeCountGT applies the GT predicate on the "practice_count" field.
func PracticeCountGT(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldPracticeCount, v))
}

// PracticeCountGTE applies the GTE predicate on the "practice_count" field.
func PracticeCountGTE(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldPracticeCount, v))
}

// PracticeCountLT applies the LT predicate on the "practice_count" field.
func PracticeCountLT(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldPracticeCount, v))
}

// PracticeCountLTE applies the LTE predicate on the "practice_count" field.
func PracticeCountLTE(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldPracticeCount, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldSuccessCount, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldErrorCount, v))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.SkillNode {
	return predicate.SkillNode(sql.FieldLTE(FieldLastPracticedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillNode) predicate.SkillNode {
	return predicate.SkillNode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillNode) predicate.SkillNode {
	return predicate.SkillNode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillNode) predicate.SkillNode {
	return predicate.SkillNode(sql.NotPredicates(p))
}
