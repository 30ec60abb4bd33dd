// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/matuskalis/speaksharp-engine/ent/card"
	"github.com/matuskalis/speaksharp-engine/ent/errorrecord"
	"github.com/matuskalis/speaksharp-engine/ent/observationevent"
	"github.com/matuskalis/speaksharp-engine/ent/reviewevent"
	"github.com/matuskalis/speaksharp-engine/ent/schema"
	"github.com/matuskalis/speaksharp-engine/ent/skillnode"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescLearnerID is the schema descriptor for learner_id field.
	cardDescLearnerID := cardFields[1].Descriptor()
	// card.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	card.LearnerIDValidator = cardDescLearnerID.Validators[0].(func(string) error)
	// cardDescFront is the schema descriptor for front field.
	cardDescFront := cardFields[3].Descriptor()
	// card.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	card.FrontValidator = cardDescFront.Validators[0].(func(string) error)
	// cardDescBack is the schema descriptor for back field.
	cardDescBack := cardFields[4].Descriptor()
	// card.BackValidator is a validator for the "back" field. It is called by the builders before save.
	card.BackValidator = cardDescBack.Validators[0].(func(string) error)
	// cardDescDifficulty is the schema descriptor for difficulty field.
	cardDescDifficulty := cardFields[5].Descriptor()
	// card.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	card.DifficultyValidator = func() func(float64) error {
		validators := cardDescDifficulty.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(difficulty float64) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cardDescIntervalDays is the schema descriptor for interval_days field.
	cardDescIntervalDays := cardFields[7].Descriptor()
	// card.DefaultIntervalDays holds the default value on creation for the interval_days field.
	card.DefaultIntervalDays = cardDescIntervalDays.Default.(int)
	// card.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	card.IntervalDaysValidator = cardDescIntervalDays.Validators[0].(func(int) error)
	// cardDescEaseFactor is the schema descriptor for ease_factor field.
	cardDescEaseFactor := cardFields[8].Descriptor()
	// card.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	card.DefaultEaseFactor = cardDescEaseFactor.Default.(float64)
	// card.EaseFactorValidator is a validator for the "ease_factor" field. It is called by the builders before save.
	card.EaseFactorValidator = cardDescEaseFactor.Validators[0].(func(float64) error)
	// cardDescReviewCount is the schema descriptor for review_count field.
	cardDescReviewCount := cardFields[9].Descriptor()
	// card.DefaultReviewCount holds the default value on creation for the review_count field.
	card.DefaultReviewCount = cardDescReviewCount.Default.(int)
	// card.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	card.ReviewCountValidator = cardDescReviewCount.Validators[0].(func(int) error)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[12].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescID is the schema descriptor for id field.
	cardDescID := cardFields[0].Descriptor()
	// card.DefaultID holds the default value on creation for the id field.
	card.DefaultID = cardDescID.Default.(func() uuid.UUID)
	errorrecordFields := schema.ErrorRecord{}.Fields()
	_ = errorrecordFields
	// errorrecordDescLearnerID is the schema descriptor for learner_id field.
	errorrecordDescLearnerID := errorrecordFields[1].Descriptor()
	// errorrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	errorrecord.LearnerIDValidator = errorrecordDescLearnerID.Validators[0].(func(string) error)
	// errorrecordDescErrorType is the schema descriptor for error_type field.
	errorrecordDescErrorType := errorrecordFields[2].Descriptor()
	// errorrecord.ErrorTypeValidator is a validator for the "error_type" field. It is called by the builders before save.
	errorrecord.ErrorTypeValidator = errorrecordDescErrorType.Validators[0].(func(string) error)
	// errorrecordDescUserSentence is the schema descriptor for user_sentence field.
	errorrecordDescUserSentence := errorrecordFields[3].Descriptor()
	// errorrecord.UserSentenceValidator is a validator for the "user_sentence" field. It is called by the builders before save.
	errorrecord.UserSentenceValidator = errorrecordDescUserSentence.Validators[0].(func(string) error)
	// errorrecordDescCorrectedSentence is the schema descriptor for corrected_sentence field.
	errorrecordDescCorrectedSentence := errorrecordFields[4].Descriptor()
	// errorrecord.CorrectedSentenceValidator is a validator for the "corrected_sentence" field. It is called by the builders before save.
	errorrecord.CorrectedSentenceValidator = errorrecordDescCorrectedSentence.Validators[0].(func(string) error)
	// errorrecordDescExplanation is the schema descriptor for explanation field.
	errorrecordDescExplanation := errorrecordFields[5].Descriptor()
	// errorrecord.ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	errorrecord.ExplanationValidator = errorrecordDescExplanation.Validators[0].(func(string) error)
	// errorrecordDescRecycled is the schema descriptor for recycled field.
	errorrecordDescRecycled := errorrecordFields[6].Descriptor()
	// errorrecord.DefaultRecycled holds the default value on creation for the recycled field.
	errorrecord.DefaultRecycled = errorrecordDescRecycled.Default.(bool)
	// errorrecordDescRecycledCount is the schema descriptor for recycled_count field.
	errorrecordDescRecycledCount := errorrecordFields[7].Descriptor()
	// errorrecord.DefaultRecycledCount holds the default value on creation for the recycled_count field.
	errorrecord.DefaultRecycledCount = errorrecordDescRecycledCount.Default.(int)
	// errorrecord.RecycledCountValidator is a validator for the "recycled_count" field. It is called by the builders before save.
	errorrecord.RecycledCountValidator = errorrecordDescRecycledCount.Validators[0].(func(int) error)
	// errorrecordDescCreatedAt is the schema descriptor for created_at field.
	errorrecordDescCreatedAt := errorrecordFields[8].Descriptor()
	// errorrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	errorrecord.DefaultCreatedAt = errorrecordDescCreatedAt.Default.(func() time.Time)
	// errorrecordDescID is the schema descriptor for id field.
	errorrecordDescID := errorrecordFields[0].Descriptor()
	// errorrecord.DefaultID holds the default value on creation for the id field.
	errorrecord.DefaultID = errorrecordDescID.Default.(func() uuid.UUID)
	observationeventMixin := schema.ObservationEvent{}.Mixin()
	observationeventMixinFields0 := observationeventMixin[0].Fields()
	_ = observationeventMixinFields0
	observationeventFields := schema.ObservationEvent{}.Fields()
	_ = observationeventFields
	// observationeventDescTimestamp is the schema descriptor for timestamp field.
	observationeventDescTimestamp := observationeventMixinFields0[1].Descriptor()
	// observationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	observationevent.DefaultTimestamp = observationeventDescTimestamp.Default.(func() time.Time)
	// observationeventDescLearnerID is the schema descriptor for learner_id field.
	observationeventDescLearnerID := observationeventFields[0].Descriptor()
	// observationevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	observationevent.LearnerIDValidator = observationeventDescLearnerID.Validators[0].(func(string) error)
	// observationeventDescSkillKey is the schema descriptor for skill_key field.
	observationeventDescSkillKey := observationeventFields[1].Descriptor()
	// observationevent.SkillKeyValidator is a validator for the "skill_key" field. It is called by the builders before save.
	observationevent.SkillKeyValidator = observationeventDescSkillKey.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescLearnerID is the schema descriptor for learner_id field.
	revieweventDescLearnerID := revieweventFields[1].Descriptor()
	// reviewevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewevent.LearnerIDValidator = revieweventDescLearnerID.Validators[0].(func(string) error)
	// revieweventDescQuality is the schema descriptor for quality field.
	revieweventDescQuality := revieweventFields[2].Descriptor()
	// reviewevent.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	reviewevent.QualityValidator = func() func(int) error {
		validators := revieweventDescQuality.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(quality int) error {
			for _, fn := range fns {
				if err := fn(quality); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// revieweventDescResponseTimeMs is the schema descriptor for response_time_ms field.
	revieweventDescResponseTimeMs := revieweventFields[3].Descriptor()
	// reviewevent.ResponseTimeMsValidator is a validator for the "response_time_ms" field. It is called by the builders before save.
	reviewevent.ResponseTimeMsValidator = revieweventDescResponseTimeMs.Validators[0].(func(int) error)
	skillnodeFields := schema.SkillNode{}.Fields()
	_ = skillnodeFields
	// skillnodeDescLearnerID is the schema descriptor for learner_id field.
	skillnodeDescLearnerID := skillnodeFields[0].Descriptor()
	// skillnode.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	skillnode.LearnerIDValidator = skillnodeDescLearnerID.Validators[0].(func(string) error)
	// skillnodeDescSkillKey is the schema descriptor for skill_key field.
	skillnodeDescSkillKey := skillnodeFields[1].Descriptor()
	// skillnode.SkillKeyValidator is a validator for the "skill_key" field. It is called by the builders before save.
	skillnode.SkillKeyValidator = skillnodeDescSkillKey.Validators[0].(func(string) error)
	// skillnodeDescPLearned is the schema descriptor for p_learned field.
	skillnodeDescPLearned := skillnodeFields[2].Descriptor()
	// skillnode.PLearnedValidator is a validator for the "p_learned" field. It is called by the builders before save.
	skillnode.PLearnedValidator = func() func(float64) error {
		validators := skillnodeDescPLearned.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(p_learned float64) error {
			for _, fn := range fns {
				if err := fn(p_learned); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// skillnodeDescPTransit is the schema descriptor for p_transit field.
	skillnodeDescPTransit := skillnodeFields[3].Descriptor()
	// skillnode.PTransitValidator is a validator for the "p_transit" field. It is called by the builders before save.
	skillnode.PTransitValidator = func() func(float64) error {
		validators := skillnodeDescPTransit.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(p_transit float64) error {
			for _, fn := range fns {
				if err := fn(p_transit); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// skillnodeDescPracticeCount is the schema descriptor for practice_count field.
	skillnodeDescPracticeCount := skillnodeFields[5].Descriptor()
	// skillnode.DefaultPracticeCount holds the default value on creation for the practice_count field.
	skillnode.DefaultPracticeCount = skillnodeDescPracticeCount.Default.(int)
	// skillnode.PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	skillnode.PracticeCountValidator = skillnodeDescPracticeCount.Validators[0].(func(int) error)
	// skillnodeDescSuccessCount is the schema descriptor for success_count field.
	skillnodeDescSuccessCount := skillnodeFields[6].Descriptor()
	// skillnode.DefaultSuccessCount holds the default value on creation for the success_count field.
	skillnode.DefaultSuccessCount = skillnodeDescSuccessCount.Default.(int)
	// skillnode.SuccessCountValidator is a validator for the "success_count" field. It is called by the builders before save.
	skillnode.SuccessCountValidator = skillnodeDescSuccessCount.Validators[0].(func(int) error)
	// skillnodeDescErrorCount is the schema descriptor for error_count field.
	skillnodeDescErrorCount := skillnodeFields[7].Descriptor()
	// skillnode.DefaultErrorCount holds the default value on creation for the error_count field.
	skillnode.DefaultErrorCount = skillnodeDescErrorCount.Default.(int)
	// skillnode.ErrorCountValidator is a validator for the "error_count" field. It is called by the builders before save.
	skillnode.ErrorCountValidator = skillnodeDescErrorCount.Validators[0].(func(int) error)
}
