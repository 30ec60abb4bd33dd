package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

var dbCounter atomic.Int64

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:enginetest%d?mode=memory&cache=shared", dbCounter.Add(1))
	st, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return New(st, Options{})
}

func TestCreateCardAndReviewFlow(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	card, err := eng.CreateCard(ctx, CreateCardInput{
		LearnerID: "learner-1",
		CardType:  "cloze",
		Front:     "She ___ (go) to work every day.",
		Back:      "goes",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, card.IntervalDays)
	assert.Equal(t, 2.5, card.EaseFactor)

	// Fresh cards are immediately due.
	due, err := eng.GetDueCards(ctx, "learner-1", 10)
	require.NoError(t, err)
	require.Len(t, due, 1)

	reviewed, err := eng.RecordReview(ctx, ReviewInput{
		CardID:  card.ID,
		Quality: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, reviewed.IntervalDays)
	assert.Equal(t, 1, reviewed.ReviewCount)

	// Rescheduled into the future, so the queue empties.
	due, err = eng.GetDueCards(ctx, "learner-1", 10)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestCreateCard_Validation(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateCardInput
	}{
		{"missing learner", CreateCardInput{CardType: "cloze", Front: "f", Back: "b"}},
		{"bad card type", CreateCardInput{LearnerID: "l", CardType: "essay", Front: "f", Back: "b"}},
		{"missing front", CreateCardInput{LearnerID: "l", CardType: "cloze", Back: "b"}},
		{"missing back", CreateCardInput{LearnerID: "l", CardType: "cloze", Front: "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.CreateCard(ctx, tt.in)
			assert.ErrorIs(t, err, store.ErrInvalidInput)
		})
	}
}

func TestRecordReview_Validation(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.RecordReview(ctx, ReviewInput{CardID: uuid.New(), Quality: 6})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = eng.RecordReview(ctx, ReviewInput{Quality: 4})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = eng.RecordReview(ctx, ReviewInput{CardID: uuid.New(), Quality: 4})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecordReview_CorrectIndependentOfQuality(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	card, err := eng.CreateCard(ctx, CreateCardInput{
		LearnerID: "learner-1",
		CardType:  "pronunciation",
		Front:     "thorough",
		Back:      "/ˈθʌr.ə/",
	})
	require.NoError(t, err)

	// A passing grade with an incorrect response: the caller's verdict
	// goes into the event log as given, it is never derived from quality.
	_, err = eng.RecordReview(ctx, ReviewInput{
		CardID:  card.ID,
		Quality: 4,
		Correct: false,
	})
	require.NoError(t, err)

	events, err := eng.Events().QueryReviewEvents(ctx, "learner-1", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 4, events[0].Quality)
	assert.False(t, events[0].Correct)

	// And the converse: a failing grade with a correct response.
	_, err = eng.RecordReview(ctx, ReviewInput{
		CardID:  card.ID,
		Quality: 1,
		Correct: true,
	})
	require.NoError(t, err)

	events, err = eng.Events().QueryReviewEvents(ctx, "learner-1", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].Correct)
}

func TestObserveSkill_FlowAndValidation(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	node, err := eng.ObserveSkill(ctx, ObserveInput{
		LearnerID: "learner-1",
		SkillKey:  "gram.past-simple",
		Correct:   true,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.4333, node.PLearned, 0.0001)
	assert.Equal(t, 1, node.PracticeCount)

	got, err := eng.Mastery(ctx, "learner-1", "gram.past-simple")
	require.NoError(t, err)
	assert.Equal(t, node.PLearned, got.PLearned)

	// A key outside the catalog is rejected before it can seed a node.
	_, err = eng.ObserveSkill(ctx, ObserveInput{
		LearnerID: "learner-1",
		SkillKey:  "gram.subjunctive-pluperfect",
		Correct:   true,
	})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = eng.ObserveSkill(ctx, ObserveInput{SkillKey: "gram.past-simple"})
	assert.ErrorIs(t, err, store.ErrInvalidInput)
}

func TestObserveSkill_IdempotentRetry(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	in := ObserveInput{
		LearnerID: "learner-1",
		SkillKey:  "vocab.collocations",
		Correct:   true,
		AttemptID: "attempt-1",
	}
	_, err := eng.ObserveSkill(ctx, in)
	require.NoError(t, err)

	_, err = eng.ObserveSkill(ctx, in)
	assert.ErrorIs(t, err, store.ErrDuplicateAttempt)

	node, err := eng.Mastery(ctx, "learner-1", "vocab.collocations")
	require.NoError(t, err)
	assert.Equal(t, 1, node.PracticeCount)
}

func TestErrorToCardFlow(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	rec, err := eng.RecordError(ctx, RecordErrorInput{
		LearnerID:         "learner-1",
		ErrorType:         "verb-tense",
		UserSentence:      "Yesterday I go home.",
		CorrectedSentence: "Yesterday I went home.",
		Explanation:       "Past events take the past simple.",
	})
	require.NoError(t, err)

	pending, err := eng.PendingErrors(ctx, "learner-1", 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	card, err := eng.ConvertError(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, store.CardTypeErrorRepair, card.CardType)
	assert.Contains(t, card.Front, "Yesterday I go home.")

	pending, err = eng.PendingErrors(ctx, "learner-1", 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// The recycled card enters the due queue immediately.
	due, err := eng.GetDueCards(ctx, "learner-1", 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, card.ID, due[0].ID)
}

func TestRecordError_Validation(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.RecordError(context.Background(), RecordErrorInput{
		LearnerID:    "learner-1",
		ErrorType:    "verb-tense",
		UserSentence: "Yesterday I go home.",
		// corrected sentence and explanation missing
	})
	assert.ErrorIs(t, err, store.ErrInvalidInput)
}

func TestGetRecommendedSkills_CoversCatalog(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	recs, err := eng.GetRecommendedSkills(ctx, "learner-1", 5)
	require.NoError(t, err)
	require.Len(t, recs, 5)
	for _, r := range recs {
		assert.Zero(t, r.PracticeCount)
	}

	// Practicing a skill to near-mastery pushes it out of the top
	// recommendations.
	for i := 0; i < 20; i++ {
		_, err := eng.ObserveSkill(ctx, ObserveInput{
			LearnerID: "learner-1",
			SkillKey:  recs[0].Skill.Key,
			Correct:   true,
		})
		require.NoError(t, err)
	}
	after, err := eng.GetRecommendedSkills(ctx, "learner-1", 5)
	require.NoError(t, err)
	for _, r := range after {
		assert.NotEqual(t, recs[0].Skill.Key, r.Skill.Key)
	}
}
