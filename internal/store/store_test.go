package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

var dbCounter atomic.Int64

// openTestStore opens a uniquely named in-memory database so tests do
// not share state.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", dbCounter.Add(1))
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only checked against file-backed stores.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testCard(learnerID string, due time.Time) *Card {
	return &Card{
		LearnerID:    learnerID,
		CardType:     CardTypeDefinition,
		Front:        "meticulous",
		Back:         "showing great attention to detail",
		NextReviewAt: due,
		IntervalDays: 1,
		EaseFactor:   2.5,
	}
}

func TestCardCreateGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	due := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	created, err := s.Cards().Create(ctx, testCard("learner-1", due))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}

	got, err := s.Cards().Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Front != "meticulous" || got.CardType != CardTypeDefinition {
		t.Errorf("got %q/%q, want meticulous/definition", got.Front, got.CardType)
	}
	if !got.NextReviewAt.Equal(due) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, due)
	}
	if got.ReviewCount != 0 {
		t.Errorf("ReviewCount = %d, want 0", got.ReviewCount)
	}
}

func TestCardGetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Cards().Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListDue_OrderAndCutoff(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mk := func(due time.Time) *Card {
		c, err := s.Cards().Create(ctx, testCard("learner-1", due))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		return c
	}

	oldest := mk(now.Add(-72 * time.Hour))
	recent := mk(now.Add(-1 * time.Hour))
	exactlyNow := mk(now)
	mk(now.Add(time.Second)) // not yet due

	due, err := s.Cards().ListDue(ctx, "learner-1", now, 10)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 3 {
		t.Fatalf("got %d due cards, want 3", len(due))
	}
	wantOrder := []uuid.UUID{oldest.ID, recent.ID, exactlyNow.ID}
	for i, c := range due {
		if c.ID != wantOrder[i] {
			t.Errorf("due[%d] = %s, want %s", i, c.ID, wantOrder[i])
		}
	}

	// Limit trims from the tail.
	due, err = s.Cards().ListDue(ctx, "learner-1", now, 2)
	if err != nil {
		t.Fatalf("ListDue limit: %v", err)
	}
	if len(due) != 2 || due[0].ID != oldest.ID {
		t.Errorf("limited ListDue returned wrong window")
	}

	// Other learners do not leak in.
	due, err = s.Cards().ListDue(ctx, "learner-2", now, 10)
	if err != nil {
		t.Fatalf("ListDue other learner: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("learner-2 sees %d cards, want 0", len(due))
	}
}

func reviewUpdate(attemptID string, quality int, now time.Time) ReviewUpdate {
	return ReviewUpdate{
		AttemptID: attemptID,
		Quality:   quality,
		Correct:   quality >= 3,
		Now:       now,
		Apply: func(cur Card) Card {
			cur.IntervalDays = cur.IntervalDays * 2
			cur.EaseFactor = cur.EaseFactor + 0.01
			cur.NextReviewAt = now.AddDate(0, 0, cur.IntervalDays)
			return cur
		},
	}
}

func TestApplyReview_UpdatesCardAndAppendsEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	c, err := s.Cards().Create(ctx, testCard("learner-1", now))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Cards().ApplyReview(ctx, c.ID, reviewUpdate("", 4, now))
	if err != nil {
		t.Fatalf("ApplyReview: %v", err)
	}
	if got.IntervalDays != 2 {
		t.Errorf("IntervalDays = %d, want 2", got.IntervalDays)
	}
	if got.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", got.ReviewCount)
	}

	events, err := s.Events().QueryReviewEvents(ctx, "learner-1", QueryOpts{})
	if err != nil {
		t.Fatalf("QueryReviewEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.CardID != c.ID || e.Quality != 4 || !e.Correct {
		t.Errorf("event = %+v, want card %s quality 4 correct", e, c.ID)
	}
	if e.IntervalDays != 2 {
		t.Errorf("event IntervalDays = %d, want post-review 2", e.IntervalDays)
	}
}

func TestApplyReview_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Cards().ApplyReview(context.Background(), uuid.New(),
		reviewUpdate("", 4, time.Now().UTC()))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestApplyReview_DuplicateAttemptID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	c, err := s.Cards().Create(ctx, testCard("learner-1", now))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := s.Cards().ApplyReview(ctx, c.ID, reviewUpdate("attempt-1", 4, now)); err != nil {
		t.Fatalf("first ApplyReview: %v", err)
	}
	_, err = s.Cards().ApplyReview(ctx, c.ID, reviewUpdate("attempt-1", 4, now))
	if !errors.Is(err, ErrDuplicateAttempt) {
		t.Fatalf("second ApplyReview: err = %v, want ErrDuplicateAttempt", err)
	}

	// The duplicate left no trace: one event, one review counted.
	got, err := s.Cards().Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", got.ReviewCount)
	}
	events, err := s.Events().QueryReviewEvents(ctx, "learner-1", QueryOpts{})
	if err != nil {
		t.Fatalf("QueryReviewEvents: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}
}

func observationUpdate(attemptID string, correct bool, now time.Time) ObservationUpdate {
	return ObservationUpdate{
		AttemptID: attemptID,
		Correct:   correct,
		Now:       now,
		Seed:      SkillNode{PLearned: 0.1, PTransit: 0.15},
		Apply: func(prior SkillNode) SkillNode {
			prior.PLearned = prior.PLearned + 0.1
			prior.MasteryScore = prior.PLearned * 100
			prior.PracticeCount++
			if correct {
				prior.SuccessCount++
			} else {
				prior.ErrorCount++
			}
			prior.LastPracticedAt = now
			return prior
		},
	}
}

func TestApplyObservation_SeedsThenAccumulates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	node, err := s.Skills().ApplyObservation(ctx, "learner-1", "gram.articles",
		observationUpdate("", true, now))
	if err != nil {
		t.Fatalf("first ApplyObservation: %v", err)
	}
	if node.PLearned != 0.2 { // seed 0.1 + 0.1
		t.Errorf("PLearned = %g, want 0.2", node.PLearned)
	}
	if node.PTransit != 0.15 {
		t.Errorf("PTransit = %g, want seed 0.15", node.PTransit)
	}
	if node.PracticeCount != 1 {
		t.Errorf("PracticeCount = %d, want 1", node.PracticeCount)
	}

	for i := 0; i < 3; i++ {
		node, err = s.Skills().ApplyObservation(ctx, "learner-1", "gram.articles",
			observationUpdate("", i%2 == 0, now))
		if err != nil {
			t.Fatalf("ApplyObservation #%d: %v", i+2, err)
		}
	}
	if node.PracticeCount != 4 {
		t.Errorf("PracticeCount = %d, want 4", node.PracticeCount)
	}

	// Exactly one row exists for the pair.
	nodes, err := s.Skills().ListByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("ListByLearner: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	if nodes[0].SuccessCount != 3 || nodes[0].ErrorCount != 1 {
		t.Errorf("counts = %d/%d, want 3/1", nodes[0].SuccessCount, nodes[0].ErrorCount)
	}
}

func TestApplyObservation_DuplicateAttemptID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := s.Skills().ApplyObservation(ctx, "learner-1", "gram.articles",
		observationUpdate("obs-1", true, now)); err != nil {
		t.Fatalf("first ApplyObservation: %v", err)
	}
	_, err := s.Skills().ApplyObservation(ctx, "learner-1", "gram.articles",
		observationUpdate("obs-1", true, now))
	if !errors.Is(err, ErrDuplicateAttempt) {
		t.Fatalf("err = %v, want ErrDuplicateAttempt", err)
	}

	node, err := s.Skills().Get(ctx, "learner-1", "gram.articles")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if node.PracticeCount != 1 {
		t.Errorf("PracticeCount = %d, want 1 after duplicate", node.PracticeCount)
	}
}

func TestListWeakest_Ordering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Build three nodes with controlled mastery and error counts by
	// replaying observation closures.
	seed := func(skill string, mastery float64, errCount int) {
		upd := ObservationUpdate{
			Now:  now,
			Seed: SkillNode{PLearned: mastery / 100, PTransit: 0.15},
			Apply: func(prior SkillNode) SkillNode {
				prior.MasteryScore = mastery
				prior.PracticeCount++
				prior.ErrorCount = errCount
				prior.LastPracticedAt = now
				return prior
			},
		}
		if _, err := s.Skills().ApplyObservation(ctx, "learner-1", skill, upd); err != nil {
			t.Fatalf("seed %s: %v", skill, err)
		}
	}

	seed("gram.articles", 40, 2)
	seed("gram.past-simple", 10, 0)
	seed("vocab.idioms", 10, 5) // weakest tie, more failures

	nodes, err := s.Skills().ListWeakest(ctx, "learner-1", 10)
	if err != nil {
		t.Fatalf("ListWeakest: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	wantOrder := []string{"vocab.idioms", "gram.past-simple", "gram.articles"}
	for i, n := range nodes {
		if n.SkillKey != wantOrder[i] {
			t.Errorf("nodes[%d] = %s, want %s", i, n.SkillKey, wantOrder[i])
		}
	}

	// Limit returns the weakest prefix.
	nodes, err = s.Skills().ListWeakest(ctx, "learner-1", 1)
	if err != nil {
		t.Fatalf("ListWeakest limit: %v", err)
	}
	if len(nodes) != 1 || nodes[0].SkillKey != "vocab.idioms" {
		t.Errorf("limited ListWeakest = %v, want vocab.idioms only", nodes)
	}
}

func TestErrorRecordLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.Errors().Create(ctx, &ErrorRecord{
		LearnerID:         "learner-1",
		ErrorType:         "preposition",
		UserSentence:      "I am good in English.",
		CorrectedSentence: "I am good at English.",
		Explanation:       "good takes the preposition at",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Recycled {
		t.Error("new record already marked recycled")
	}

	pending, err := s.Errors().ListPending(ctx, "learner-1", 10)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != rec.ID {
		t.Fatalf("pending = %v, want the new record", pending)
	}

	now := time.Now().UTC()
	card, err := s.Errors().Recycle(ctx, rec.ID, func(r ErrorRecord) Card {
		return Card{
			LearnerID:    r.LearnerID,
			CardType:     CardTypeErrorRepair,
			Front:        "Fix this sentence: " + r.UserSentence,
			Back:         r.CorrectedSentence,
			NextReviewAt: now,
			IntervalDays: 1,
			EaseFactor:   2.5,
			Source:       "error_record",
			SourceID:     r.ID.String(),
		}
	})
	if err != nil {
		t.Fatalf("Recycle: %v", err)
	}
	if card.CardType != CardTypeErrorRepair {
		t.Errorf("CardType = %q, want error_repair", card.CardType)
	}
	if card.SourceID != rec.ID.String() {
		t.Errorf("SourceID = %q, want %s", card.SourceID, rec.ID)
	}

	// The card is immediately due and the record left the pending list.
	due, err := s.Cards().ListDue(ctx, "learner-1", now, 10)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 1 || due[0].ID != card.ID {
		t.Errorf("due = %v, want the recycled card", due)
	}
	pending, err = s.Errors().ListPending(ctx, "learner-1", 10)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending = %d records, want 0", len(pending))
	}

	got, err := s.Errors().Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Recycled || got.RecycledCount != 1 {
		t.Errorf("record = recycled=%t count=%d, want true/1", got.Recycled, got.RecycledCount)
	}
}

func TestRecycle_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Errors().Recycle(context.Background(), uuid.New(), func(r ErrorRecord) Card {
		return Card{}
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEventSequence_CrossTypeOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	c, err := s.Cards().Create(ctx, testCard("learner-1", now))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Interleave reviews and observations; sequences must be strictly
	// increasing across both tables.
	if _, err := s.Cards().ApplyReview(ctx, c.ID, reviewUpdate("", 4, now)); err != nil {
		t.Fatalf("ApplyReview: %v", err)
	}
	if _, err := s.Skills().ApplyObservation(ctx, "learner-1", "gram.articles",
		observationUpdate("", true, now)); err != nil {
		t.Fatalf("ApplyObservation: %v", err)
	}
	if _, err := s.Cards().ApplyReview(ctx, c.ID, reviewUpdate("", 2, now)); err != nil {
		t.Fatalf("second ApplyReview: %v", err)
	}

	reviews, err := s.Events().QueryReviewEvents(ctx, "learner-1", QueryOpts{})
	if err != nil {
		t.Fatalf("QueryReviewEvents: %v", err)
	}
	obs, err := s.Events().QueryObservationEvents(ctx, "learner-1", "", QueryOpts{})
	if err != nil {
		t.Fatalf("QueryObservationEvents: %v", err)
	}
	if len(reviews) != 2 || len(obs) != 1 {
		t.Fatalf("got %d reviews, %d observations, want 2/1", len(reviews), len(obs))
	}

	// reviews come back newest-first
	if reviews[0].Sequence <= reviews[1].Sequence {
		t.Errorf("review events not in descending sequence order")
	}
	if !(reviews[1].Sequence < obs[0].Sequence && obs[0].Sequence < reviews[0].Sequence) {
		t.Errorf("cross-type ordering broken: reviews %d,%d observation %d",
			reviews[1].Sequence, reviews[0].Sequence, obs[0].Sequence)
	}
}

func TestReviewAccuracy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Empty log: zero accuracy, zero count.
	acc, n, err := s.Events().ReviewAccuracy(ctx, "learner-1")
	if err != nil {
		t.Fatalf("ReviewAccuracy: %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("empty log: accuracy %g count %d, want 0/0", acc, n)
	}

	c, err := s.Cards().Create(ctx, testCard("learner-1", now))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, q := range []int{5, 4, 1, 3} {
		if _, err := s.Cards().ApplyReview(ctx, c.ID, reviewUpdate("", q, now)); err != nil {
			t.Fatalf("ApplyReview q=%d: %v", q, err)
		}
	}

	acc, n, err = s.Events().ReviewAccuracy(ctx, "learner-1")
	if err != nil {
		t.Fatalf("ReviewAccuracy: %v", err)
	}
	if n != 4 {
		t.Errorf("count = %d, want 4", n)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %g, want 0.75", acc)
	}
}
