package srs

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

// fakeCardRepo applies ReviewUpdate closures against an in-memory card,
// mimicking the transactional repository.
type fakeCardRepo struct {
	store.CardRepo
	card    store.Card
	lastUpd store.ReviewUpdate
}

func (f *fakeCardRepo) ApplyReview(ctx context.Context, cardID uuid.UUID, upd store.ReviewUpdate) (*store.Card, error) {
	if cardID != f.card.ID {
		return nil, store.ErrNotFound
	}
	f.lastUpd = upd
	next := upd.Apply(f.card)
	next.ReviewCount = f.card.ReviewCount + 1
	f.card = next
	return &next, nil
}

func newTestCard() store.Card {
	return store.Card{
		ID:           uuid.New(),
		LearnerID:    "learner-1",
		CardType:     store.CardTypeDefinition,
		Front:        "ubiquitous",
		Back:         "found everywhere",
		NextReviewAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		IntervalDays: 1,
		EaseFactor:   2.5,
	}
}

func TestRecordReview_PassReschedules(t *testing.T) {
	repo := &fakeCardRepo{card: newTestCard()}
	s := NewScheduler(repo, nil)
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	got, err := s.RecordReview(context.Background(), ReviewInput{
		CardID:  repo.card.ID,
		Quality: 4,
	})
	if err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	if got.IntervalDays != 3 {
		t.Errorf("IntervalDays = %d, want 3", got.IntervalDays)
	}
	if math.Abs(got.EaseFactor-2.5) > 1e-9 {
		t.Errorf("EaseFactor = %g, want 2.5", got.EaseFactor)
	}
	want := now.AddDate(0, 0, 3)
	if !got.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, want)
	}
	if got.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", got.ReviewCount)
	}
}

func TestRecordReview_FailResets(t *testing.T) {
	card := newTestCard()
	card.IntervalDays = 30
	card.EaseFactor = 2.1
	repo := &fakeCardRepo{card: card}
	s := NewScheduler(repo, nil)
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	got, err := s.RecordReview(context.Background(), ReviewInput{
		CardID:  card.ID,
		Quality: 1,
	})
	if err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	if got.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", got.IntervalDays)
	}
	if math.Abs(got.EaseFactor-1.9) > 1e-9 {
		t.Errorf("EaseFactor = %g, want 1.9", got.EaseFactor)
	}
	if !got.NextReviewAt.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("NextReviewAt = %v, want next day", got.NextReviewAt)
	}
}

func TestRecordReview_RejectsBeforeStore(t *testing.T) {
	repo := &fakeCardRepo{card: newTestCard()}
	s := NewScheduler(repo, nil)

	_, err := s.RecordReview(context.Background(), ReviewInput{CardID: repo.card.ID, Quality: 7})
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("quality 7: err = %v, want ErrInvalidInput", err)
	}
	if repo.card.ReviewCount != 0 {
		t.Errorf("card was mutated on invalid input")
	}

	_, err = s.RecordReview(context.Background(), ReviewInput{Quality: 4})
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("nil card id: err = %v, want ErrInvalidInput", err)
	}
}

func TestRecordReview_ForwardsAttemptID(t *testing.T) {
	repo := &fakeCardRepo{card: newTestCard()}
	s := NewScheduler(repo, nil)

	_, err := s.RecordReview(context.Background(), ReviewInput{
		CardID:    repo.card.ID,
		Quality:   5,
		AttemptID: "attempt-42",
	})
	if err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	if repo.lastUpd.AttemptID != "attempt-42" {
		t.Errorf("AttemptID = %q, want attempt-42", repo.lastUpd.AttemptID)
	}
	if repo.lastUpd.Quality != 5 {
		t.Errorf("Quality = %d, want 5", repo.lastUpd.Quality)
	}
}
