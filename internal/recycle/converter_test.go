package recycle

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

type fakeErrorRepo struct {
	store.ErrorRepo
	recs  map[uuid.UUID]store.ErrorRecord
	cards []store.Card
}

func newFakeErrorRepo() *fakeErrorRepo {
	return &fakeErrorRepo{recs: make(map[uuid.UUID]store.ErrorRecord)}
}

func (f *fakeErrorRepo) Recycle(ctx context.Context, id uuid.UUID, build func(rec store.ErrorRecord) store.Card) (*store.Card, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	card := build(rec)
	card.ID = uuid.New()
	rec.Recycled = true
	rec.RecycledCount++
	f.recs[id] = rec
	f.cards = append(f.cards, card)
	return &card, nil
}

func seedRecord(f *fakeErrorRepo) store.ErrorRecord {
	rec := store.ErrorRecord{
		ID:                uuid.New(),
		LearnerID:         "learner-1",
		ErrorType:         "verb-tense",
		UserSentence:      "Yesterday I go to the store.",
		CorrectedSentence: "Yesterday I went to the store.",
		Explanation:       "Past events take the past simple.",
	}
	f.recs[rec.ID] = rec
	return rec
}

func TestConvert_BuildsErrorRepairCard(t *testing.T) {
	repo := newFakeErrorRepo()
	rec := seedRecord(repo)
	c := NewConverter(repo, nil)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	card, err := c.Convert(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if card.CardType != store.CardTypeErrorRepair {
		t.Errorf("CardType = %q, want error_repair", card.CardType)
	}
	if card.Front != "Fix this sentence: Yesterday I go to the store." {
		t.Errorf("Front = %q", card.Front)
	}
	if !strings.Contains(card.Back, rec.CorrectedSentence) {
		t.Errorf("Back %q missing corrected sentence", card.Back)
	}
	if !strings.Contains(card.Back, rec.Explanation) {
		t.Errorf("Back %q missing explanation", card.Back)
	}
	if card.Difficulty != RemediationDifficulty {
		t.Errorf("Difficulty = %g, want %g", card.Difficulty, RemediationDifficulty)
	}
	if !card.NextReviewAt.Equal(now) {
		t.Errorf("NextReviewAt = %v, want %v (immediately due)", card.NextReviewAt, now)
	}
	if card.IntervalDays != 1 || card.EaseFactor != 2.5 {
		t.Errorf("schedule = %dd/%g, want fresh 1d/2.5", card.IntervalDays, card.EaseFactor)
	}
	if card.Source != "error_record" || card.SourceID != rec.ID.String() {
		t.Errorf("provenance = %q/%q, want error_record/%s", card.Source, card.SourceID, rec.ID)
	}
}

func TestConvert_MarksRecordRecycled(t *testing.T) {
	repo := newFakeErrorRepo()
	rec := seedRecord(repo)
	c := NewConverter(repo, nil)

	if _, err := c.Convert(context.Background(), rec.ID); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	got := repo.recs[rec.ID]
	if !got.Recycled {
		t.Error("record not marked recycled")
	}
	if got.RecycledCount != 1 {
		t.Errorf("RecycledCount = %d, want 1", got.RecycledCount)
	}
}

func TestConvert_RepeatedConversionAllowed(t *testing.T) {
	repo := newFakeErrorRepo()
	rec := seedRecord(repo)
	c := NewConverter(repo, nil)
	ctx := context.Background()

	first, err := c.Convert(ctx, rec.ID)
	if err != nil {
		t.Fatalf("first Convert: %v", err)
	}
	second, err := c.Convert(ctx, rec.ID)
	if err != nil {
		t.Fatalf("second Convert: %v", err)
	}
	if first.ID == second.ID {
		t.Error("expected two independent cards")
	}
	if repo.recs[rec.ID].RecycledCount != 2 {
		t.Errorf("RecycledCount = %d, want 2", repo.recs[rec.ID].RecycledCount)
	}
}

func TestConvert_UnknownRecord(t *testing.T) {
	c := NewConverter(newFakeErrorRepo(), nil)
	_, err := c.Convert(context.Background(), uuid.New())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestConvert_NilID(t *testing.T) {
	c := NewConverter(newFakeErrorRepo(), nil)
	_, err := c.Convert(context.Background(), uuid.Nil)
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
