package intake

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

type fakeErrorRepo struct {
	store.ErrorRepo
	created []store.ErrorRecord
}

func (f *fakeErrorRepo) Create(ctx context.Context, rec *store.ErrorRecord) (*store.ErrorRecord, error) {
	out := *rec
	out.ID = uuid.New()
	f.created = append(f.created, out)
	return &out, nil
}

const validBatch = `{
	"learner_id": "learner-1",
	"errors": [
		{
			"error_type": "verb-tense",
			"user_sentence": "Yesterday I go home.",
			"corrected_sentence": "Yesterday I went home.",
			"explanation": "Past events take the past simple."
		},
		{
			"error_type": "preposition",
			"user_sentence": "I am good in English.",
			"corrected_sentence": "I am good at English.",
			"explanation": "good takes the preposition at"
		}
	]
}`

func TestImport_ValidBatch(t *testing.T) {
	repo := &fakeErrorRepo{}
	im := NewImporter(repo, nil)

	recs, err := im.Import(context.Background(), strings.NewReader(validBatch))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if repo.created[0].LearnerID != "learner-1" {
		t.Errorf("LearnerID = %q, want learner-1", repo.created[0].LearnerID)
	}
	if repo.created[1].ErrorType != "preposition" {
		t.Errorf("ErrorType = %q, want preposition", repo.created[1].ErrorType)
	}
}

func TestImport_EmptyErrorListIsValid(t *testing.T) {
	repo := &fakeErrorRepo{}
	im := NewImporter(repo, nil)

	recs, err := im.Import(context.Background(), strings.NewReader(`{"learner_id": "l", "errors": []}`))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
}

func TestImport_RejectsBadBatches(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{nope`},
		{"missing learner id", `{"errors": []}`},
		{"empty learner id", `{"learner_id": "", "errors": []}`},
		{"missing errors field", `{"learner_id": "l"}`},
		{"entry missing correction", `{
			"learner_id": "l",
			"errors": [{"error_type": "t", "user_sentence": "s", "explanation": "e"}]
		}`},
		{"entry with empty sentence", `{
			"learner_id": "l",
			"errors": [{"error_type": "t", "user_sentence": "", "corrected_sentence": "c", "explanation": "e"}]
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeErrorRepo{}
			im := NewImporter(repo, nil)

			_, err := im.Import(context.Background(), strings.NewReader(tt.body))
			if !errors.Is(err, store.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
			if len(repo.created) != 0 {
				t.Errorf("%d records inserted from invalid batch", len(repo.created))
			}
		})
	}
}
