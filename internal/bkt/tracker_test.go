package bkt

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

// fakeSkillRepo upserts nodes in memory the way the transactional
// repository does: missing nodes start from Seed.
type fakeSkillRepo struct {
	store.SkillRepo
	nodes map[string]store.SkillNode
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{nodes: make(map[string]store.SkillNode)}
}

func (f *fakeSkillRepo) ApplyObservation(ctx context.Context, learnerID, skillKey string, upd store.ObservationUpdate) (*store.SkillNode, error) {
	key := learnerID + "/" + skillKey
	prior, ok := f.nodes[key]
	if !ok {
		prior = upd.Seed
		prior.LearnerID = learnerID
		prior.SkillKey = skillKey
	}
	next := upd.Apply(prior)
	f.nodes[key] = next
	return &next, nil
}

func (f *fakeSkillRepo) Get(ctx context.Context, learnerID, skillKey string) (*store.SkillNode, error) {
	n, ok := f.nodes[learnerID+"/"+skillKey]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &n, nil
}

func TestObserve_SeedsMissingNode(t *testing.T) {
	repo := newFakeSkillRepo()
	tr := NewTracker(repo, DefaultParams(), nil)

	node, err := tr.Observe(context.Background(), ObserveInput{
		LearnerID: "learner-1",
		SkillKey:  "gram.present-simple",
		Correct:   true,
	})
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if math.Abs(node.PLearned-0.43333333) > 1e-6 {
		t.Errorf("PLearned = %g, want 0.43333", node.PLearned)
	}
	if math.Abs(node.MasteryScore-43.333333) > 1e-4 {
		t.Errorf("MasteryScore = %g, want 43.333", node.MasteryScore)
	}
	if node.PTransit != SeedPTransit {
		t.Errorf("PTransit = %g, want %g", node.PTransit, SeedPTransit)
	}
	if node.PracticeCount != 1 || node.SuccessCount != 1 || node.ErrorCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 1/1/0",
			node.PracticeCount, node.SuccessCount, node.ErrorCount)
	}
	if node.LastPracticedAt.IsZero() {
		t.Error("LastPracticedAt not set")
	}
}

func TestObserve_CountersAccumulate(t *testing.T) {
	repo := newFakeSkillRepo()
	tr := NewTracker(repo, DefaultParams(), nil)
	ctx := context.Background()

	in := ObserveInput{LearnerID: "learner-1", SkillKey: "vocab.phrasal-verbs"}
	outcomes := []bool{true, true, false, true}
	var last *store.SkillNode
	for _, correct := range outcomes {
		in.Correct = correct
		var err error
		last, err = tr.Observe(ctx, in)
		if err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}

	if last.PracticeCount != 4 {
		t.Errorf("PracticeCount = %d, want 4", last.PracticeCount)
	}
	if last.SuccessCount != 3 {
		t.Errorf("SuccessCount = %d, want 3", last.SuccessCount)
	}
	if last.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", last.ErrorCount)
	}
	if math.Abs(last.MasteryScore-Score(last.PLearned)) > 1e-9 {
		t.Errorf("MasteryScore = %g out of sync with PLearned %g",
			last.MasteryScore, last.PLearned)
	}
}

func TestObserve_ValidatesInput(t *testing.T) {
	tr := NewTracker(newFakeSkillRepo(), DefaultParams(), nil)
	ctx := context.Background()

	_, err := tr.Observe(ctx, ObserveInput{SkillKey: "gram.articles"})
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("missing learner: err = %v, want ErrInvalidInput", err)
	}
	_, err = tr.Observe(ctx, ObserveInput{LearnerID: "learner-1"})
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("missing skill: err = %v, want ErrInvalidInput", err)
	}
}

func TestMastery_UnknownSkill(t *testing.T) {
	tr := NewTracker(newFakeSkillRepo(), DefaultParams(), nil)
	_, err := tr.Mastery(context.Background(), "learner-1", "gram.articles")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
