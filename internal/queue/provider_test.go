package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matuskalis/speaksharp-engine/internal/bkt"
	"github.com/matuskalis/speaksharp-engine/internal/catalog"
	"github.com/matuskalis/speaksharp-engine/internal/store"
)

type fakeCardRepo struct {
	store.CardRepo
	due []*store.Card
}

func (f *fakeCardRepo) ListDue(ctx context.Context, learnerID string, now time.Time, limit int) ([]*store.Card, error) {
	if limit > len(f.due) {
		limit = len(f.due)
	}
	return f.due[:limit], nil
}

type fakeSkillRepo struct {
	store.SkillRepo
	nodes []*store.SkillNode
}

func (f *fakeSkillRepo) ListByLearner(ctx context.Context, learnerID string) ([]*store.SkillNode, error) {
	return f.nodes, nil
}

func (f *fakeSkillRepo) ListWeakest(ctx context.Context, learnerID string, limit int) ([]*store.SkillNode, error) {
	if limit > len(f.nodes) {
		limit = len(f.nodes)
	}
	return f.nodes[:limit], nil
}

func TestGetDueCards_ValidatesQuery(t *testing.T) {
	p := NewProvider(&fakeCardRepo{}, &fakeSkillRepo{}, nil)
	ctx := context.Background()

	_, err := p.GetDueCards(ctx, "", 10)
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("empty learner: err = %v, want ErrInvalidInput", err)
	}
	for _, limit := range []int{0, -1} {
		_, err := p.GetDueCards(ctx, "learner-1", limit)
		if !errors.Is(err, store.ErrInvalidInput) {
			t.Errorf("limit %d: err = %v, want ErrInvalidInput", limit, err)
		}
	}
}

func TestGetDueCards_PassesThrough(t *testing.T) {
	due := []*store.Card{{ID: uuid.New()}, {ID: uuid.New()}}
	p := NewProvider(&fakeCardRepo{due: due}, &fakeSkillRepo{}, nil)

	got, err := p.GetDueCards(context.Background(), "learner-1", 1)
	if err != nil {
		t.Fatalf("GetDueCards: %v", err)
	}
	if len(got) != 1 || got[0].ID != due[0].ID {
		t.Errorf("got %d cards, want the first due card", len(got))
	}
}

func TestGetWeakestSkills_ValidatesQuery(t *testing.T) {
	p := NewProvider(&fakeCardRepo{}, &fakeSkillRepo{}, nil)
	_, err := p.GetWeakestSkills(context.Background(), "learner-1", 0)
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetRecommendedSkills_UnpracticedUseSeedEstimate(t *testing.T) {
	p := NewProvider(&fakeCardRepo{}, &fakeSkillRepo{}, nil)

	recs, err := p.GetRecommendedSkills(context.Background(), "learner-1", len(catalog.AllSkills()))
	if err != nil {
		t.Fatalf("GetRecommendedSkills: %v", err)
	}
	if len(recs) != len(catalog.AllSkills()) {
		t.Fatalf("got %d recommendations, want full catalog %d", len(recs), len(catalog.AllSkills()))
	}
	for _, r := range recs {
		if r.PLearned != bkt.SeedPLearned {
			t.Errorf("%s: PLearned = %g, want seed %g", r.Skill.Key, r.PLearned, bkt.SeedPLearned)
		}
		if r.PracticeCount != 0 {
			t.Errorf("%s: PracticeCount = %d, want 0", r.Skill.Key, r.PracticeCount)
		}
	}

	// With every skill at the seed estimate the order falls back to
	// ascending static difficulty.
	for i := 1; i < len(recs); i++ {
		if recs[i].Skill.Difficulty < recs[i-1].Skill.Difficulty {
			t.Fatalf("difficulty order broken at %d: %g after %g",
				i, recs[i].Skill.Difficulty, recs[i-1].Skill.Difficulty)
		}
	}
}

func TestGetRecommendedSkills_PracticedSkillsMergeAndSort(t *testing.T) {
	skills := &fakeSkillRepo{nodes: []*store.SkillNode{
		{SkillKey: "gram.present-simple", PLearned: 0.9, MasteryScore: 90, PracticeCount: 12},
		{SkillKey: "vocab.idioms", PLearned: 0.05, MasteryScore: 5, PracticeCount: 3},
	}}
	p := NewProvider(&fakeCardRepo{}, skills, nil)

	recs, err := p.GetRecommendedSkills(context.Background(), "learner-1", len(catalog.AllSkills()))
	if err != nil {
		t.Fatalf("GetRecommendedSkills: %v", err)
	}

	// The struggling practiced skill outranks every unpracticed one.
	if recs[0].Skill.Key != "vocab.idioms" {
		t.Errorf("recs[0] = %s, want vocab.idioms (pLearned 0.05)", recs[0].Skill.Key)
	}
	if recs[0].PracticeCount != 3 {
		t.Errorf("recs[0].PracticeCount = %d, want 3", recs[0].PracticeCount)
	}

	// The near-mastered skill sorts last.
	last := recs[len(recs)-1]
	if last.Skill.Key != "gram.present-simple" {
		t.Errorf("last = %s, want gram.present-simple (pLearned 0.9)", last.Skill.Key)
	}
}

func TestGetRecommendedSkills_LimitApplied(t *testing.T) {
	p := NewProvider(&fakeCardRepo{}, &fakeSkillRepo{}, nil)
	recs, err := p.GetRecommendedSkills(context.Background(), "learner-1", 3)
	if err != nil {
		t.Fatalf("GetRecommendedSkills: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("got %d recommendations, want 3", len(recs))
	}
}
