// Package queue answers the two questions downstream features ask of
// the engine: what should this learner review next, and what are they
// worst at.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/matuskalis/speaksharp-engine/internal/bkt"
	"github.com/matuskalis/speaksharp-engine/internal/catalog"
	"github.com/matuskalis/speaksharp-engine/internal/store"
)

// Provider serves due-card and weakest-skill queries.
type Provider struct {
	cards  store.CardRepo
	skills store.SkillRepo
	log    *slog.Logger
	now    func() time.Time
}

// NewProvider creates a provider over the given repositories.
func NewProvider(cards store.CardRepo, skills store.SkillRepo, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{cards: cards, skills: skills, log: log, now: time.Now}
}

// Recommendation pairs a catalog skill with the learner's mastery state.
// Skills the learner has never practiced carry the BKT seed estimate and
// zero counts.
type Recommendation struct {
	Skill         catalog.Skill
	PLearned      float64
	MasteryScore  float64
	PracticeCount int
}

// GetDueCards returns cards with nextReviewAt <= now, oldest-overdue
// first; cards due at the identical instant are ordered by ID, which is
// the only defined priority between them.
func (p *Provider) GetDueCards(ctx context.Context, learnerID string, limit int) ([]*store.Card, error) {
	if err := checkQuery(learnerID, limit); err != nil {
		return nil, err
	}
	return p.cards.ListDue(ctx, learnerID, p.now().UTC(), limit)
}

// GetWeakestSkills returns the learner's skill nodes in ascending
// mastery order. Among equally weak skills the one with more observed
// failures surfaces first: remediation beats an untouched skill parked
// at the seed estimate.
func (p *Provider) GetWeakestSkills(ctx context.Context, learnerID string, limit int) ([]*store.SkillNode, error) {
	if err := checkQuery(learnerID, limit); err != nil {
		return nil, err
	}
	return p.skills.ListWeakest(ctx, learnerID, limit)
}

// GetRecommendedSkills merges the static catalog with the learner's
// skill nodes, treating an absent node as the untouched seed estimate.
// Ordering is ascending pLearned, then ascending static difficulty, so
// a brand-new easy skill is recommended ahead of one the learner has
// hammered on and is merely slow to master.
func (p *Provider) GetRecommendedSkills(ctx context.Context, learnerID string, limit int) ([]Recommendation, error) {
	if err := checkQuery(learnerID, limit); err != nil {
		return nil, err
	}

	nodes, err := p.skills.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]*store.SkillNode, len(nodes))
	for _, n := range nodes {
		byKey[n.SkillKey] = n
	}

	defs := catalog.AllSkills()
	recs := make([]Recommendation, 0, len(defs))
	for _, def := range defs {
		rec := Recommendation{
			Skill:        def,
			PLearned:     bkt.SeedPLearned,
			MasteryScore: bkt.Score(bkt.SeedPLearned),
		}
		if n, ok := byKey[def.Key]; ok {
			rec.PLearned = n.PLearned
			rec.MasteryScore = n.MasteryScore
			rec.PracticeCount = n.PracticeCount
		}
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].PLearned != recs[j].PLearned {
			return recs[i].PLearned < recs[j].PLearned
		}
		if recs[i].Skill.Difficulty != recs[j].Skill.Difficulty {
			return recs[i].Skill.Difficulty < recs[j].Skill.Difficulty
		}
		return recs[i].Skill.Key < recs[j].Skill.Key
	})

	if limit < len(recs) {
		recs = recs[:limit]
	}
	return recs, nil
}

func checkQuery(learnerID string, limit int) error {
	if learnerID == "" {
		return fmt.Errorf("%w: missing learner id", store.ErrInvalidInput)
	}
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", store.ErrInvalidInput, limit)
	}
	return nil
}
