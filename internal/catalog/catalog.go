package catalog

import (
	"fmt"
	"sort"
)

// catalog holds the skill set with precomputed indices.
type catalog struct {
	skills   []Skill
	byKey    map[string]*Skill
	byStrand map[Strand][]Skill
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

func buildCatalog(skills []Skill) *catalog {
	ct := &catalog{
		skills:   skills,
		byKey:    make(map[string]*Skill, len(skills)),
		byStrand: make(map[Strand][]Skill),
	}
	for i := range ct.skills {
		ct.byKey[ct.skills[i].Key] = &ct.skills[i]
		ct.byStrand[ct.skills[i].Strand] = append(ct.byStrand[ct.skills[i].Strand], ct.skills[i])
	}
	return ct
}

// AllSkills returns every skill definition, sorted by key.
func AllSkills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// GetSkill returns the definition for a skill key.
func GetSkill(key string) (Skill, error) {
	s, ok := c.byKey[key]
	if !ok {
		return Skill{}, fmt.Errorf("unknown skill %q", key)
	}
	return *s, nil
}

// Known reports whether the key names a catalog skill.
func Known(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// ByStrand returns all skills in a strand, sorted by ascending difficulty.
func ByStrand(s Strand) []Skill {
	skills := make([]Skill, len(c.byStrand[s]))
	copy(skills, c.byStrand[s])
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Difficulty != skills[j].Difficulty {
			return skills[i].Difficulty < skills[j].Difficulty
		}
		return skills[i].Key < skills[j].Key
	})
	return skills
}
