package catalog

import (
	"sort"
	"strings"
	"testing"
)

func validSkillPair() []Skill {
	return []Skill{
		{Key: "gram.a", Name: "A", Strand: StrandGrammar, CEFRLevel: "A1", Difficulty: 0.1},
		{Key: "vocab.b", Name: "B", Strand: StrandVocabulary, CEFRLevel: "A2", Difficulty: 0.2, Prerequisites: []string{"gram.a"}},
		{Key: "pron.c", Name: "C", Strand: StrandPronunciation, CEFRLevel: "B1", Difficulty: 0.3},
		{Key: "flu.d", Name: "D", Strand: StrandFluency, CEFRLevel: "B2", Difficulty: 0.4},
	}
}

func TestSeedCatalogIsValid(t *testing.T) {
	if err := validateSkills(seedSkills); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestValidateSkills_Valid(t *testing.T) {
	if err := validateSkills(validSkillPair()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateSkills_Problems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]Skill) []Skill
		wantSub string
	}{
		{
			name: "duplicate key",
			mutate: func(s []Skill) []Skill {
				dup := s[0]
				return append(s, dup)
			},
			wantSub: "duplicate skill key",
		},
		{
			name: "dangling prerequisite",
			mutate: func(s []Skill) []Skill {
				s[0].Prerequisites = []string{"gram.missing"}
				return s
			},
			wantSub: "nonexistent prerequisite",
		},
		{
			name: "cycle",
			mutate: func(s []Skill) []Skill {
				s[0].Prerequisites = []string{"vocab.b"} // b already requires a
				return s
			},
			wantSub: "cycle detected",
		},
		{
			name: "empty strand",
			mutate: func(s []Skill) []Skill {
				return s[:3] // drops fluency
			},
			wantSub: `strand "fluency" has no skills`,
		},
		{
			name: "missing name",
			mutate: func(s []Skill) []Skill {
				s[0].Name = ""
				return s
			},
			wantSub: "has no name",
		},
		{
			name: "difficulty out of range",
			mutate: func(s []Skill) []Skill {
				s[0].Difficulty = 1.5
				return s
			},
			wantSub: "Difficulty must be in [0,1]",
		},
		{
			name: "invalid CEFR level",
			mutate: func(s []Skill) []Skill {
				s[0].CEFRLevel = "Z9"
				return s
			},
			wantSub: "invalid CEFR level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSkills(tt.mutate(validSkillPair()))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q missing %q", err, tt.wantSub)
			}
		})
	}
}

func TestAllSkills_SortedByKey(t *testing.T) {
	skills := AllSkills()
	if len(skills) == 0 {
		t.Fatal("empty catalog")
	}
	if !sort.SliceIsSorted(skills, func(i, j int) bool { return skills[i].Key < skills[j].Key }) {
		t.Error("AllSkills not sorted by key")
	}
}

func TestGetSkill(t *testing.T) {
	s, err := GetSkill("gram.present-simple")
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}
	if s.Strand != StrandGrammar {
		t.Errorf("Strand = %q, want grammar", s.Strand)
	}

	if _, err := GetSkill("gram.nope"); err == nil {
		t.Error("expected error for unknown key")
	}
	if Known("gram.nope") {
		t.Error("Known returned true for unknown key")
	}
	if !Known("vocab.phrasal-verbs") {
		t.Error("Known returned false for seed skill")
	}
}

func TestByStrand_SortedByDifficulty(t *testing.T) {
	for _, strand := range AllStrands() {
		skills := ByStrand(strand)
		if len(skills) == 0 {
			t.Errorf("strand %q empty", strand)
			continue
		}
		for i, s := range skills {
			if s.Strand != strand {
				t.Errorf("strand %q contains %q from %q", strand, s.Key, s.Strand)
			}
			if i > 0 && s.Difficulty < skills[i-1].Difficulty {
				t.Errorf("strand %q not sorted by difficulty at %q", strand, s.Key)
			}
		}
	}
}

func TestSeedPrerequisites_AreEasierOrEqual(t *testing.T) {
	// A prerequisite harder than its dependent would invert the
	// recommended learning order.
	for _, s := range AllSkills() {
		for _, pk := range s.Prerequisites {
			p, err := GetSkill(pk)
			if err != nil {
				t.Fatalf("prerequisite %q of %q: %v", pk, s.Key, err)
			}
			if p.Difficulty > s.Difficulty {
				t.Errorf("skill %q (%.2f) has harder prerequisite %q (%.2f)",
					s.Key, s.Difficulty, pk, p.Difficulty)
			}
		}
	}
}
