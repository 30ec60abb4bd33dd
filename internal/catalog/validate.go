package catalog

import (
	"fmt"
	"strings"
)

var validCEFR = map[string]bool{
	"A1": true, "A2": true, "B1": true, "B2": true, "C1": true, "C2": true,
}

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	keySet := make(map[string]bool, len(skills))
	strandSet := make(map[Strand]bool)

	// Check for duplicate keys
	for _, s := range skills {
		if keySet[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate skill key: %q", s.Key))
		}
		keySet[s.Key] = true
		strandSet[s.Strand] = true
	}

	// Check for dangling prerequisites
	for _, s := range skills {
		for _, prereq := range s.Prerequisites {
			if !keySet[prereq] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.Key, prereq))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.Key] = len(s.Prerequisites)
		for _, prereq := range s.Prerequisites {
			adjList[prereq] = append(adjList[prereq], s.Key)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.Key] == 0 {
			queue = append(queue, s.Key)
		}
	}

	visited := 0
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adjList[key] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.Key] > 0 {
				cycleNodes = append(cycleNodes, s.Key)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check all declared strands are populated
	for _, strand := range AllStrands() {
		if !strandSet[strand] {
			errs = append(errs, fmt.Sprintf("strand %q has no skills", strand))
		}
	}

	// Check per-skill metadata
	for _, s := range skills {
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("skill %q has no name", s.Key))
		}
		if s.Difficulty < 0 || s.Difficulty > 1 {
			errs = append(errs, fmt.Sprintf("skill %q: Difficulty must be in [0,1], got %f", s.Key, s.Difficulty))
		}
		if !validCEFR[s.CEFRLevel] {
			errs = append(errs, fmt.Sprintf("skill %q: invalid CEFR level %q", s.Key, s.CEFRLevel))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
