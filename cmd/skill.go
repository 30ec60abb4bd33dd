package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matuskalis/speaksharp-engine/internal/catalog"
	"github.com/matuskalis/speaksharp-engine/internal/store"
	"github.com/matuskalis/speaksharp-engine/internal/ui/theme"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalog and the learner's mastery",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog skills (optionally filtered by strand)",
	RunE: func(cmd *cobra.Command, args []string) error {
		strand, _ := cmd.Flags().GetString("strand")

		var skills []catalog.Skill
		if strand != "" {
			skills = catalog.ByStrand(catalog.Strand(strand))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for strand %q", strand)
			}
		} else {
			skills = catalog.AllSkills()
		}

		fmt.Printf("%-26s  %-34s  %-14s  %4s  %s\n",
			"Key", "Name", "Strand", "CEFR", "Difficulty")
		fmt.Println(strings.Repeat("─", 92))
		for _, s := range skills {
			name := s.Name
			if len(name) > 34 {
				name = name[:31] + "..."
			}
			fmt.Printf("%-26s  %-34s  %-14s  %4s  %10.2f\n",
				s.Key, name, catalog.StrandDisplayName(s.Strand), s.CEFRLevel, s.Difficulty)
		}
		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-key>",
	Short: "Show the learner's mastery of one skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := resolveLearner(cmd)
		if err != nil {
			return err
		}
		def, err := catalog.GetSkill(args[0])
		if err != nil {
			return err
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Println(theme.Heading.Render(def.Name), theme.Dim.Render("("+def.Key+")"))
		fmt.Println(theme.Body.Render(def.Description))

		node, err := eng.Mastery(cmd.Context(), learner, def.Key)
		if errors.Is(err, store.ErrNotFound) {
			fmt.Println(theme.Hint.Render("Not practiced yet."))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("mastery %s  pLearned %.3f  attempts %d (%d correct, %d wrong)\n",
			theme.Mastery(node.MasteryScore).Render(fmt.Sprintf("%.1f", node.MasteryScore)),
			node.PLearned,
			node.PracticeCount, node.SuccessCount, node.ErrorCount)
		return nil
	},
}

var skillWeakestCmd = &cobra.Command{
	Use:   "weakest",
	Short: "Show the learner's least-mastered skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := resolveLearner(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		nodes, err := eng.GetWeakestSkills(cmd.Context(), learner, limit)
		if err != nil {
			return err
		}
		if len(nodes) == 0 {
			fmt.Println(theme.Hint.Render("No skills practiced yet."))
			return nil
		}
		for _, n := range nodes {
			fmt.Printf("%-26s  mastery %s  errors %d\n",
				n.SkillKey,
				theme.Mastery(n.MasteryScore).Render(fmt.Sprintf("%5.1f", n.MasteryScore)),
				n.ErrorCount)
		}
		return nil
	},
}

var skillRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest what to practice next",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := resolveLearner(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := eng.GetRecommendedSkills(cmd.Context(), learner, limit)
		if err != nil {
			return err
		}
		for _, r := range recs {
			note := theme.Hint.Render("new")
			if r.PracticeCount > 0 {
				note = theme.Dim.Render(fmt.Sprintf("%d attempts", r.PracticeCount))
			}
			fmt.Printf("%-26s  %-34s  pLearned %.3f  %s\n",
				r.Skill.Key, r.Skill.Name, r.PLearned, note)
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("strand", "", "Filter by strand (grammar, vocabulary, pronunciation, fluency)")
	skillWeakestCmd.Flags().Int("limit", 10, "Max skills to show")
	skillRecommendCmd.Flags().Int("limit", 5, "Max suggestions")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillWeakestCmd)
	skillCmd.AddCommand(skillRecommendCmd)
}
