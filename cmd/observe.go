package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matuskalis/speaksharp-engine/internal/engine"
	"github.com/matuskalis/speaksharp-engine/internal/ui/theme"
)

var observeCmd = &cobra.Command{
	Use:   "observe <skill-key>",
	Short: "Record a practice outcome on a skill and update its mastery estimate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := resolveLearner(cmd)
		if err != nil {
			return err
		}
		correct, _ := cmd.Flags().GetBool("correct")
		incorrect, _ := cmd.Flags().GetBool("incorrect")
		if correct == incorrect {
			return fmt.Errorf("pass exactly one of --correct or --incorrect")
		}
		attempt, _ := cmd.Flags().GetString("attempt")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		node, err := eng.ObserveSkill(cmd.Context(), engine.ObserveInput{
			LearnerID: learner,
			SkillKey:  args[0],
			Correct:   correct,
			AttemptID: attempt,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s mastery %s (pLearned %.3f, %d attempts)\n",
			node.SkillKey,
			theme.Mastery(node.MasteryScore).Render(fmt.Sprintf("%.1f", node.MasteryScore)),
			node.PLearned,
			node.PracticeCount)
		return nil
	},
}

func init() {
	observeCmd.Flags().Bool("correct", false, "The learner got it right")
	observeCmd.Flags().Bool("incorrect", false, "The learner got it wrong")
	observeCmd.Flags().String("attempt", "", "Idempotency key for safe retries")
}
