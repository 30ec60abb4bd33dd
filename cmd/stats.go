package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matuskalis/speaksharp-engine/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := resolveLearner(cmd)
		if err != nil {
			return err
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		accuracy, reviews, err := eng.Events().ReviewAccuracy(ctx, learner)
		if err != nil {
			return err
		}
		nodes, err := eng.Skills(ctx, learner)
		if err != nil {
			return err
		}

		var mastered int
		for _, n := range nodes {
			if n.MasteryScore >= 95 {
				mastered++
			}
		}

		fmt.Println(theme.Title.Render("Learner: " + learner))
		fmt.Printf("reviews   %d (accuracy %.0f%%)\n", reviews, accuracy*100)
		fmt.Printf("skills    %d practiced, %d mastered\n", len(nodes), mastered)
		return nil
	},
}
