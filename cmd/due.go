package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matuskalis/speaksharp-engine/internal/ui/theme"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show the review queue, most overdue first",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := resolveLearner(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		if limit == 0 {
			limit = loadedConfig.Review.Limit
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cards, err := eng.GetDueCards(cmd.Context(), learner, limit)
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			fmt.Println(theme.Hint.Render("Nothing due. Come back later."))
			return nil
		}

		now := time.Now().UTC()
		fmt.Println(theme.Title.Render(fmt.Sprintf("%d card(s) due", len(cards))))
		for _, c := range cards {
			overdue := now.Sub(c.NextReviewAt).Round(time.Hour)
			front := c.Front
			if len(front) > 60 {
				front = front[:57] + "..."
			}
			fmt.Printf("%s  %-14s  %s  %s\n",
				theme.Dim.Render(c.ID.String()[:8]),
				c.CardType,
				theme.Body.Render(front),
				theme.Overdue.Render(fmt.Sprintf("overdue %s", overdue)))
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("limit", 0, "Max cards to show (default from config)")
}
