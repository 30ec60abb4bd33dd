package cmd

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matuskalis/speaksharp-engine/internal/engine"
	"github.com/matuskalis/speaksharp-engine/internal/ui/theme"
)

var reviewCmd = &cobra.Command{
	Use:   "review <card-id> <quality>",
	Short: "Grade a card review (quality 0-5) and reschedule it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid card id %q: %w", args[0], err)
		}
		quality, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quality %q: %w", args[1], err)
		}
		response, _ := cmd.Flags().GetString("response")
		timeMs, _ := cmd.Flags().GetInt("time-ms")
		attempt, _ := cmd.Flags().GetString("attempt")
		correct, _ := cmd.Flags().GetBool("correct")
		if !cmd.Flags().Changed("correct") {
			// Without an explicit verdict, assume a passing grade meant a
			// correct response.
			correct = quality >= 3
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := eng.RecordReview(cmd.Context(), engine.ReviewInput{
			CardID:         cardID,
			Quality:        quality,
			Correct:        correct,
			ResponseTimeMs: timeMs,
			Response:       response,
			AttemptID:      attempt,
		})
		if err != nil {
			return err
		}

		verdict := theme.Correct.Render("pass")
		if quality < 3 {
			verdict = theme.Incorrect.Render("fail")
		}
		fmt.Printf("%s  next review %s (interval %dd, ease %.2f)\n",
			verdict,
			c.NextReviewAt.Format("2006-01-02"),
			c.IntervalDays,
			c.EaseFactor)
		return nil
	},
}

func init() {
	reviewCmd.Flags().String("response", "", "What the learner answered")
	reviewCmd.Flags().Int("time-ms", 0, "Response time in milliseconds")
	reviewCmd.Flags().String("attempt", "", "Idempotency key for safe retries")
	reviewCmd.Flags().Bool("correct", false, "Whether the response was correct (defaults to quality >= 3)")
}
