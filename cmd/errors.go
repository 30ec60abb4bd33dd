package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matuskalis/speaksharp-engine/internal/engine"
	"github.com/matuskalis/speaksharp-engine/internal/ui/theme"
)

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "Manage captured learner errors",
}

var errorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record one learner error",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := resolveLearner(cmd)
		if err != nil {
			return err
		}
		errType, _ := cmd.Flags().GetString("type")
		sentence, _ := cmd.Flags().GetString("sentence")
		corrected, _ := cmd.Flags().GetString("corrected")
		explanation, _ := cmd.Flags().GetString("explanation")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := eng.RecordError(cmd.Context(), engine.RecordErrorInput{
			LearnerID:         learner,
			ErrorType:         errType,
			UserSentence:      sentence,
			CorrectedSentence: corrected,
			Explanation:       explanation,
		})
		if err != nil {
			return err
		}
		fmt.Printf("recorded error %s (%s)\n", rec.ID, rec.ErrorType)
		return nil
	},
}

var errorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List errors not yet recycled into cards",
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

		recs, err := eng.PendingErrors(cmd.Context(), learner, limit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println(theme.Hint.Render("No pending errors."))
			return nil
		}
		for _, r := range recs {
			fmt.Printf("%s  %-20s  %s\n",
				theme.Dim.Render(r.ID.String()[:8]),
				r.ErrorType,
				theme.Incorrect.Render(r.UserSentence))
			fmt.Printf("          %s %s\n", theme.Dim.Render("fix:"), theme.Correct.Render(r.CorrectedSentence))
		}
		return nil
	},
}

var errorsConvertCmd = &cobra.Command{
	Use:   "convert <error-id>",
	Short: "Turn a stored error into an error-repair card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid error record id %q: %w", args[0], err)
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := eng.ConvertError(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("created card %s, due now\n", c.ID)
		return nil
	},
}

var errorsImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a JSON batch of captured errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := eng.Importer().Import(cmd.Context(), f)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d error(s)\n", len(recs))
		return nil
	},
}

func init() {
	errorsAddCmd.Flags().String("type", "", "Error category (e.g. verb-tense)")
	errorsAddCmd.Flags().String("sentence", "", "What the learner said")
	errorsAddCmd.Flags().String("corrected", "", "The corrected sentence")
	errorsAddCmd.Flags().String("explanation", "", "Why it was wrong")
	errorsAddCmd.MarkFlagRequired("type")
	errorsAddCmd.MarkFlagRequired("sentence")
	errorsAddCmd.MarkFlagRequired("corrected")
	errorsAddCmd.MarkFlagRequired("explanation")

	errorsListCmd.Flags().Int("limit", 20, "Max errors to show")

	errorsCmd.AddCommand(errorsAddCmd)
	errorsCmd.AddCommand(errorsListCmd)
	errorsCmd.AddCommand(errorsConvertCmd)
	errorsCmd.AddCommand(errorsImportCmd)
}
