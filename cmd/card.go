package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matuskalis/speaksharp-engine/internal/engine"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage flashcards",
}

var cardAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new flashcard, due immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := resolveLearner(cmd)
		if err != nil {
			return err
		}
		cardType, _ := cmd.Flags().GetString("type")
		front, _ := cmd.Flags().GetString("front")
		back, _ := cmd.Flags().GetString("back")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := eng.CreateCard(cmd.Context(), engine.CreateCardInput{
			LearnerID: learner,
			CardType:  cardType,
			Front:     front,
			Back:      back,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created card %s (%s)\n", c.ID, c.CardType)
		return nil
	},
}

func init() {
	cardAddCmd.Flags().String("type", "definition", "Card type (definition, cloze, production, pronunciation, error_repair)")
	cardAddCmd.Flags().String("front", "", "Card front (prompt)")
	cardAddCmd.Flags().String("back", "", "Card back (answer)")
	cardAddCmd.MarkFlagRequired("front")
	cardAddCmd.MarkFlagRequired("back")

	cardCmd.AddCommand(cardAddCmd)
}
