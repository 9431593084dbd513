package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn WORD",
	Short: "Learn a Tamil word, raising its dictionary confidence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tanglish, err := initTanglish()
		if err != nil {
			return err
		}
		defer tanglish.Close()

		if err := tanglish.Learn(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Learnt %s\n", args[0])
		return nil
	},
}

var trainCmd = &cobra.Command{
	Use:   "train PATTERN WORD",
	Short: "Train a romanized pattern to a Tamil word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tanglish, err := initTanglish()
		if err != nil {
			return err
		}
		defer tanglish.Close()

		if err := tanglish.Train(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Trained %s => %s\n", args[0], args[1])
		return nil
	},
}

var unlearnCmd = &cobra.Command{
	Use:   "unlearn WORD",
	Short: "Remove a word and its trained patterns from the dictionary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tanglish, err := initTanglish()
		if err != nil {
			return err
		}
		defer tanglish.Close()

		if err := tanglish.Unlearn(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Unlearnt %s\n", args[0])
		return nil
	},
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions PATTERN",
	Short: "List learnt words matching a romanized pattern prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tanglish, err := initTanglish()
		if err != nil {
			return err
		}
		defer tanglish.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		suggestions, err := tanglish.DictionarySuggestions(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		for _, suggestion := range suggestions {
			fmt.Printf("%s\t%d\n", suggestion.Word, suggestion.Confidence)
		}
		return nil
	},
}

func init() {
	suggestionsCmd.Flags().Int("limit", 10, "Maximum suggestions to list")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(unlearnCmd)
	rootCmd.AddCommand(suggestionsCmd)
}
