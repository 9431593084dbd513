package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	schemeFlag string
	stdinFlag  bool
)

var transliterateCmd = &cobra.Command{
	Use:   "transliterate [text]",
	Short: "Print Tamil candidates for a romanized text as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := ""
		if len(args) == 1 {
			text = args[0]
		}
		if stdinFlag || text == "" {
			contents, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			text = string(contents)
		}

		tanglish, err := initTanglish()
		if err != nil {
			return err
		}
		defer tanglish.Close()

		result := tanglish.Transliterate(text, schemeFlag)

		output := struct {
			Candidates []string `json:"candidates"`
			Engine     string   `json:"engine"`
			Notes      []string `json:"notes"`
		}{
			Candidates: result.Candidates,
			Engine:     result.Engine,
			Notes:      result.Notes,
		}
		if output.Candidates == nil {
			output.Candidates = []string{}
		}
		if output.Notes == nil {
			output.Notes = []string{}
		}

		encoded, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	},
}

func init() {
	transliterateCmd.Flags().StringVar(&schemeFlag, "scheme", "itrans",
		"Romanization convention hint passed to backends")
	transliterateCmd.Flags().BoolVar(&stdinFlag, "stdin", false,
		"Read the text from standard input")
	rootCmd.AddCommand(transliterateCmd)
}
